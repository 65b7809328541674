package dbscan

import "fmt"

// MaxDimensions is the largest point dimensionality the grid approach
// supports.
const MaxDimensions = 7

// Point is a D-dimensional coordinate tuple. Only the first Dim slots
// of a Params-scoped Point are meaningful; the fixed array avoids a
// per-point heap allocation on the hot path.
type Point [MaxDimensions]float64

// CellIndex identifies a grid cell by its signed integer coordinates
// on each axis.
type CellIndex [MaxDimensions]int64

// Params holds the parameters of one clustering run.
type Params struct {
	Dim     int
	Epsilon float64
	Rho     float64
	MinPts  int
}

// Validate checks the parameter contract: epsilon > 0, 0 < rho <= 1,
// minPts >= 1, 1 <= dim <= MaxDimensions.
func (p Params) Validate() error {
	if p.Dim < 1 || p.Dim > MaxDimensions {
		return fmt.Errorf("dbscan: dimensionality must be in [1, %d], got %d", MaxDimensions, p.Dim)
	}
	if p.Epsilon <= 0 {
		return fmt.Errorf("dbscan: epsilon must be positive, got %g", p.Epsilon)
	}
	if p.Rho <= 0 || p.Rho > 1 {
		return fmt.Errorf("dbscan: rho must be in (0, 1], got %g", p.Rho)
	}
	if p.MinPts < 1 {
		return fmt.Errorf("dbscan: minPts must be at least 1, got %d", p.MinPts)
	}
	return nil
}

// BaseSide returns the side length epsilon/sqrt(D) of the base grid cell.
func (p Params) BaseSide() float64 {
	return p.Epsilon / sqrtInt(p.Dim)
}

// TreeDepth returns H = max(1, 1 + ceil(log2(1/rho))), the depth at
// which a range-counting tree node becomes a leaf.
func (p Params) TreeDepth() int {
	h := 1 + ceilLog2(1/p.Rho)
	if h < 1 {
		return 1
	}
	return h
}

// InvariantError marks a failure of an internal consistency invariant
// (e.g. a neighbour cell index absent from the grid). It indicates a
// programmer error, not recoverable by the caller short of a bug fix;
// it is still a typed panic value so a caller that wraps the engine in
// a recover() boundary can identify it.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "dbscan: invariant violated: " + e.Msg
}

func invariantf(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
