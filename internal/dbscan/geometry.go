package dbscan

import "math"

func sqrtInt(n int) float64 {
	return math.Sqrt(float64(n))
}

// ceilLog2 returns ceil(log2(x)) for x > 0.
func ceilLog2(x float64) int {
	return int(math.Ceil(math.Log2(x)))
}

// Distance returns the Euclidean distance between p and q over the
// first dim coordinates.
func Distance(p, q Point, dim int) float64 {
	var sum float64
	for i := 0; i < dim; i++ {
		d := p[i] - q[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// CellIndexFor returns the index of the cell of side `side` containing
// p, using the centered convention where the origin cell covers
// [-side/2, side/2) on every axis: idx[i] = floor((p[i] + side/2) / side).
// This convention must be preserved bit-exactly; it determines which
// cells are adjacent.
func CellIndexFor(p Point, side float64, dim int) CellIndex {
	var idx CellIndex
	half := side / 2
	for i := 0; i < dim; i++ {
		idx[i] = int64(math.Floor((p[i] + half) / side))
	}
	return idx
}

// BaseCellIndexFor returns the index of the base grid cell (side
// epsilon/sqrt(D)) containing p.
func BaseCellIndexFor(p Point, params Params) CellIndex {
	return CellIndexFor(p, params.BaseSide(), params.Dim)
}

// Corners enumerates all 2^dim corners of the cell centered at
// `center` with side `side`, treating bit i of the enumeration counter
// as the sign of side/2 on axis i. The order is deterministic
// (bit-ascending) but callers must not rely on it beyond uniqueness.
func Corners(center Point, side float64, dim int) []Point {
	n := 1 << uint(dim)
	half := side / 2
	corners := make([]Point, n)
	for bits := 0; bits < n; bits++ {
		c := center
		for i := 0; i < dim; i++ {
			if bits&(1<<uint(i)) == 0 {
				c[i] -= half
			} else {
				c[i] += half
			}
		}
		corners[bits] = c
	}
	return corners
}

// IntersectionType classifies how a cell relates to the inner/outer
// balls around a query point.
type IntersectionType int

const (
	// Disjoint means every corner is at or beyond the inner radius
	// epsilon, so by convexity the cell cannot intersect the closed
	// inner ball.
	Disjoint IntersectionType = iota
	// FullyCovered means every corner lies within the outer radius
	// epsilon*(1+rho); the cell is entirely inside the outer ball.
	FullyCovered
	// Intersecting is neither of the above: the cell straddles the
	// band between the inner and outer radius.
	Intersecting
)

// cellCenter returns the center point of the cell identified by idx
// with side length side.
func cellCenter(idx CellIndex, side float64, dim int) Point {
	var c Point
	for i := 0; i < dim; i++ {
		c[i] = float64(idx[i]) * side
	}
	return c
}

// ClassifyIntersection classifies a cell against a query ball by its
// corners: FullyCovered if every corner is within the outer ball,
// Disjoint if every corner is outside the inner ball, Intersecting
// otherwise.
func ClassifyIntersection(q Point, params Params, idx CellIndex, side float64) IntersectionType {
	dim := params.Dim
	nCorners := 1 << uint(dim)
	center := cellCenter(idx, side, dim)
	corners := Corners(center, side, dim)
	inner := params.Epsilon
	outer := params.Epsilon * (1 + params.Rho)

	inCount, outCount := 0, 0
	for _, corner := range corners {
		d := Distance(q, corner, dim)
		if d <= outer {
			inCount++
		}
		if d >= inner {
			outCount++
		}
	}
	switch {
	case inCount == nCorners:
		return FullyCovered
	case outCount == nCorners:
		return Disjoint
	default:
		return Intersecting
	}
}

// SquaredIndexDistance returns the integer squared Chebyshev-style
// index distance sum((a[i]-b[i])^2) between two cell indexes.
func SquaredIndexDistance(a, b CellIndex, dim int) int64 {
	var sum int64
	for i := 0; i < dim; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
