package dbscan

import (
	"fmt"

	"github.com/banshee-data/appr-dbscan/internal/dbscanio"
)

// toPoint converts a variable-length coordinate row into the engine's
// fixed-size Point, zero-filling slots beyond len(row).
func toPoint(row []float64) Point {
	var p Point
	copy(p[:], row)
	return p
}

// ClusterPointsAutoDim infers dimensionality from the points
// themselves (the width of the first point) rather than taking it as
// a parameter, then runs ClusterPoints. Every point must have the
// same width; a mismatch is reported as an error rather than silently
// truncated or zero-padded, since unlike file parsing there is no
// single declared width to defer to.
func ClusterPointsAutoDim(rows [][]float64, epsilon, rho float64, minPts int) (*Labels, error) {
	if len(rows) == 0 {
		return NewLabels(0), nil
	}
	dim := len(rows[0])
	if dim < 1 || dim > MaxDimensions {
		return nil, fmt.Errorf("dbscan: detected dimensionality %d out of range [1, %d]", dim, MaxDimensions)
	}
	points := make([]Point, len(rows))
	for i, row := range rows {
		if len(row) != dim {
			return nil, dimMismatchError(dim, len(row))
		}
		points[i] = toPoint(row)
	}
	return ClusterPoints(points, dim, epsilon, rho, minPts)
}

// ClusterFromFile reads a whitespace-separated point file and runs the
// full clustering pipeline over it. Dimensionality is detected from
// the file's first non-blank line; every later line is parsed against
// that width, with dbscanio.Read handling short/long lines itself.
func ClusterFromFile(path string, epsilon, rho float64, minPts int) (*Labels, error) {
	dim, _, err := dbscanio.Preflight(path)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		return NewLabels(0), nil
	}
	if dim > MaxDimensions {
		return nil, fmt.Errorf("dbscan: detected dimensionality %d exceeds the supported maximum of %d", dim, MaxDimensions)
	}

	rows, err := dbscanio.Read(path, dim)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(rows))
	for i, row := range rows {
		points[i] = toPoint(row)
	}
	return ClusterPoints(points, dim, epsilon, rho, minPts)
}
