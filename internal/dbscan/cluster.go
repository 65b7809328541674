package dbscan

import "fmt"

// ClusterPoints runs the full approximate DBSCAN pipeline over points
// in a dim-dimensional space and returns the per-point labeling:
//
//  1. validate epsilon, rho, minPts, dim
//  2. build the grid, populate neighbours
//  3. label cells/points as core, seeding a union-find over core cells
//  4. merge core cells whose approximate ranges overlap
//  5. assign cluster ids to core points, then border points and noise
//
// Empty input returns an empty, non-nil Labels and a nil error.
func ClusterPoints(points []Point, dim int, epsilon, rho float64, minPts int) (*Labels, error) {
	params := Params{Dim: dim, Epsilon: epsilon, Rho: rho, MinPts: minPts}
	if len(points) == 0 {
		return NewLabels(0), nil
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	grid := BuildGrid(points, params)
	PopulateNeighbours(grid, dim)
	uf := Label(grid, params)
	ComputeAdjacency(grid, uf, params)

	cellByUFIndex := make(map[int]*Cell, uf.Len())
	for _, cell := range grid {
		if cell.IsCore {
			cellByUFIndex[cell.Core.UFIndex] = cell
		}
	}

	labels := NewLabels(len(points))
	AssignClusterIDs(grid, uf, labels, cellByUFIndex)
	AssignBorderAndNoise(grid, params, labels)
	return labels, nil
}

// dimMismatchError reports a declared-vs-detected dimensionality
// conflict between a caller-supplied dimension and one inferred from
// input data.
func dimMismatchError(declared, detected int) error {
	return fmt.Errorf("dbscan: declared dimensionality %d does not match detected dimensionality %d", declared, detected)
}
