package dbscan

import "sort"

// StatusPoint is a point together with its membership status. IsCore
// flips from false to true at most once, during labeling.
type StatusPoint struct {
	Coords        Point
	OriginalIndex int
	IsCore        bool
}

// CoreCellInfo is present on a Cell iff the cell is core.
type CoreCellInfo struct {
	Tree      *TreeNode
	ClusterID int
	UFIndex   int
}

// Cell holds every point that falls into one grid cell along with the
// neighbour cells discovered during the neighbour-resolution phase.
type Cell struct {
	Index      CellIndex
	Points     []*StatusPoint
	Neighbours []CellIndex
	IsCore     bool
	Core       *CoreCellInfo
}

// Grid maps an occupied cell index to its Cell. Only occupied cells
// exist in the grid.
type Grid map[CellIndex]*Cell

// BuildGrid buckets points into cells of side epsilon/sqrt(D), keyed
// by the centered cell-index convention in CellIndexFor. Original
// point order is preserved within each cell's point list so the
// border assigner's "first matching cluster" rule is deterministic.
func BuildGrid(points []Point, params Params) Grid {
	grid := make(Grid, len(points))
	for i, p := range points {
		idx := BaseCellIndexFor(p, params)
		cell, ok := grid[idx]
		if !ok {
			cell = &Cell{Index: idx}
			grid[idx] = cell
		}
		cell.Points = append(cell.Points, &StatusPoint{Coords: p, OriginalIndex: i})
	}
	return grid
}

// lessCellIndex orders two cell indexes lexicographically over their
// first dim components. Map iteration order over Grid is randomized
// by the Go runtime, so every phase that must produce the same
// clustering across repeated runs on the same input sweeps cells in
// this order instead of raw map order.
func lessCellIndex(a, b CellIndex, dim int) bool {
	for i := 0; i < dim; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// SortedIndices returns the grid's occupied cell indexes in
// lessCellIndex order.
func (g Grid) SortedIndices(dim int) []CellIndex {
	indices := make([]CellIndex, 0, len(g))
	for idx := range g {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool {
		return lessCellIndex(indices[i], indices[j], dim)
	})
	return indices
}

// SortedCells returns the grid's cells ordered by SortedIndices.
func (g Grid) SortedCells(dim int) []*Cell {
	indices := g.SortedIndices(dim)
	cells := make([]*Cell, len(indices))
	for i, idx := range indices {
		cells[i] = g[idx]
	}
	return cells
}
