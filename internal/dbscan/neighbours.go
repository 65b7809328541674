package dbscan

import (
	"sort"

	"github.com/banshee-data/appr-dbscan/internal/dbscan/rtree"
)

// PopulateNeighbours builds an auxiliary R-tree index (package rtree)
// over the occupied cell indexes and assigns each cell's
// Neighbours field to every occupied cell whose squared index
// distance from it is strictly less than 4*D.
//
// The tree's node fan-out is 4*D, mirroring the original
// implementation's rstar LargeNodeParameters. The search uses a
// conservative <= 4D pre-filter (the tree's own invariant) and then
// re-applies the exact strict < 4D condition in a post-filter, since
// the strict inequality is load-bearing and must not be relaxed by the
// index's coarser box-distance test.
func PopulateNeighbours(grid Grid, dim int) {
	fanOut := 4 * dim
	tree := rtree.New(dim, fanOut)
	indices := grid.SortedIndices(dim)
	for _, idx := range indices {
		tree.Insert(toRtreePoint(idx))
	}

	bound := int64(4 * dim)
	for _, idx := range indices {
		cell := grid[idx]
		candidates := tree.RangeQuery(toRtreePoint(idx), bound)
		neighbours := make([]CellIndex, 0, len(candidates))
		for _, c := range candidates {
			candIdx := fromRtreePoint(c)
			if SquaredIndexDistance(idx, candIdx, dim) < bound {
				neighbours = append(neighbours, candIdx)
			}
		}
		sort.Slice(neighbours, func(i, j int) bool {
			return lessCellIndex(neighbours[i], neighbours[j], dim)
		})
		cell.Neighbours = neighbours
	}
}

func toRtreePoint(idx CellIndex) [7]int64 {
	return [7]int64(idx)
}

func fromRtreePoint(p [7]int64) CellIndex {
	return CellIndex(p)
}
