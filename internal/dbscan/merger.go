package dbscan

// ComputeAdjacency unions core cells whose ranges overlap
// approximately. For each core cell, each neighbouring core cell not
// already in the same set is tested by querying the neighbour's range
// tree with each of this cell's core points in order; the first point
// whose query returns a non-zero count triggers a union and the scan
// moves on to the next neighbour.
func ComputeAdjacency(grid Grid, uf *UnionFind, params Params) {
	for _, cell := range grid.SortedCells(params.Dim) {
		if !cell.IsCore {
			continue
		}
		for _, nIdx := range cell.Neighbours {
			neighbour, ok := grid[nIdx]
			if !ok {
				invariantf("no cell registered for neighbour index %v", nIdx)
			}
			if !neighbour.IsCore {
				continue
			}
			if uf.SameSet(cell.Core.UFIndex, neighbour.Core.UFIndex) {
				continue
			}
			for _, sp := range cell.Points {
				if !sp.IsCore {
					continue
				}
				if neighbour.Core.Tree.ApproxRangeCount(sp.Coords, params) != 0 {
					uf.Union(cell.Core.UFIndex, neighbour.Core.UFIndex)
					break
				}
			}
		}
	}
}
