package dbscan

// AssignClusterIDs walks the union-find's equivalence classes over
// core cells, assigns each class a 1-based cluster id in the order the
// forest yields its sets, stamps that id onto every core cell in the
// class, and records it on every core point.
func AssignClusterIDs(grid Grid, uf *UnionFind, labels *Labels, cellByUFIndex map[int]*Cell) {
	for clusterID, set := range uf.AllSets() {
		id := clusterID + 1
		for _, ufIdx := range set {
			cell, ok := cellByUFIndex[ufIdx]
			if !ok {
				invariantf("no cell registered for union-find index %d", ufIdx)
			}
			cell.Core.ClusterID = id
			for _, sp := range cell.Points {
				if sp.IsCore {
					labels.Set(sp.OriginalIndex, id)
				}
			}
		}
	}
}

// AssignBorderAndNoise labels every non-core point with the cluster id
// of the first neighbouring core cell whose range tree accepts it, or
// marks it noise if no neighbour does. First match wins; a border
// point within range of several clusters is not split or reconciled.
func AssignBorderAndNoise(grid Grid, params Params, labels *Labels) {
	for _, cell := range grid.SortedCells(params.Dim) {
		for _, sp := range cell.Points {
			if sp.IsCore {
				continue
			}
			assignOne(grid, cell, sp, params, labels)
		}
	}
}

func assignOne(grid Grid, cell *Cell, sp *StatusPoint, params Params, labels *Labels) {
	for _, nIdx := range cell.Neighbours {
		neighbour, ok := grid[nIdx]
		if !ok {
			invariantf("no cell registered for neighbour index %v", nIdx)
		}
		if !neighbour.IsCore {
			continue
		}
		if neighbour.Core.Tree.ApproxRangeCount(sp.Coords, params) != 0 {
			labels.Set(sp.OriginalIndex, neighbour.Core.ClusterID)
			return
		}
	}
	labels.Set(sp.OriginalIndex, NoiseClusterID)
}
