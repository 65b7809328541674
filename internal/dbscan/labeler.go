package dbscan

// Label classifies every cell as core or non-core, marks the core
// points inside core cells, and seeds a union-find forest with one
// slot per core cell.
//
// A cell with at least minPts points is always core (the "dense
// path"): every point in it is marked core without a neighbour scan.
// A sparser cell's points are each tested individually against the
// cell's own count plus neighbouring cells' exact in-range counts,
// stopping as soon as the running total reaches minPts (the "sparse
// path") -- the test only needs a yes/no answer, so scanning further
// neighbours once the threshold is met is wasted work.
func Label(grid Grid, params Params) *UnionFind {
	uf := NewUnionFind()
	for _, cell := range grid.SortedCells(params.Dim) {
		if len(cell.Points) >= params.MinPts {
			labelDenseCell(cell, uf, params)
		} else {
			labelSparseCell(grid, cell, uf, params)
		}
	}
	return uf
}

func labelDenseCell(cell *Cell, uf *UnionFind, params Params) {
	cell.IsCore = true
	core := &CoreCellInfo{UFIndex: uf.Push()}
	corePoints := make([]Point, 0, len(cell.Points))
	for _, sp := range cell.Points {
		sp.IsCore = true
		corePoints = append(corePoints, sp.Coords)
	}
	core.Tree = BuildTree(corePoints, params)
	cell.Core = core
}

func labelSparseCell(grid Grid, cell *Cell, uf *UnionFind, params Params) {
	var corePoints []Point
	for _, sp := range cell.Points {
		total := len(cell.Points)
		for _, nIdx := range cell.Neighbours {
			if nIdx == cell.Index {
				continue
			}
			neighbour, ok := grid[nIdx]
			if !ok {
				invariantf("no cell registered for neighbour index %v", nIdx)
			}
			total += pointsInRange(sp.Coords, neighbour, params.Epsilon, params.Dim)
			if total >= params.MinPts {
				break
			}
		}
		if total >= params.MinPts {
			sp.IsCore = true
			cell.IsCore = true
			corePoints = append(corePoints, sp.Coords)
		}
	}
	if cell.IsCore {
		cell.Core = &CoreCellInfo{
			UFIndex: uf.Push(),
			Tree:    BuildTree(corePoints, params),
		}
	}
}

// pointsInRange counts the points in `cell` within Euclidean distance
// epsilon of `point`.
func pointsInRange(point Point, cell *Cell, epsilon float64, dim int) int {
	count := 0
	for _, sp := range cell.Points {
		if Distance(point, sp.Coords, dim) <= epsilon {
			count++
		}
	}
	return count
}
