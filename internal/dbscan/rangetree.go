package dbscan

// TreeNode is a node of a per-core-cell range-counting tree. The root
// represents the core cell itself at level 0; level i nodes have side
// L0/2^i, where L0 = epsilon/sqrt(D). A node at level H is a leaf and
// stores only a point count.
type TreeNode struct {
	CellIdx  CellIndex
	Side     float64
	Level    int
	Count    int
	Children map[CellIndex]*TreeNode
}

// BuildTree builds the range-counting tree over a core cell's core
// points: for each point, walk from the root down through levels 1..H,
// halving the side at each step and getting-or-inserting a child
// keyed by the sub-cell index at that level.
func BuildTree(corePoints []Point, params Params) *TreeNode {
	root := &TreeNode{
		Level:    0,
		Side:     params.BaseSide(),
		Count:    len(corePoints),
		Children: make(map[CellIndex]*TreeNode),
	}
	if len(corePoints) > 0 {
		root.CellIdx = BaseCellIndexFor(corePoints[0], params)
	}

	depth := params.TreeDepth()
	for _, p := range corePoints {
		side := root.Side
		node := root
		for level := 1; level <= depth; level++ {
			side /= 2
			idx := CellIndexFor(p, side, params.Dim)
			child, ok := node.Children[idx]
			if !ok {
				child = &TreeNode{
					CellIdx:  idx,
					Side:     side,
					Level:    level,
					Children: make(map[CellIndex]*TreeNode),
				}
				node.Children[idx] = child
			}
			child.Count++
			node = child
		}
	}
	return root
}

// ApproxRangeCount performs an approximate range-counting query: a
// Disjoint node contributes nothing, a FullyCovered node contributes
// its full count, and an Intersecting node either recurses into its
// children or, once it sits at level H-1 (or has no children),
// contributes its full count wholesale. The root itself is not
// classified; the query starts from its level-1 children.
//
// The count returned is exact with respect to this tree's accumulated
// leaf counts; no early-termination shortcut is taken, so repeated or
// root-level queries made by different callers (the merger, the
// border assigner, property tests) always observe the same number for
// the same tree and query point.
func (root *TreeNode) ApproxRangeCount(q Point, params Params) int {
	total := 0
	for _, child := range root.Children {
		total += child.approxRangeCount(q, params)
	}
	return total
}

func (n *TreeNode) approxRangeCount(q Point, params Params) int {
	depth := params.TreeDepth()
	switch ClassifyIntersection(q, params, n.CellIdx, n.Side) {
	case Disjoint:
		return 0
	case FullyCovered:
		return n.Count
	default: // Intersecting
		if n.Level < depth-1 && len(n.Children) > 0 {
			total := 0
			for _, child := range n.Children {
				total += child.approxRangeCount(q, params)
			}
			return total
		}
		return n.Count
	}
}
