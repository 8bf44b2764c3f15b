package pathfinding

import (
	"container/heap"

	"schemroute/geometry"
)

// maxExplore caps the number of nodes the search will expand. A query-local
// grid is at most a few thousand cells, so hitting this limit means something
// is wrong; the caller falls back to direct routing either way.
const maxExplore = 50000

type cellKey struct {
	Col, Row int
}

// searchNode is a state in the A* search over grid cells.
type searchNode struct {
	col, row int
	gCost    int // steps from start
	hCost    int // Manhattan estimate to goal
	fCost    int
	parent   *searchNode
	index    int // heap index
}

// nodeQueue is a priority queue of search nodes ordered by fCost.
type nodeQueue []*searchNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	// Prefer nodes closer to the goal, then fall back to a deterministic
	// position ordering so equal-cost routes come out the same every run.
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	si, sj := nq[i].col+nq[i].row, nq[j].col+nq[j].row
	if si != sj {
		return si < sj
	}
	if nq[i].col != nq[j].col {
		return nq[i].col < nq[j].col
	}
	return nq[i].row < nq[j].row
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*nq)
	*nq = append(*nq, n)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*nq = old[:n-1]
	return node
}

// FindPath runs A* over the occupancy grid between two world-space points.
// Movement is 4-connected with unit step cost, so the Manhattan heuristic is
// admissible and the first goal pop is optimal. The returned path is the
// sequence of traversed cell centers in world coordinates, one point per
// cell. ok is false when either endpoint is blocked or outside the grid, when
// the open set empties without reaching the goal, or when the node limit
// trips; callers fall back to the direct route in all of those cases.
func FindPath(g *Grid, start, end geometry.Point) ([]geometry.Point, bool) {
	if !g.Covers(start) || !g.Covers(end) {
		return nil, false
	}

	startCol, startRow := g.CellAt(start)
	endCol, endRow := g.CellAt(end)

	if g.Blocked(startCol, startRow) || g.Blocked(endCol, endRow) {
		return nil, false
	}
	if startCol == endCol && startRow == endRow {
		return []geometry.Point{g.CellCenter(startCol, startRow)}, true
	}

	open := &nodeQueue{}
	heap.Init(open)
	closed := make(map[cellKey]bool)
	nodes := make(map[cellKey]*searchNode)

	startNode := &searchNode{
		col:   startCol,
		row:   startRow,
		hCost: manhattanCells(startCol, startRow, endCol, endRow),
	}
	startNode.fCost = startNode.hCost
	heap.Push(open, startNode)
	nodes[cellKey{startCol, startRow}] = startNode

	explored := 0
	for open.Len() > 0 {
		explored++
		if explored > maxExplore {
			return nil, false
		}

		current := heap.Pop(open).(*searchNode)
		if current.col == endCol && current.row == endRow {
			return reconstruct(g, current), true
		}
		closed[cellKey{current.col, current.row}] = true

		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			col, row := current.col+d[0], current.row+d[1]
			key := cellKey{col, row}

			if closed[key] || g.Blocked(col, row) {
				continue
			}

			tentativeG := current.gCost + 1
			existing, seen := nodes[key]
			if !seen {
				n := &searchNode{
					col:    col,
					row:    row,
					gCost:  tentativeG,
					hCost:  manhattanCells(col, row, endCol, endRow),
					parent: current,
				}
				n.fCost = n.gCost + n.hCost
				heap.Push(open, n)
				nodes[key] = n
			} else if tentativeG < existing.gCost {
				// A cheaper way in while the node is still open; closed
				// nodes are never reopened, which is sound under uniform
				// step cost.
				existing.gCost = tentativeG
				existing.fCost = existing.gCost + existing.hCost
				existing.parent = current
				heap.Fix(open, existing.index)
			}
		}
	}

	return nil, false
}

// reconstruct walks parent links from the goal back to the start and returns
// the traversed cell centers in start-to-goal order.
func reconstruct(g *Grid, goal *searchNode) []geometry.Point {
	count := 0
	for n := goal; n != nil; n = n.parent {
		count++
	}
	points := make([]geometry.Point, count)
	for n := goal; n != nil; n = n.parent {
		count--
		points[count] = g.CellCenter(n.col, n.row)
	}
	return points
}

func manhattanCells(c1, r1, c2, r2 int) int {
	dc := c1 - c2
	if dc < 0 {
		dc = -dc
	}
	dr := r1 - r2
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}
