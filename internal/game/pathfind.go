package game

import "container/heap"

// pathNode is one A* frontier entry. order is the insertion sequence number,
// the final tie-break so equal (f, g) nodes pop in discovery order rather
// than anything incidental.
type pathNode struct {
	cell   Cell
	g      int
	f      int
	order  int
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	if ol[i].f != ol[j].f {
		return ol[i].f < ol[j].f
	}
	if ol[i].g != ol[j].g {
		return ol[i].g < ol[j].g
	}
	return ol[i].order < ol[j].order
}
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// goalHeuristic returns the minimum wrap-aware Manhattan distance from c to
// any goal. Columns may wrap, so the horizontal component is the shorter of
// the direct and the around-the-edge distance; rows never wrap. Admissible
// under uniform step cost with no diagonal moves.
func goalHeuristic(m *Maze, c Cell, goals []Cell) int {
	best := -1
	for _, gc := range goals {
		dx := intAbs(c.Col - gc.Col)
		if wrapDx := m.Width() - dx; wrapDx < dx {
			dx = wrapDx
		}
		d := dx + intAbs(c.Row-gc.Row)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// FindPath runs A* from start to the nearest member of goals and returns the
// full cell sequence including both endpoints. It returns nil when goals is
// empty or no goal is reachable, and [start] when start is itself a goal.
// Neighbours are the four cardinal steps with horizontal wraparound only.
func FindPath(m *Maze, start Cell, goals []Cell) []Cell {
	if len(goals) == 0 {
		return nil
	}
	goalSet := make(map[Cell]bool, len(goals))
	for _, gc := range goals {
		goalSet[gc] = true
	}
	if goalSet[start] {
		return []Cell{start}
	}

	first := &pathNode{cell: start, g: 0, f: goalHeuristic(m, start, goals)}
	ol := &openList{first}
	heap.Init(ol)

	order := 0
	closed := make(map[Cell]bool)
	best := map[Cell]*pathNode{start: first}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if goalSet[cur.cell] {
			return buildCells(cur)
		}
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true

		for _, d := range cardinalDirs {
			next := m.Wrap(cur.cell.Offset(d))
			if !m.Traversable(next) || closed[next] {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[next]; ok && g >= prev.g {
				continue
			}
			order++
			node := &pathNode{
				cell:   next,
				g:      g,
				f:      g + goalHeuristic(m, next, goals),
				order:  order,
				parent: cur,
			}
			best[next] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildCells(end *pathNode) []Cell {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// stepDirection converts consecutive path cells into a unit step. A wrap
// crossing shows up as a delta of ±(width-1); it is normalised back to the
// single opposite step.
func stepDirection(from, to Cell) Direction {
	dx := to.Col - from.Col
	dy := to.Row - from.Row
	if dx > 1 {
		dx = -1
	} else if dx < -1 {
		dx = 1
	}
	if dy > 1 {
		dy = -1
	} else if dy < -1 {
		dy = 1
	}
	return Direction{dx, dy}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
