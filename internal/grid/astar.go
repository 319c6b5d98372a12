package grid

import (
	"container/heap"
	"errors"
)

// ErrNoPath is returned when the goal is unreachable. Callers hold
// position and re-plan on a later tick.
var ErrNoPath = errors.New("grid: no path to goal")

type pathNode struct {
	cell   Cell
	g, h   int
	seq    int // insertion order, final tie-break
	parent *pathNode
	index  int
}

type openHeap []*pathNode

func (o openHeap) Len() int { return len(o) }
func (o openHeap) Less(i, j int) bool {
	fi, fj := o[i].g+o[i].h, o[j].g+o[j].h
	if fi != fj {
		return fi < fj
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}
func (o openHeap) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openHeap) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*o)
	*o = append(*o, n)
}
func (o *openHeap) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*o = old[:len(old)-1]
	return n
}

// FindPath runs A* from start to goal over 4-connected unit-cost moves
// with a Manhattan heuristic. The returned path includes both start and
// goal. Ties on f break on lower h, then insertion order, so a given
// grid always yields the same path.
func FindPath(g *Grid, start, goal Cell) ([]Cell, error) {
	if !g.Passable(start) || !g.Passable(goal) {
		return nil, ErrNoPath
	}
	if start == goal {
		return []Cell{start}, nil
	}

	seq := 0
	open := &openHeap{}
	heap.Init(open)
	best := map[Cell]*pathNode{}

	push := func(c Cell, gCost int, parent *pathNode) {
		n := &pathNode{cell: c, g: gCost, h: Manhattan(c, goal), seq: seq, parent: parent}
		seq++
		best[c] = n
		heap.Push(open, n)
	}
	push(start, 0, nil)

	closed := map[Cell]bool{}
	var buf []Cell

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if closed[cur.cell] {
			continue
		}
		if cur.cell == goal {
			return reconstruct(cur), nil
		}
		closed[cur.cell] = true

		buf = g.Neighbors(cur.cell, buf[:0])
		for _, nc := range buf {
			if closed[nc] {
				continue
			}
			tentative := cur.g + 1
			if prev, ok := best[nc]; ok && prev.g <= tentative {
				continue
			}
			push(nc, tentative, cur)
		}
	}
	return nil, ErrNoPath
}

func reconstruct(n *pathNode) []Cell {
	count := 0
	for p := n; p != nil; p = p.parent {
		count++
	}
	path := make([]Cell, count)
	for p := n; p != nil; p = p.parent {
		count--
		path[count] = p.cell
	}
	return path
}
