package grid

import "math/rand"

// Cell is a grid coordinate (row, col).
type Cell struct {
	R int `json:"r"`
	C int `json:"c"`
}

var dirs = []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func Manhattan(a, b Cell) int {
	dr := a.R - b.R
	if dr < 0 {
		dr = -dr
	}
	dc := a.C - b.C
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Grid is a bounded cell grid with blocked cells. Immutable once
// generated; shared read-only by pathfinding.
type Grid struct {
	W, H    int
	blocked []bool
}

func New(w, h int) *Grid {
	return &Grid{W: w, H: h, blocked: make([]bool, w*h)}
}

// Generate builds a w×h grid with random interior obstacles. Border
// cells are never blocked so spawn corners stay connected to the edge.
func Generate(w, h int, density float64, rng *rand.Rand) *Grid {
	g := New(w, h)
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			if rng.Float64() < density {
				g.blocked[r*w+c] = true
			}
		}
	}
	return g
}

func (g *Grid) InBounds(c Cell) bool {
	return c.R >= 0 && c.R < g.H && c.C >= 0 && c.C < g.W
}

// Passable reports whether a cell can be entered; out of bounds is
// treated as blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[c.R*g.W+c.C]
}

func (g *Grid) Block(c Cell) {
	if g.InBounds(c) {
		g.blocked[c.R*g.W+c.C] = true
	}
}

// RandomOpenCell picks a uniform passable interior cell, away from the
// border band. Falls back to the grid center after 100 attempts.
func (g *Grid) RandomOpenCell(rng *rand.Rand) Cell {
	for i := 0; i < 100; i++ {
		c := Cell{R: 2 + rng.Intn(g.H-4), C: 2 + rng.Intn(g.W-4)}
		if g.Passable(c) {
			return c
		}
	}
	return Cell{R: g.H / 2, C: g.W / 2}
}

// Neighbors appends the passable 4-connected neighbors of c to buf.
func (g *Grid) Neighbors(c Cell, buf []Cell) []Cell {
	for _, d := range dirs {
		n := Cell{R: c.R + d.R, C: c.C + d.C}
		if g.Passable(n) {
			buf = append(buf, n)
		}
	}
	return buf
}
