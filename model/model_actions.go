package model

// ToggleWall flips EMPTY<->WALL, out of bounds cells are ignored.
func (g *Grid) ToggleWall(c Cell) {
	if !g.InBounds(c) {
		return
	}
	i := g.index(c)
	if g.cells[i] == WALL {
		g.cells[i] = EMPTY
	} else {
		g.cells[i] = WALL
	}
}

// StateAt expects an in-bounds cell. Callers validate with InBounds first.
func (g *Grid) StateAt(c Cell) CellState {
	return g.cells[g.index(c)]
}

func (g *Grid) SetState(c Cell, s CellState) {
	if !g.InBounds(c) {
		return
	}
	g.cells[g.index(c)] = s
}

// IsWall is the bounds checked variant of StateAt(c) == WALL.
func (g *Grid) IsWall(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == WALL
}

func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = EMPTY
	}
}

func (g *Grid) Walls() int {
	n := 0
	for _, s := range g.cells {
		if s == WALL {
			n++
		}
	}
	return n
}

// Each visits every cell column by column.
func (g *Grid) Each(f func(c Cell, s CellState)) {
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			c := Cell{Col: col, Row: row}
			f(c, g.cells[g.index(c)])
		}
	}
}
