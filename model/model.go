package model

import "fmt"

type CellState int

const (
	EMPTY CellState = iota
	WALL
)

func (s CellState) Name() string {
	switch s {
	case EMPTY:
		return "EMPTY"
	case WALL:
		return "WALL"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Cell addresses one grid square, column first.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is a fixed size, column/row addressed matrix of cell states stored
// flat as row*Cols+col.
type Grid struct {
	Cols, Rows int
	cells      []CellState
}

func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]CellState, cols*rows),
	}
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.Cols + c.Col
}
