package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridStartsEmpty(t *testing.T) {
	g := NewGrid(32, 18)
	require.Equal(t, 32, g.Cols)
	require.Equal(t, 18, g.Rows)
	g.Each(func(c Cell, s CellState) {
		assert.Equal(t, EMPTY, s, "cell %v", c)
	})
	assert.Equal(t, 0, g.Walls())
}

func TestToggleWallIsItsOwnInverse(t *testing.T) {
	g := NewGrid(4, 4)
	c := Cell{Col: 2, Row: 1}

	g.ToggleWall(c)
	assert.Equal(t, WALL, g.StateAt(c))
	g.ToggleWall(c)
	assert.Equal(t, EMPTY, g.StateAt(c))

	g.SetState(Cell{Col: 0, Row: 0}, WALL)
	g.ToggleWall(Cell{Col: 0, Row: 0})
	g.ToggleWall(Cell{Col: 0, Row: 0})
	assert.Equal(t, WALL, g.StateAt(Cell{Col: 0, Row: 0}))
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	g := NewGrid(3, 3)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
		assert.False(t, g.InBounds(c), "cell %v", c)
		g.ToggleWall(c)
		g.SetState(c, WALL)
		assert.False(t, g.IsWall(c))
	}
	assert.Equal(t, 0, g.Walls())
}

func TestReset(t *testing.T) {
	g := NewGrid(5, 5)
	g.ToggleWall(Cell{Col: 1, Row: 1})
	g.ToggleWall(Cell{Col: 4, Row: 4})
	require.Equal(t, 2, g.Walls())

	g.Reset()
	assert.Equal(t, 0, g.Walls())
}

func TestCellStateName(t *testing.T) {
	assert.Equal(t, "EMPTY", EMPTY.Name())
	assert.Equal(t, "WALL", WALL.Name())
	assert.Equal(t, "N/A(7)", CellState(7).Name())
}
