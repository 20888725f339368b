package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func manhattan(a, b Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// assertWalkable checks every step moves one unit along one axis and never
// enters a wall.
func assertWalkable(t *testing.T, g *Grid, start Cell, path []Cell) {
	t.Helper()
	prev := start
	for _, c := range path {
		require.True(t, g.InBounds(c), "cell %v", c)
		assert.Equal(t, 1, manhattan(prev, c), "step %v -> %v", prev, c)
		assert.Equal(t, EMPTY, g.StateAt(c), "cell %v", c)
		prev = c
	}
}

func TestFindPathOpenGridIsManhattan(t *testing.T) {
	g := NewGrid(7, 5)
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			start := Cell{Col: 1, Row: 2}
			goal := Cell{Col: col, Row: row}
			path := FindPath(start, goal, g)
			assert.Len(t, path, manhattan(start, goal), "goal %v", goal)
			if len(path) > 0 {
				assert.Equal(t, goal, path[len(path)-1])
				assert.NotEqual(t, start, path[0])
				assertWalkable(t, g, start, path)
			}
		}
	}
}

func TestFindPathThreeByThree(t *testing.T) {
	g := NewGrid(3, 3)
	path := FindPath(Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 2}, g)

	require.Len(t, path, 4)
	// north, south, west, east visit order settles on this route
	assert.Equal(t, []Cell{{0, 1}, {0, 2}, {1, 2}, {2, 2}}, path)
}

func TestFindPathRejects(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetState(Cell{Col: 2, Row: 2}, WALL)

	tests := []struct {
		name        string
		start, goal Cell
	}{
		{"start is wall", Cell{2, 2}, Cell{0, 0}},
		{"goal is wall", Cell{0, 0}, Cell{2, 2}},
		{"start out of bounds", Cell{-1, 0}, Cell{0, 0}},
		{"goal out of bounds", Cell{0, 0}, Cell{5, 0}},
		{"start equals goal", Cell{1, 1}, Cell{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, FindPath(tt.start, tt.goal, g))
		})
	}
}

func TestFindPathWallColumnBlocks(t *testing.T) {
	g := NewGrid(6, 4)
	for row := 0; row < g.Rows; row++ {
		g.ToggleWall(Cell{Col: 3, Row: row})
	}
	assert.Empty(t, FindPath(Cell{Col: 0, Row: 0}, Cell{Col: 5, Row: 3}, g))

	// open a gap at the bottom
	g.ToggleWall(Cell{Col: 3, Row: 3})
	path := FindPath(Cell{Col: 0, Row: 0}, Cell{Col: 5, Row: 0}, g)
	require.NotEmpty(t, path)
	assert.Contains(t, path, Cell{Col: 3, Row: 3})
	assert.Len(t, path, 5+2*3)
	assertWalkable(t, g, Cell{Col: 0, Row: 0}, path)
}

func TestFindPathAroundObstacles(t *testing.T) {
	g := NewGrid(8, 8)
	for _, c := range []Cell{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {3, 7}, {3, 6}, {3, 5}, {3, 4}, {5, 0}, {5, 1}, {5, 2}, {5, 3}, {5, 4}} {
		g.ToggleWall(c)
	}
	start, goal := Cell{Col: 0, Row: 0}, Cell{Col: 7, Row: 0}

	path := FindPath(start, goal, g)
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])
	assertWalkable(t, g, start, path)
	assert.Greater(t, len(path), manhattan(start, goal))
}

func TestFindPathIsDeterministic(t *testing.T) {
	g := NewGrid(10, 10)
	g.ToggleWall(Cell{Col: 4, Row: 4})
	g.ToggleWall(Cell{Col: 4, Row: 5})
	start, goal := Cell{Col: 0, Row: 9}, Cell{Col: 9, Row: 0}

	first := FindPath(start, goal, g)
	second := FindPath(start, goal, g)
	assert.Equal(t, first, second)
}

func TestFindPathReroutesAfterWallToggle(t *testing.T) {
	g := NewGrid(5, 3)
	start, goal := Cell{Col: 0, Row: 1}, Cell{Col: 4, Row: 1}
	path := FindPath(start, goal, g)
	require.Len(t, path, 4)

	blocked := path[1]
	g.ToggleWall(blocked)
	rerouted := FindPath(start, goal, g)
	require.NotEmpty(t, rerouted)
	assert.NotContains(t, rerouted, blocked)
	assertWalkable(t, g, start, rerouted)

	// seal the column completely
	for row := 0; row < g.Rows; row++ {
		g.SetState(Cell{Col: blocked.Col, Row: row}, WALL)
	}
	assert.Empty(t, FindPath(start, goal, g))
}

// levelDistance counts BFS levels outward from start, -1 when goal is never
// reached.
func levelDistance(g *Grid, start, goal Cell) int {
	seen := map[Cell]bool{start: true}
	frontier := []Cell{start}
	for level := 0; len(frontier) > 0; level++ {
		next := make([]Cell, 0)
		for _, c := range frontier {
			if c == goal {
				return level
			}
			for _, d := range Directions {
				n := Cell{Col: c.Col + d.Col, Row: c.Row + d.Row}
				if g.InBounds(n) && !g.IsWall(n) && !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return -1
}

func TestFindPathRandomWalls(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := NewGrid(12, 9)
		g.Each(func(c Cell, _ CellState) {
			if rng.Float64() < .3 {
				g.SetState(c, WALL)
			}
		})

		for i := 0; i < 40; i++ {
			start := Cell{Col: rng.Intn(g.Cols), Row: rng.Intn(g.Rows)}
			goal := Cell{Col: rng.Intn(g.Cols), Row: rng.Intn(g.Rows)}
			path := FindPath(start, goal, g)

			if g.IsWall(start) || g.IsWall(goal) || start == goal {
				assert.Empty(t, path, "seed %d %v -> %v", seed, start, goal)
				continue
			}
			want := levelDistance(g, start, goal)
			if want < 0 {
				assert.Empty(t, path, "seed %d %v -> %v unreachable", seed, start, goal)
				continue
			}
			require.Len(t, path, want, "seed %d %v -> %v", seed, start, goal)
			assert.Equal(t, goal, path[len(path)-1])
			assertWalkable(t, g, start, path)
			assert.Equal(t, path, FindPath(start, goal, g))
		}
	}
}
