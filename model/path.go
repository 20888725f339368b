package model

// Neighbor offsets in visit order: north, south, west, east. Rows grow
// downwards so north is Row-1.
var Directions = [4]Cell{
	{Col: 0, Row: -1},
	{Col: 0, Row: 1},
	{Col: -1, Row: 0},
	{Col: 1, Row: 0},
}

const noParent = -1

// FindPath runs a breadth first search over the 4-connected grid and returns
// the cells from start (exclusive) to goal (inclusive).
//
// An empty result means either that goal is unreachable (invalid cells,
// walls, no route) or that start == goal. Both read as "nothing to walk".
func FindPath(start, goal Cell, g *Grid) []Cell {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if g.StateAt(start) == WALL || g.StateAt(goal) == WALL {
		return nil
	}
	if start == goal {
		return nil
	}

	size := g.Cols * g.Rows
	visited := make([]bool, size)
	parent := make([]int, size)
	for i := range parent {
		parent[i] = noParent
	}

	startIdx := g.index(start)
	goalIdx := g.index(goal)
	visited[startIdx] = true

	queue := make([]int, 0, size)
	queue = append(queue, startIdx)
	found := false

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		if idx == goalIdx {
			found = true
			break
		}
		cur := Cell{Col: idx % g.Cols, Row: idx / g.Cols}
		for _, d := range Directions {
			next := Cell{Col: cur.Col + d.Col, Row: cur.Row + d.Row}
			if !g.InBounds(next) {
				continue
			}
			ni := g.index(next)
			if visited[ni] || g.cells[ni] == WALL {
				continue
			}
			visited[ni] = true
			parent[ni] = idx
			queue = append(queue, ni)
		}
	}

	if !found {
		return nil
	}

	path := make([]Cell, 0)
	for idx := goalIdx; idx != startIdx; idx = parent[idx] {
		path = append(path, Cell{Col: idx % g.Cols, Row: idx / g.Cols})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
