package simulation

import (
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathgrid/model"
)

// stroke is one press, drag, release gesture of the wall tool.
type stroke struct {
	paint   model.CellState
	last    model.Cell
	painted int
}

// BeginStroke starts a gesture at the pixel position. With the wall tool the
// pressed cell is toggled and every cell dragged over afterwards takes its
// new state, so a stroke either draws or erases walls. Agents are rerouted
// once, in EndStroke. With the agent tool it behaves like HandleClick.
func (s *Simulation) BeginStroke(px, py int) {
	s.EndStroke()
	if s.Tool != WALL {
		s.HandleClick(px, py)
		return
	}

	cell := CellAt(px, py, s.cfg.CellSize)
	st := &stroke{paint: model.WALL, last: cell}
	if s.Grid.InBounds(cell) {
		s.Grid.ToggleWall(cell)
		st.paint = s.Grid.StateAt(cell)
		st.painted++
	}
	s.stroke = st
}

// DragTo paints every cell between the previous pointer cell and the one
// under the pixel position. Cells outside the grid are skipped.
func (s *Simulation) DragTo(px, py int) {
	if s.stroke == nil {
		return
	}
	cell := CellAt(px, py, s.cfg.CellSize)
	from := s.stroke.last
	if cell == from {
		return
	}
	s.stroke.last = cell

	dc, dr := cell.Col-from.Col, cell.Row-from.Row
	steps := max(abs(dc), abs(dr))
	for i := 1; i <= steps; i++ {
		c := model.Cell{
			Col: from.Col + roundDiv(dc*i, steps),
			Row: from.Row + roundDiv(dr*i, steps),
		}
		if !s.Grid.InBounds(c) || s.Grid.StateAt(c) == s.stroke.paint {
			continue
		}
		s.Grid.SetState(c, s.stroke.paint)
		s.stroke.painted++
	}
}

// EndStroke finishes the gesture and reroutes agents if any cell changed.
func (s *Simulation) EndStroke() {
	st := s.stroke
	s.stroke = nil
	if st == nil || st.painted == 0 {
		return
	}
	log.Debugf("EndStroke %d cells set to %s", st.painted, st.paint.Name())
	s.Recompute()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundDiv divides rounding half away from zero.
func roundDiv(a, b int) int {
	if a < 0 {
		return -((-a*2 + b) / (2 * b))
	}
	return (a*2 + b) / (2 * b)
}
