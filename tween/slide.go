package tween

import (
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/pathgrid/model"
)

const (
	pulseScale   = 1.4
	pulseSeconds = .4
)

// Slide is the on screen pixel position of one agent, eased between cells.
type Slide struct {
	X, Y  float64
	Cell  model.Cell
	Scale float64
}

// Slides keeps one Slide per agent in step with the simulation.
type Slides struct {
	player   *Player
	slides   map[uuid.UUID]*Slide
	cellSize int
	seconds  float32
}

// NewSlides eases each step over most of the step delay so an agent settles
// before its next move.
func NewSlides(p *Player, cellSize int, stepDelay time.Duration) *Slides {
	return &Slides{
		player:   p,
		slides:   make(map[uuid.UUID]*Slide),
		cellSize: cellSize,
		seconds:  float32(stepDelay.Seconds()) * .8,
	}
}

func (s *Slides) Get(id uuid.UUID) (*Slide, bool) {
	sl, ok := s.slides[id]
	return sl, ok
}

func (s *Slides) Len() int {
	return len(s.slides)
}

func (s *Slides) pixel(c model.Cell) (float64, float64) {
	size := float64(s.cellSize)
	return float64(c.Col) * size, float64(c.Row) * size
}

// Follow starts a slide for every agent whose cell changed since the last
// call and forgets agents that no longer exist. An agent stepping onto its
// destination gets a bounce after the slide.
func (s *Slides) Follow(agents []*model.Agent) {
	alive := make(map[uuid.UUID]struct{}, len(agents))

	for _, agent := range agents {
		alive[agent.ID()] = struct{}{}
		pos := agent.Position()
		sl, found := s.slides[agent.ID()]
		if !found {
			x, y := s.pixel(pos)
			s.slides[agent.ID()] = &Slide{X: x, Y: y, Cell: pos, Scale: 1}
			continue
		}
		if sl.Cell == pos {
			continue
		}

		fromX, fromY := sl.X, sl.Y
		toX, toY := s.pixel(pos)
		sl.Cell = pos
		move := &Action{OnChange: func(v float32) {
			sl.X = fromX + (toX-fromX)*float64(v)
			sl.Y = fromY + (toY-fromY)*float64(v)
		}}
		if agent.Arrived() {
			pulse := gween.New(pulseScale, 1, pulseSeconds, ease.OutBounce)
			move.Next(pulse).OnChange = func(v float32) { sl.Scale = float64(v) }
			move.AddOnFinish(func() { sl.Scale = pulseScale })
		}
		s.player.Add(gween.New(0, 1, s.seconds, ease.OutQuad), move)
	}

	for id := range s.slides {
		if _, ok := alive[id]; !ok {
			delete(s.slides, id)
		}
	}
}
