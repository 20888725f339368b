package model

import (
	"image/color"
	"time"

	"github.com/google/uuid"
)

// Agent walks a cached shortest path toward a fixed destination, one cell
// per step delay.
type Agent struct {
	id          uuid.UUID
	position    Cell
	destination Cell
	color       color.RGBA

	path   []Cell
	cursor int
	timer  time.Duration

	stepDelay time.Duration
}

func NewAgent(origin, destination Cell, c color.RGBA, stepDelay time.Duration) *Agent {
	return &Agent{
		id:          uuid.New(),
		position:    origin,
		destination: destination,
		color:       c,
		stepDelay:   stepDelay,
	}
}

func (a *Agent) ID() uuid.UUID { return a.id }
func (a *Agent) Position() Cell { return a.position }
func (a *Agent) Destination() Cell { return a.destination }
func (a *Agent) Color() color.RGBA { return a.color }
func (a *Agent) Cursor() int { return a.cursor }
func (a *Agent) Timer() time.Duration { return a.timer }
func (a *Agent) StepDelay() time.Duration { return a.stepDelay }

// Path returns a copy of the cached route.
func (a *Agent) Path() []Cell {
	out := make([]Cell, len(a.path))
	copy(out, a.path)
	return out
}

// SetPath replaces the route and restarts cursor and timer.
func (a *Agent) SetPath(path []Cell) {
	a.path = path
	a.cursor = 0
	a.timer = 0
}

// Moving reports whether unwalked cells remain on the path.
func (a *Agent) Moving() bool {
	return a.cursor < len(a.path)
}

func (a *Agent) Arrived() bool {
	return a.position == a.destination
}

// Advance accumulates dt and takes at most one step once the timer reaches
// the step delay. Extra elapsed time is dropped, the agent never catches up.
// It reports whether a step was taken.
func (a *Agent) Advance(dt time.Duration) bool {
	if !a.Moving() {
		return false
	}
	a.timer += dt
	if a.timer < a.stepDelay {
		return false
	}
	a.position = a.path[a.cursor]
	a.cursor++
	a.timer = 0
	return true
}
