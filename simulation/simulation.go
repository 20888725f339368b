package simulation

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathgrid/model"
)

// Tool decides what the next click does.
type Tool int

const (
	WALL Tool = iota + 1
	NEW_AGENT
)

func (t Tool) Name() string {
	switch t {
	case WALL:
		return "WALL"
	case NEW_AGENT:
		return "NEW_AGENT"
	default:
		return fmt.Sprintf("N/A(%d)", t)
	}
}

// Key is a backend independent command. Hosts translate their own key
// events into these.
type Key int

const (
	KeyNone Key = iota
	KeyWallTool
	KeyAgentTool
	KeyRandomAgents
	KeyReset
	KeyCancel
)

// Canvas receives the drawable state once per frame.
type Canvas interface {
	DrawCell(c model.Cell, s model.CellState)
	DrawPending(c model.Cell)
	DrawAgent(a *model.Agent)
}

// Stats is a HUD friendly summary.
type Stats struct {
	Tool    Tool
	Agents  int
	Moving  int
	Arrived int
	Walls   int
}

// Simulation owns the grid and every agent. It is driven from a single
// goroutine, one Tick per frame.
type Simulation struct {
	Grid   *model.Grid
	Agents []*model.Agent
	Tool   Tool

	pending    *model.Cell
	stroke     *stroke
	cfg        Config
	rng        *rand.Rand
	recomputes int
}

// NewSimulation builds an all EMPTY grid sized from cfg. A non-positive cell
// size falls back to DefaultCellSize. A nil rng is seeded from cfg.Seed, or
// from the clock when the seed is zero.
func NewSimulation(cfg Config, rng *rand.Rand) *Simulation {
	if cfg.CellSize <= 0 {
		log.Warnf("NewSimulation cell size %d, using %d", cfg.CellSize, DefaultCellSize)
		cfg.CellSize = DefaultCellSize
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	s := &Simulation{
		Grid:   model.NewGrid(cfg.Cols(), cfg.Rows()),
		Agents: make([]*model.Agent, 0),
		Tool:   WALL,
		cfg:    cfg,
		rng:    rng,
	}
	log.WithFields(log.Fields{"cols": s.Grid.Cols, "rows": s.Grid.Rows}).Info("NewSimulation")
	return s
}

func (s *Simulation) Config() Config { return s.cfg }

// Pending returns the latched origin of a half finished agent, if any.
func (s *Simulation) Pending() (model.Cell, bool) {
	if s.pending == nil {
		return model.Cell{}, false
	}
	return *s.pending, true
}

// CellAt converts pixel coordinates to a cell. Negative pixels floor to
// negative cells so they stay out of bounds, as does any non-positive cell size.
func CellAt(px, py, cellSize int) model.Cell {
	if cellSize <= 0 {
		return model.Cell{Col: -1, Row: -1}
	}
	return model.Cell{Col: floorDiv(px, cellSize), Row: floorDiv(py, cellSize)}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (s *Simulation) Stats() Stats {
	st := Stats{Tool: s.Tool, Agents: len(s.Agents), Walls: s.Grid.Walls()}
	for _, a := range s.Agents {
		if a.Moving() {
			st.Moving++
		}
		if a.Arrived() {
			st.Arrived++
		}
	}
	return st
}

// Draw feeds the canvas grid cells first, then the pending origin, then agents
// in creation order.
func (s *Simulation) Draw(cv Canvas) {
	s.Grid.Each(cv.DrawCell)
	if s.pending != nil {
		cv.DrawPending(*s.pending)
	}
	for _, a := range s.Agents {
		cv.DrawAgent(a)
	}
}
