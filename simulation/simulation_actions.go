package simulation

import (
	"image/color"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathgrid/model"
)

// HandleClick applies the active tool to the cell under the pixel position.
func (s *Simulation) HandleClick(px, py int) {
	cell := CellAt(px, py, s.cfg.CellSize)
	if !s.Grid.InBounds(cell) {
		log.Debugf("HandleClick %d,%d outside grid", px, py)
		return
	}

	switch s.Tool {
	case WALL:
		s.Grid.ToggleWall(cell)
		log.Debugf("HandleClick toggled %v to %s", cell, s.Grid.StateAt(cell).Name())
		s.Recompute()
	case NEW_AGENT:
		if s.Grid.StateAt(cell) == model.WALL {
			log.Debugf("HandleClick %v is a wall", cell)
			return
		}
		if s.pending == nil {
			s.pending = &cell
			log.Debugf("HandleClick origin %v latched", cell)
			return
		}
		origin := *s.pending
		s.pending = nil
		s.AddAgent(origin, cell)
	}
}

// HandleKey dispatches a command. For KeyRandomAgents it returns the number
// of agents actually created, otherwise 0.
func (s *Simulation) HandleKey(k Key) int {
	switch k {
	case KeyWallTool:
		s.SetTool(WALL)
	case KeyAgentTool:
		s.SetTool(NEW_AGENT)
	case KeyRandomAgents:
		return s.GenerateAgents(s.cfg.RandomAgents)
	case KeyReset:
		s.Reset()
	case KeyCancel:
		s.pending = nil
	}
	return 0
}

// keyOrder is the order HandleKeys applies commands that arrive together:
// cancel and tool switches first, reset before random placement so the new
// agents survive.
var keyOrder = []Key{KeyCancel, KeyWallTool, KeyAgentTool, KeyReset, KeyRandomAgents}

// HandleKeys dispatches every command pressed during one frame in keyOrder,
// each at most once, and returns the number of random agents created.
func (s *Simulation) HandleKeys(pressed []Key) int {
	created := 0
	for _, k := range keyOrder {
		for _, p := range pressed {
			if p == k {
				created += s.HandleKey(k)
				break
			}
		}
	}
	return created
}

// SetTool switches the click mode and drops any pending origin.
func (s *Simulation) SetTool(t Tool) {
	s.EndStroke()
	s.pending = nil
	if s.Tool == t {
		return
	}
	s.Tool = t
	log.Infof("SetTool %s", t.Name())
}

// AddAgent creates an agent walking from origin to destination and computes
// its first route. Walls and out of bounds cells are rejected.
func (s *Simulation) AddAgent(origin, destination model.Cell) *model.Agent {
	if !s.Grid.InBounds(origin) || !s.Grid.InBounds(destination) {
		return nil
	}
	if s.Grid.StateAt(origin) == model.WALL || s.Grid.StateAt(destination) == model.WALL {
		return nil
	}
	a := model.NewAgent(origin, destination, s.randomColor(), s.cfg.StepDelay)
	a.SetPath(model.FindPath(origin, destination, s.Grid))
	s.Agents = append(s.Agents, a)
	log.WithFields(log.Fields{
		"agent": a.ID(),
		"from":  origin,
		"to":    destination,
		"steps": len(a.Path()),
	}).Info("AddAgent")
	return a
}

// GenerateAgents tries to place n agents on random, distinct, non-wall cells
// within the configured attempt budget and returns how many were placed.
func (s *Simulation) GenerateAgents(n int) int {
	created := 0
	if s.Grid.Cols == 0 || s.Grid.Rows == 0 {
		return created
	}
	for attempt := 0; attempt < s.cfg.RandomAttempts && created < n; attempt++ {
		origin := s.randomCell()
		destination := s.randomCell()
		if origin == destination {
			continue
		}
		if s.Grid.StateAt(origin) == model.WALL || s.Grid.StateAt(destination) == model.WALL {
			continue
		}
		if s.AddAgent(origin, destination) != nil {
			created++
		}
	}
	if created < n {
		log.Warnf("GenerateAgents placed %d of %d", created, n)
	} else {
		log.Infof("GenerateAgents placed %d", created)
	}
	return created
}

// Recompute reroutes every agent from where it stands now.
func (s *Simulation) Recompute() {
	for _, a := range s.Agents {
		a.SetPath(model.FindPath(a.Position(), a.Destination(), s.Grid))
	}
	s.recomputes++
	log.Debugf("Recompute #%d rerouted %d agents", s.recomputes, len(s.Agents))
}

// Reset clears walls, agents, the pending origin and any stroke in
// progress. The tool is kept.
func (s *Simulation) Reset() {
	s.Grid.Reset()
	s.Agents = make([]*model.Agent, 0)
	s.pending = nil
	s.stroke = nil
	log.Info("Reset")
}

// Tick advances every agent by dt and returns how many reached their
// destination during this tick.
func (s *Simulation) Tick(dt time.Duration) int {
	arrived := 0
	for _, a := range s.Agents {
		if a.Advance(dt) && a.Arrived() {
			arrived++
			log.WithField("agent", a.ID()).Debug("arrived")
		}
	}
	return arrived
}

func (s *Simulation) randomCell() model.Cell {
	return model.Cell{Col: s.rng.Intn(s.Grid.Cols), Row: s.rng.Intn(s.Grid.Rows)}
}

func (s *Simulation) randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(64 + s.rng.Intn(192)),
		G: uint8(64 + s.rng.Intn(192)),
		B: uint8(64 + s.rng.Intn(192)),
		A: 255,
	}
}
