package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathgrid/model"
	"github.com/zucenko/pathgrid/simulation"
)

const (
	frameStep = 16 * time.Millisecond
	// one grid cell is two terminal columns wide so cells look square
	cellWidth = 2
	chimeHz   = 880
)

var runeKeys = map[rune]simulation.Key{
	'w': simulation.KeyWallTool,
	'o': simulation.KeyWallTool,
	'a': simulation.KeyAgentTool,
	'i': simulation.KeyAgentTool,
	'r': simulation.KeyRandomAgents,
	'c': simulation.KeyReset,
}

type Term struct {
	screen    tcell.Screen
	sim       *simulation.Simulation
	buttons   tcell.ButtonMask
	audioInit bool
	status    string
}

func NewTerm(cfg simulation.Config) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	// the terminal is the canvas: one "pixel" per grid cell, last row for status
	w, h := screen.Size()
	cfg.CellSize = 1
	cfg.ScreenWidth = w / cellWidth
	cfg.ScreenHeight = h - 1
	if cfg.ScreenWidth < 1 || cfg.ScreenHeight < 1 {
		screen.Fini()
		return nil, fmt.Errorf("terminal %dx%d too small", w, h)
	}

	t := &Term{
		screen: screen,
		sim:    simulation.NewSimulation(cfg, nil),
	}
	if err := t.initAudio(); err != nil {
		log.Warnf("audio initialization failed: %v", err)
	}
	return t, nil
}

func (t *Term) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		t.audioInit = true
	}
	return err
}

func (t *Term) chime() {
	if !t.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, chimeHz)
	if err != nil {
		log.Warnf("chime: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

// handleInput returns false when the user quits.
func (t *Term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return false
		case tcell.KeyEscape:
			t.sim.HandleKey(simulation.KeyCancel)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if k, ok := runeKeys[ev.Rune()]; ok {
				if n := t.sim.HandleKey(k); k == simulation.KeyRandomAgents {
					t.status = fmt.Sprintf("placed %d random agents", n)
				}
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons() &^ t.buttons
		released := t.buttons &^ ev.Buttons()
		t.buttons = ev.Buttons()
		switch {
		case pressed&tcell.Button1 != 0:
			t.sim.BeginStroke(x/cellWidth, y)
		case released&tcell.Button1 != 0:
			t.sim.EndStroke()
		case t.buttons&tcell.Button1 != 0:
			t.sim.DragTo(x/cellWidth, y)
		}
		if pressed&tcell.Button2 != 0 {
			t.sim.HandleKey(simulation.KeyCancel)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// pollEvents forwards screen events until PollEvent returns nil, which it
// does once the screen is finalized. The nil is forwarded too.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		out <- ev
		if ev == nil {
			return
		}
	}
}

func (t *Term) run() {
	ticker := time.NewTicker(frameStep)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(t.screen, eventChan)

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if t.sim.Tick(frameStep) > 0 {
				t.chime()
			}
			t.draw()
		}
	}
}

func (t *Term) draw() {
	t.screen.Clear()
	t.sim.Draw(&termCanvas{screen: t.screen})

	st := t.sim.Stats()
	line := fmt.Sprintf(" %s | agents %d moving %d arrived %d walls %d | w a r c q %s",
		st.Tool.Name(), st.Agents, st.Moving, st.Arrived, st.Walls, t.status)
	_, h := t.screen.Size()
	for i, r := range line {
		t.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	t.screen.Show()
}

// termCanvas paints every grid cell as two terminal columns.
type termCanvas struct {
	screen tcell.Screen
}

func (c *termCanvas) fill(cell model.Cell, r rune, style tcell.Style) {
	for dx := 0; dx < cellWidth; dx++ {
		c.screen.SetContent(cell.Col*cellWidth+dx, cell.Row, r, nil, style)
	}
}

func (c *termCanvas) DrawCell(cell model.Cell, s model.CellState) {
	if s == model.WALL {
		c.fill(cell, '█', tcell.StyleDefault.Foreground(tcell.ColorWhite))
		return
	}
	c.fill(cell, '·', tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 70, 70)))
}

func (c *termCanvas) DrawPending(cell model.Cell) {
	c.fill(cell, '▒', tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (c *termCanvas) DrawAgent(a *model.Agent) {
	clr := a.Color()
	fg := tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B))
	c.fill(a.Destination(), '○', tcell.StyleDefault.Foreground(fg))
	c.fill(a.Position(), '█', tcell.StyleDefault.Foreground(fg))
}

// logOutput keeps logrus off the terminal the UI is drawn on.
func logOutput() io.Writer {
	path, ok := os.LookupEnv("PATHGRID_LOG_FILE")
	if !ok {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file %s: %v\n", path, err)
		return io.Discard
	}
	return f
}

func main() {
	cfg := simulation.LoadConfig()
	log.SetOutput(logOutput())
	log.SetLevel(cfg.LogLevel)

	t, err := NewTerm(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridterm: %v\n", err)
		os.Exit(1)
	}
	defer t.screen.Fini()
	t.run()
}
