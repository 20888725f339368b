package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/pathgrid/simulation"
	"github.com/zucenko/pathgrid/tween"
	"golang.org/x/image/font"
)

// ebiten v1 calls update at a fixed 60 ticks per second
const frameStep = time.Second / 60

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press until its release.
type Stroke struct {
	source StrokeSource

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

type keyBinding struct {
	key ebiten.Key
	cmd simulation.Key
}

var keymap = []keyBinding{
	{ebiten.KeyEscape, simulation.KeyCancel},
	{ebiten.KeyW, simulation.KeyWallTool},
	{ebiten.KeyO, simulation.KeyWallTool},
	{ebiten.KeyA, simulation.KeyAgentTool},
	{ebiten.KeyI, simulation.KeyAgentTool},
	{ebiten.KeyC, simulation.KeyReset},
	{ebiten.KeyR, simulation.KeyRandomAgents},
}

type Game struct {
	Sim     *simulation.Simulation
	Player  *tween.Player
	Slides  *tween.Slides
	strokes map[*Stroke]struct{}
	font    font.Face
	canvas  *screenCanvas
}

func NewGame(sim *simulation.Simulation, face font.Face) *Game {
	player := tween.NewPlayer()
	return &Game{
		Sim:     sim,
		Player:  player,
		Slides:  tween.NewSlides(player, sim.Config().CellSize, sim.Config().StepDelay),
		strokes: map[*Stroke]struct{}{},
		font:    face,
	}
}

func (g *Game) beginStroke(source StrokeSource) {
	s := NewStroke(source)
	g.Sim.BeginStroke(s.Position())
	g.strokes[s] = struct{}{}
}

func (g *Game) updateStroke(stroke *Stroke) {
	stroke.Update()
	if stroke.IsReleased() {
		g.Sim.EndStroke()
		delete(g.strokes, stroke)
		return
	}
	g.Sim.DragTo(stroke.Position())
}

func (g *Game) input() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.beginStroke(&MouseStrokeSource{})
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.beginStroke(&TouchStrokeSource{ID: id})
	}
	for s := range g.strokes {
		g.updateStroke(s)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.Sim.HandleKey(simulation.KeyCancel)
	}
	pressed := make([]simulation.Key, 0)
	for _, b := range keymap {
		if inpututil.IsKeyJustPressed(b.key) {
			pressed = append(pressed, b.cmd)
		}
	}
	if n := g.Sim.HandleKeys(pressed); n > 0 {
		log.Infof("Game.input %d random agents", n)
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.Player.Update(float32(frameStep.Seconds()))
	g.input()
	g.Sim.Tick(frameStep)
	g.Slides.Follow(g.Sim.Agents)

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if err := screen.Fill(color.RGBA{30, 30, 30, 255}); err != nil {
		log.Printf("%v", err)
	}
	if g.canvas == nil || g.canvas.screen != screen {
		g.canvas = &screenCanvas{screen: screen, size: g.Sim.Config().CellSize, slides: g.Slides}
	}
	g.Sim.Draw(g.canvas)
	g.drawHud(screen)
	return nil
}

func (g *Game) drawHud(screen *ebiten.Image) {
	st := g.Sim.Stats()
	label := fmt.Sprintf("agents %d  moving %d  arrived %d  walls %d", st.Agents, st.Moving, st.Arrived, st.Walls)
	if g.font != nil {
		text.Draw(screen, label, g.font, 8, screen.Bounds().Dy()-10, color.White)
	}
	ebitenutil.DebugPrintAt(screen, st.Tool.Name()+"  [W]all [A]gent [R]andom [C]lear", 4, 0)
}

func main() {
	cfg := simulation.LoadConfig()
	log.SetLevel(cfg.LogLevel)

	face, err := LoadFont(hudFontSize)
	if err != nil {
		log.Fatal(err)
	}
	g := NewGame(simulation.NewSimulation(cfg, nil), face)

	if err := ebiten.Run(g.update, cfg.ScreenWidth, cfg.ScreenHeight, 1, "Pathgrid"); err != nil {
		log.Fatal(err)
	}
}
