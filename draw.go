package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/zucenko/pathgrid/model"
	"github.com/zucenko/pathgrid/tween"
)

var (
	COLOR_EMPTY   = color.RGBA{60, 60, 60, 255}
	COLOR_WALL    = color.RGBA{200, 200, 200, 255}
	COLOR_PENDING = color.RGBA{250, 200, 30, 255}
)

// screenCanvas draws the simulation onto an ebiten image.
type screenCanvas struct {
	screen *ebiten.Image
	size   int
	slides *tween.Slides
}

func (c *screenCanvas) rect(x, y, inset float64, clr color.Color) {
	s := float64(c.size)
	ebitenutil.DrawRect(c.screen, x+inset, y+inset, s-2*inset, s-2*inset, clr)
}

func (c *screenCanvas) DrawCell(cell model.Cell, s model.CellState) {
	clr := COLOR_EMPTY
	if s == model.WALL {
		clr = COLOR_WALL
	}
	c.rect(float64(cell.Col*c.size), float64(cell.Row*c.size), 1, clr)
}

func (c *screenCanvas) DrawPending(cell model.Cell) {
	c.rect(float64(cell.Col*c.size), float64(cell.Row*c.size), 1, COLOR_PENDING)
	c.rect(float64(cell.Col*c.size), float64(cell.Row*c.size), 4, COLOR_EMPTY)
}

func (c *screenCanvas) DrawAgent(a *model.Agent) {
	clr := a.Color()
	dest := a.Destination()
	c.rect(float64(dest.Col*c.size), float64(dest.Row*c.size), float64(c.size)*.35, clr)

	x, y, scale := float64(a.Position().Col*c.size), float64(a.Position().Row*c.size), 1.
	if s, ok := c.slides.Get(a.ID()); ok {
		x, y, scale = s.X, s.Y, s.Scale
	}
	inset := float64(c.size) * .2 / scale
	c.rect(x, y, inset, clr)
}
