//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 14
	marginX    = 6
	marginY    = 4
)

// Overlay draws a small text panel with the current layer, season and cursor
// cell details. H toggles visibility.
type Overlay struct {
	lines   []string
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.RGBA{A: 180})
	return &Overlay{visible: true, pixel: px}
}

// SetLines replaces the text shown by the overlay.
func (o *Overlay) SetLines(lines []string) {
	o.lines = lines
}

// Update processes overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay panel in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || len(o.lines) == 0 {
		return
	}

	width := 0
	for _, line := range o.lines {
		if w := len(line) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}
	height := len(o.lines) * lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*marginX), float64(height+2*marginY))
	screen.DrawImage(o.pixel, op)

	y := marginY + lineHeight - 3
	for _, line := range o.lines {
		text.Draw(screen, line, basicfont.Face7x13, marginX, y, color.White)
		y += lineHeight
	}
}
