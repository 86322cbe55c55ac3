//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"worldmap/internal/render"
	"worldmap/internal/terrain"
	"worldmap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game displays a generated map as an ebiten.Game. The map itself is
// immutable; the viewer only picks which layer and season to paint.
type Game struct {
	cfg terrain.Config
	m   *terrain.Map

	img   *ebiten.Image
	buf   []byte
	dirty bool

	overlay *ui.Overlay

	layerIdx  int
	seasonIdx int
	scale     int
}

// New constructs a viewer over an already generated map.
func New(cfg terrain.Config, m *terrain.Map, scale int) *Game {
	size := m.Size()
	return &Game{
		cfg:     cfg,
		m:       m,
		img:     ebiten.NewImage(size.W, size.H),
		buf:     make([]byte, 4*size.W*size.H),
		dirty:   true,
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
}

// Regenerate replaces the map using a fresh time-derived seed.
func (g *Game) Regenerate() error {
	cfg := g.cfg
	cfg.Seed = time.Now().UnixNano()
	m, err := terrain.Generate(cfg)
	if err != nil {
		return err
	}
	g.m = m
	g.dirty = true
	return nil
}

// Update handles key bindings and refreshes the overlay text.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.layerIdx = (g.layerIdx + 1) % len(terrain.Layers())
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seasonIdx = (g.seasonIdx + 1) % len(terrain.Seasons())
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Regenerate(); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.overlay.SetLines(g.overlayLines())
	return nil
}

// Draw paints the active layer and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.repaint()
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.m.Size()
	return size.W * g.scale, size.H * g.scale
}

func (g *Game) repaint() {
	layer := terrain.Layers()[g.layerIdx]
	season := terrain.Seasons()[g.seasonIdx]
	p := g.cfg.Params
	switch layer {
	case terrain.LayerElevation:
		render.FillShadedRGBA(g.buf, g.m.Elevation().Cells(), func(v float64) color.RGBA {
			return terrain.ElevationColor(v, p.MinAltitude, p.MaxAltitude)
		})
	case terrain.LayerWater:
		render.FillShadedRGBA(g.buf, g.m.WaterPresence().Cells(), terrain.WaterColor)
	case terrain.LayerTemperature:
		render.FillShadedRGBA(g.buf, g.m.Temperature(season).Cells(), terrain.TemperatureColor)
	case terrain.LayerLight:
		render.FillShadedRGBA(g.buf, g.m.Light(season).Cells(), terrain.LightColor)
	}
	g.img.WritePixels(g.buf)
}

func (g *Game) overlayLines() []string {
	layer := terrain.Layers()[g.layerIdx]
	season := terrain.Seasons()[g.seasonIdx]
	lines := []string{
		fmt.Sprintf("layer %s  season %s  seed %d", layer, season, g.m.Seed()),
		fmt.Sprintf("sea level %.1f m", g.m.SeaLevel()),
	}

	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	info, err := g.m.PointInfo(x, y)
	if err != nil {
		return lines
	}
	lines = append(lines,
		fmt.Sprintf("(%d, %d) height %.1f m  water %.0f%%", x, y, info.Elevation, info.WaterPresence),
		fmt.Sprintf("temp %.1f C  light %.0f h", info.Temperature[season], info.Light[season]),
	)
	return lines
}
