//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"worldmap/internal/app"
	"worldmap/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg := terrain.DefaultConfig()
	cfg.Width = opts.Width
	cfg.Height = opts.Height
	cfg.Seed = opts.Seed
	cfg.Workers = opts.Workers

	m, err := terrain.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	game := app.New(cfg, m, opts.Scale)
	size := m.Size()

	ebiten.SetWindowTitle("worldmap")
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
