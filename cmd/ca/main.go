//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/halninethousand/3d-cell-automata/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.ApplyFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	r, err := cfg.BuildRule()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(*cfg, r)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("3d-cell-automata — " + cfg.Rule)
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
