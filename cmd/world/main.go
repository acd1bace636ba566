//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildgrid/internal/app"
	"wildgrid/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wcfg := world.DefaultConfig()
	if cfg.ConfigFile != "" {
		loaded, err := world.LoadFile(cfg.ConfigFile)
		if err != nil {
			log.Fatal(err)
		}
		wcfg = loaded
	} else {
		wcfg.Size = cfg.Size
		wcfg.Seed = cfg.Seed
	}

	w, err := world.Generate(wcfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(w, cfg.Scale, cfg.TPS, wcfg.Seed)

	ebiten.SetWindowTitle("wildgrid")
	width, height := game.Layout(0, 0)
	ebiten.SetWindowSize(width, height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
