//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/LilLilian59/JeuDeLaVie/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.Life().Build()
	if err != nil {
		log.Fatalf("build grid: %v", err)
	}

	game := app.New(grid, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
