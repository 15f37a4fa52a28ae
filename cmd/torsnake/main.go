//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"torsnake/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("torsnake")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	final := game.Final()
	fmt.Println("Game has terminated successfully!")
	fmt.Printf("Score: %d\n", final.Score)
	fmt.Printf("Size: %d\n", final.Size)

	if cfg.Stats != "" {
		if err := game.Session().WriteFile(cfg.Stats); err != nil {
			log.Printf("stats: %v", err)
		}
	}
}
