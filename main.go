package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"schulte/game"
	"schulte/storage"
)

func main() {
	config := game.LoadConfig()

	records, err := storage.Open(config.DBPath)
	if err != nil {
		// Best-time tracking is non-critical: play on without records.
		log.Printf("open best-time store: %v", err)
	}
	defer records.Close()

	g := game.NewGame(config, records)

	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetWindowTitle("Schulte Table")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
