package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"critters/internal/config"
)

const WindowTitle = "Cute Critters"

func main() {
	// 1. Configuration
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg = config.FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(cfg.World.Width*cfg.World.WindowScale, cfg.World.Height*cfg.World.WindowScale)
	ebiten.SetWindowTitle(WindowTitle)
	opts := &ebiten.RunGameOptions{}
	switch cfg.Mode {
	case config.ModeFloating:
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		opts.ScreenTransparent = true
	case config.ModeFullscreen:
		ebiten.SetFullscreen(true)
	default:
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// 3. Run Loop
	log.Printf("critters: %s mode, %dx%d world", cfg.Mode, cfg.World.Width, cfg.World.Height)
	if err := ebiten.RunGameWithOptions(NewGame(cfg), opts); err != nil {
		log.Fatal(err)
	}
}
