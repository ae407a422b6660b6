// fovdemo renders a small roguelike-style map shaded by a flux-propagation
// field of vision centered on a player moved with WASD or hjkl. Press R to
// regenerate the map.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *radiusFlag > 0 {
		cfg.Fov.Radius = *radiusFlag
	}
	if *blocksFlag >= 0 {
		cfg.Map.Blocks = *blocksFlag
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	g := newGame(cfg)
	if *recordDefaultPGO {
		stop, err := startCPUProfile("default.pgo")
		if err != nil {
			log.Fatalf("starting profile capture: %v", err)
		}
		g.stopProfile = stop
		g.enableAutoWalk(pgoRecordDuration)
		log.Printf("recording default.pgo for %s", pgoRecordDuration)
	}

	ebiten.SetWindowSize(cfg.Window.Size*cfg.Window.Scale, cfg.Window.Size*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("game loop: %v", err)
	}
}
