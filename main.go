package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappy/rng"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Uint64("seed", rng.DefaultSeed, "seed for pipe offsets")
	watch := flag.Bool("watch", false, "restart the scene when a prefab in prefabs/ changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("flappy")

	game, err := NewGame(*seed, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
