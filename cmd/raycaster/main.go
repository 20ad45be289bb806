package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/ttacon/chalk"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *wallsFlag >= 0 {
		cfg.Walls.RandomCount = *wallsFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Wall seed: %d", seed)

	session, err := game.NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(session, cfg, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Layout.WindowWidth, cfg.Layout.WindowHeight)
	engine.SetWindowTitle("Ray Casting")
	engine.SetWindowResizable(false)

	log.Print(chalk.Green)
	log.Printf("Starting ray caster: FOV %v°, %d walls", cfg.Camera.FOV, session.WallCount())
	log.Print(chalk.Reset)

	if err := engine.RunGame(g); err != nil {
		log.Print(chalk.Red)
		log.Fatal(err)
	}

	log.Println("Bye")
}
