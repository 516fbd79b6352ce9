package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/game"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/scene"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "raycaster.json", "JSON config file (defaults are used if missing)")
	envFile := flag.String("env", ".env", "optional .env file with RAYCASTER_* overrides")
	rays := flag.Int("rays", 0, "number of rays in the fan (overrides config when > 0)")
	fov := flag.Float64("fov", 0, "field of view in degrees (overrides config when > 0)")
	hitMode := flag.String("hit", "", "ray clipping: nearest or first (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *rays > 0 {
		cfg.Rays.Count = *rays
	}
	if *fov > 0 {
		cfg.Rays.FOVDegrees = *fov
	}
	if *hitMode != "" {
		cfg.Rays.HitMode = *hitMode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Config: %dx%d, %d rays over %.0f degrees, hit mode %s",
		cfg.Window.Width, cfg.Window.Height, cfg.Rays.Count, cfg.Rays.FOVDegrees, cfg.Rays.HitMode)

	world, err := scene.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	log.Printf("Generated %d wall segments", len(world.Walls))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, world, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.Engine = engine

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s - arrows/WASD to move, H toggles hit mode", cfg.Window.Title))
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
	log.Printf("Exited after %d frames, %d blocked moves", g.FrameCount, g.Blocked)
}

// loadConfig reads the JSON config and applies environment overrides
func loadConfig(path, envFile string) (*simulation.Config, error) {
	cfg, err := simulation.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := simulation.LoadEnv(cfg, envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
