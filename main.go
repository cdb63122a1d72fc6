package main

import (
	"flag"
	"time"

	"snake-game/ai"
	"snake-game/config"
	"snake-game/game"
	"snake-game/game/types"
	"snake-game/input"
	"snake-game/log"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn("Failed to load .env: %v", err)
	}

	seed := flag.Uint64("seed", config.Uint64("SNAKE_SEED", 0), "Food placement seed (0 = time based)")
	fps := flag.Int("fps", config.Int("SNAKE_FPS", 60), "Target frames per second")
	logLevel := flag.String("log-level", config.String("SNAKE_LOG_LEVEL", "info"), "Log level: error, warn, info, debug, trace")
	autopilot := flag.Bool("autopilot", config.Bool("SNAKE_AUTOPILOT", false), "Let the computer steer (demo mode)")
	flag.Parse()

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatal("Invalid -log-level: %v", err)
	}
	log.SetLevel(level)

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	sessionID := uuid.New().String()
	logger := log.Default().With("session", sessionID)

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal("Failed to start: %v", err)
	}
	g.SetLogger(logger)
	logger.Info("Session started with seed %d", *seed)

	var pilot *ai.Autopilot
	if *autopilot {
		pilot = ai.NewAutopilot()
		logger.Info("Autopilot enabled")
	}

	renderer := ui.NewRenderer(cfg.Grid, types.TileSize)
	renderer.Autopilot = pilot != nil

	if level < log.LogLevelDebug {
		rl.SetTraceLogLevel(rl.LogWarning)
	}
	rl.InitWindow(renderer.ScreenWidth(), renderer.ScreenHeight(), "Snake")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(*fps))

	var detector input.Detector
	for !rl.WindowShouldClose() {
		pressed := detector.Next(ui.PollKeys())
		if input.Dispatch(pressed, g) {
			logger.Info("Quit requested")
			break
		}

		if pilot != nil && !g.GameOver() {
			g.RequestDirection(pilot.Decide(g))
		}

		g.Update(float64(rl.GetFrameTime()))
		renderer.Draw(g)
	}

	stats := g.Stats()
	logger.Info("Session ended after %d games, best score %d", stats.GetGamesPlayed(), stats.GetHighScore())
}
