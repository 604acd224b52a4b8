package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/client"
	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	autoplay := flag.Bool("autoplay", false, "Let a bot harvest and buy machines")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
		Autoplay:       *autoplay,
		StartPaused:    !*headless,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks)
		return
	}

	rl.InitWindow(int32(cfg.Derived.ScreenWidth), int32(cfg.Derived.ScreenHeight), "Tile Clicker")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Esc opens the instructions menu instead of closing the window
	rl.SetExitKey(0)

	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	c := client.New(g)
	defer c.Unload()

	for !rl.WindowShouldClose() {
		c.Update()
		c.Draw()

		if g.Err() != nil {
			break
		}
		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless steps the board without a window until maxTicks or an error.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int) {
	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", opts.StepsPerUpdate,
		"autoplay", opts.Autoplay,
	)

	for {
		g.UpdateHeadless()

		if err := g.Err(); err != nil {
			slog.Error("simulation stopped", "tick", g.Tick(), "error", err)
			g.Unload()
			os.Exit(1)
		}
		if g.Shop().Won() {
			slog.Info("game won", "tick", g.Tick(), "balance", g.Shop().Balance())
			return
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "balance", g.Shop().Balance())
			return
		}
	}
}
