// Package game owns one play session: the grid, shop and display helpers,
// advanced one frame at a time. Front ends feed it clicks and frame rate
// readings and draw from its read-only accessors.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
	"github.com/pthm-cable/tileclicker/telemetry"
)

// Game holds the complete game state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	rngSeed int64

	sim      *systems.SimContext
	grid     *systems.Grid
	shop     *economy.Shop
	floaters *systems.FloaterSystem
	rate     *systems.MoneyRate
	render   *systems.RenderRate
	phases   *systems.PhaseRegistry
	bot      *Autoplay

	moneyRate float64
	fps       float64

	// State
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	err            error

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
}

// NewGameWithOptions creates a game from cfg.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	mult := systems.NewMultipliers(cfg.Multipliers)
	sim := systems.NewSimContext(rng, mult)

	shop, err := economy.NewShop(cfg)
	if err != nil {
		return nil, fmt.Errorf("building shop: %w", err)
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:              cfg,
		rng:              rng,
		rngSeed:          opts.Seed,
		sim:              sim,
		grid:             systems.NewGrid(systems.GridConfigFrom(cfg), rng),
		shop:             shop,
		floaters:         systems.NewFloaterSystem(cfg.Render, cfg.Derived.BoardWidth, cfg.Board.CellSize),
		rate:             systems.NewMoneyRate(cfg.Render),
		render:           systems.NewRenderRate(cfg.Render),
		phases:           systems.NewPhaseRegistry(),
		paused:           opts.StartPaused,
		headless:         opts.Headless,
		stepsPerUpdate:   steps,
		collector:        telemetry.NewCollector(statsWindow, cfg.Derived.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		logStats:         opts.LogStats,
	}
	sim.OnPhase = g.perfCollector.StartPhase

	if opts.Autoplay {
		g.bot = NewAutoplay(cfg.Autoplay)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, err
		}
		g.outputManager = om
	}

	return g, nil
}

// Update advances the configured number of frames unless paused or finished.
func (g *Game) Update() {
	if g.paused || g.err != nil {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		if !g.step() {
			return
		}
	}
}

// UpdateHeadless advances frames ignoring pause; headless runs have no menu.
func (g *Game) UpdateHeadless() {
	if g.err != nil {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		if !g.step() {
			return
		}
	}
}

// step runs one frame and reports whether the session can continue.
func (g *Game) step() bool {
	g.perfCollector.StartTick()

	if g.bot != nil {
		g.perfCollector.StartPhase(systems.PhaseInput)
		g.bot.Act(g)
	}

	if err := g.grid.Step(g.sim); err != nil {
		g.perfCollector.EndTick()
		g.err = err
		slog.Error("grid step failed", "tick", g.tick, "error", err)
		return false
	}

	g.perfCollector.StartPhase(systems.PhaseDrain)
	payouts := g.grid.Drain()
	g.shop.Credit(payouts)
	g.collector.RecordPayouts(payouts)
	for _, p := range payouts {
		g.floaters.Spawn(p.X, p.Y, p.Amount, economy.FormatDelta(p.Amount))
	}

	g.perfCollector.StartPhase(systems.PhaseFloaters)
	g.rate.AddExpired(g.floaters.Update())
	g.moneyRate = g.rate.Update(g.floaters.LiveValue())

	g.perfCollector.EndTick()
	g.tick++

	g.flushTelemetry()
	return true
}

// ObserveFPS feeds a frame rate reading to the render-rate controller.
func (g *Game) ObserveFPS(fps float64) {
	g.fps = fps

	prev := g.render.Every
	every := g.render.Observe(fps)
	g.sim.RenderEvery = every
	if every != prev {
		logRenderRate(g.tick, fps, prev, every)
	}
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// TogglePause flips the pause state and returns it.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// SetPaused sets the pause state.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Paused reports whether the board is frozen.
func (g *Game) Paused() bool { return g.paused }

// SetStepsPerUpdate changes simulation speed, clamped to at least one frame.
func (g *Game) SetStepsPerUpdate(n int) { g.stepsPerUpdate = max(n, 1) }

// StepsPerUpdate returns the frames advanced per Update call.
func (g *Game) StepsPerUpdate() int { return g.stepsPerUpdate }

// Seed returns the RNG seed of the session.
func (g *Game) Seed() int64 { return g.rngSeed }

// Tick returns the number of frames stepped.
func (g *Game) Tick() int32 { return g.tick }

// Err returns the error that stopped the simulation, if any.
func (g *Game) Err() error { return g.err }

// Config returns the loaded configuration.
func (g *Game) Config() *config.Config { return g.cfg }

// Grid returns the board.
func (g *Game) Grid() *systems.Grid { return g.grid }

// Shop returns the wallet and catalog.
func (g *Game) Shop() *economy.Shop { return g.shop }

// Multipliers returns the upgrade multiplier table.
func (g *Game) Multipliers() *systems.Multipliers { return g.sim.Mult }

// Floaters returns the floating payout numbers.
func (g *Game) Floaters() *systems.FloaterSystem { return g.floaters }

// MoneyRate returns the latest earnings-per-second estimate.
func (g *Game) MoneyRate() float64 { return g.moneyRate }

// RenderEvery returns the current tile redraw interval.
func (g *Game) RenderEvery() int { return g.sim.RenderEvery }

// Phases returns the frame phase registry.
func (g *Game) Phases() *systems.PhaseRegistry { return g.phases }

// PerfStats returns rolling per-phase timings.
func (g *Game) PerfStats() telemetry.PerfStats { return g.perfCollector.Stats() }

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
