// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Board       BoardConfig       `yaml:"board"`
	Ecology     EcologyConfig     `yaml:"ecology"`
	Machines    MachinesConfig    `yaml:"machines"`
	Harvest     HarvestConfig     `yaml:"harvest"`
	Render      RenderConfig      `yaml:"render"`
	Multipliers MultipliersConfig `yaml:"multipliers"`
	Economy     EconomyConfig     `yaml:"economy"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Autoplay    AutoplayConfig    `yaml:"autoplay"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	SidebarWidth int `yaml:"sidebar_width"` // Shop column to the right of the board
	TargetFPS    int `yaml:"target_fps"`
}

// BoardConfig holds grid dimensions.
type BoardConfig struct {
	Cols         int `yaml:"cols"`
	Rows         int `yaml:"rows"`
	CellSize     int `yaml:"cell_size"`     // Pixels per tile edge
	InitialWater int `yaml:"initial_water"` // Random water tiles seeded at startup
}

// EcologyConfig holds per-frame probabilities for terrain transitions.
type EcologyConfig struct {
	GrassGrowChance      float64 `yaml:"grass_grow_chance"`
	WaterEvapChance      float64 `yaml:"water_evap_chance"`
	GrassFromWaterChance float64 `yaml:"grass_from_water_chance"`
	SpotCheckChance      float64 `yaml:"spot_check_chance"`    // Per-tile inclusion in a spread pass
	MachineCheckChance   float64 `yaml:"machine_check_chance"` // Per-tile inclusion in payout collection
	MaxGrassStage        int     `yaml:"max_grass_stage"`
	MaxWaterReserve      int     `yaml:"max_water_reserve"`
}

// MachinesConfig holds machine rotation and production parameters.
type MachinesConfig struct {
	TickInterval             int     `yaml:"tick_interval"` // Degrees of rotation between production ticks
	RotationMin              int     `yaml:"rotation_min"`
	RotationMax              int     `yaml:"rotation_max"`
	PumpRotation             int     `yaml:"pump_rotation"`
	QuantumRotationBase      int     `yaml:"quantum_rotation_base"`
	QuantumRotationStep      int     `yaml:"quantum_rotation_step"`
	HarvesterStageLossChance float64 `yaml:"harvester_stage_loss_chance"`
	HarvesterDepleteChance   float64 `yaml:"harvester_deplete_chance"`
	HouseTaxChance           float64 `yaml:"house_tax_chance"`
	MarketChance             float64 `yaml:"market_chance"`
	MarketLossChance         float64 `yaml:"market_loss_chance"`
	MarketUnit               float64 `yaml:"market_unit"`
	MarketLossMax            int     `yaml:"market_loss_max"`
	MarketGainMax            int     `yaml:"market_gain_max"`
}

// HarvestConfig holds values for clicking a tile with nothing selected.
type HarvestConfig struct {
	Dirt          float64 `yaml:"dirt"`
	Pavement      float64 `yaml:"pavement"`
	Water         float64 `yaml:"water"`
	GrassPerStage float64 `yaml:"grass_per_stage"`
	GrassBase     float64 `yaml:"grass_base"`
	Quantum       float64 `yaml:"quantum"`
}

// RenderConfig holds render-rate and payout display parameters.
type RenderConfig struct {
	LowFPS            float64 `yaml:"low_fps"`  // Below this, redraw tiles less often
	HighFPS           float64 `yaml:"high_fps"` // Above this, redraw tiles more often
	MaxEvery          int     `yaml:"max_every"`
	FloaterLifetime   int     `yaml:"floater_lifetime"` // Frames a payout number stays visible
	FloaterRise       float32 `yaml:"floater_rise"`     // Pixels per frame
	PayoutDecayRate   float64 `yaml:"payout_decay_rate"`
	PayoutDecayFrames int     `yaml:"payout_decay_frames"`
	MoneyRateWindow   int     `yaml:"money_rate_window"`
}

// MultipliersConfig holds starting values of the upgrade multiplier table.
type MultipliersConfig struct {
	Market      float64 `yaml:"market"`
	Grass       float64 `yaml:"grass"`
	Rent        float64 `yaml:"rent"`
	GrassSpread float64 `yaml:"grass_spread"`
	Quantum     float64 `yaml:"quantum"`
	Win         float64 `yaml:"win"`
}

// EconomyConfig holds shop pricing and the button catalog.
type EconomyConfig struct {
	StartingBalance   float64        `yaml:"starting_balance"`
	SaleRefund        float64        `yaml:"sale_refund"`         // Fraction of current cost refunded on sale
	UpgradeCostGrowth float64        `yaml:"upgrade_cost_growth"` // Cost multiplier per upgrade stage
	Catalog           []ButtonConfig `yaml:"catalog"`
}

// ButtonConfig describes one shop entry.
type ButtonConfig struct {
	Label     string  `yaml:"label"`
	Kind      string  `yaml:"kind"`    // terrain, machine or upgrade
	Terrain   string  `yaml:"terrain"` // for kind=terrain
	Machine   string  `yaml:"machine"` // for kind=machine
	Upgrade   string  `yaml:"upgrade"` // multiplier category for kind=upgrade
	Cost      float64 `yaml:"cost"`
	Increment float64 `yaml:"increment"`
	Profit    float64 `yaml:"profit"`
	MaxStages int     `yaml:"max_stages"`
	Icon      string  `yaml:"icon"`
	Sprite    string  `yaml:"sprite"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of simulated time per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AutoplayConfig holds the headless bot cadence.
type AutoplayConfig struct {
	ClickEvery int `yaml:"click_every"` // Frames between harvest clicks
	BuyEvery   int `yaml:"buy_every"`   // Frames between purchase attempts
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	BoardWidth   int     // Board width in pixels
	BoardHeight  int     // Board height in pixels
	ScreenWidth  int     // Board plus sidebar
	ScreenHeight int     //
	DT           float64 // Seconds per frame at the target rate
	Capacity     int     // Cols * Rows
	PhaseWrap    int     // lcm(360, TickInterval)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c *Config) Validate() error {
	var errs []error

	if c.Board.Cols <= 0 || c.Board.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board: cols and rows must be positive, got %dx%d", c.Board.Cols, c.Board.Rows))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board: cell_size must be positive, got %d", c.Board.CellSize))
	}
	if c.Board.InitialWater < 0 {
		errs = append(errs, fmt.Errorf("board: initial_water must not be negative"))
	}
	if c.Ecology.MaxGrassStage < 1 || c.Ecology.MaxWaterReserve < 1 {
		errs = append(errs, errors.New("ecology: max_grass_stage and max_water_reserve must be at least 1"))
	}
	if c.Machines.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("machines: tick_interval must be positive, got %d", c.Machines.TickInterval))
	}
	if c.Machines.RotationMin > c.Machines.RotationMax {
		errs = append(errs, fmt.Errorf("machines: rotation_min %d exceeds rotation_max %d", c.Machines.RotationMin, c.Machines.RotationMax))
	}
	if c.Machines.MarketLossMax < 1 || c.Machines.MarketGainMax < 1 {
		errs = append(errs, errors.New("machines: market_loss_max and market_gain_max must be at least 1"))
	}
	if c.Render.LowFPS >= c.Render.HighFPS {
		errs = append(errs, fmt.Errorf("render: low_fps %.1f must be below high_fps %.1f", c.Render.LowFPS, c.Render.HighFPS))
	}
	if c.Render.MaxEvery < 1 {
		errs = append(errs, fmt.Errorf("render: max_every must be at least 1"))
	}

	probs := map[string]float64{
		"ecology.grass_grow_chance":            c.Ecology.GrassGrowChance,
		"ecology.water_evap_chance":            c.Ecology.WaterEvapChance,
		"ecology.grass_from_water_chance":      c.Ecology.GrassFromWaterChance,
		"ecology.spot_check_chance":            c.Ecology.SpotCheckChance,
		"ecology.machine_check_chance":         c.Ecology.MachineCheckChance,
		"machines.harvester_stage_loss_chance": c.Machines.HarvesterStageLossChance,
		"machines.harvester_deplete_chance":    c.Machines.HarvesterDepleteChance,
		"machines.house_tax_chance":            c.Machines.HouseTaxChance,
		"machines.market_chance":               c.Machines.MarketChance,
		"machines.market_loss_chance":          c.Machines.MarketLossChance,
		"economy.sale_refund":                  c.Economy.SaleRefund,
	}
	for name, p := range probs {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, p))
		}
	}

	for i, b := range c.Economy.Catalog {
		if b.Label == "" {
			errs = append(errs, fmt.Errorf("economy.catalog[%d]: label is required", i))
		}
		if b.Cost < 0 || b.Increment < 0 {
			errs = append(errs, fmt.Errorf("economy.catalog[%d] %q: cost and increment must not be negative", i, b.Label))
		}
		if b.Kind == "upgrade" && b.MaxStages < 1 {
			errs = append(errs, fmt.Errorf("economy.catalog[%d] %q: max_stages must be at least 1", i, b.Label))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.BoardWidth = c.Board.Cols * c.Board.CellSize
	c.Derived.BoardHeight = c.Board.Rows * c.Board.CellSize
	c.Derived.ScreenWidth = c.Derived.BoardWidth + c.Screen.SidebarWidth
	c.Derived.ScreenHeight = c.Derived.BoardHeight
	c.Derived.Capacity = c.Board.Cols * c.Board.Rows

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 30
	}
	c.Derived.DT = 1.0 / float64(fps)

	// Phase wraps at a multiple of both a full turn and the tick interval,
	// so the visual angle and the tick test both survive the wrap.
	c.Derived.PhaseWrap = 360 / gcd(360, c.Machines.TickInterval) * c.Machines.TickInterval
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
