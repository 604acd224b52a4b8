package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated economy statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Money
	Balance   float64 `csv:"balance"`
	MoneyRate float64 `csv:"money_rate"`
	Earned    float64 `csv:"earned"`    // Machine payouts credited
	Harvested float64 `csv:"harvested"` // Click harvests
	Spent     float64 `csv:"spent"`     // Purchases and upgrades
	Refunded  float64 `csv:"refunded"`  // Sales

	// Player actions during window
	Clicks    int `csv:"clicks"`
	Purchases int `csv:"purchases"`
	Sales     int `csv:"sales"`
	Upgrades  int `csv:"upgrades"`
	Refusals  int `csv:"refusals"` // Can't afford, occupied or maxed

	// Payout distribution
	Payouts    int     `csv:"payouts"`
	PayoutMean float64 `csv:"payout_mean"`
	PayoutStd  float64 `csv:"payout_std"`
	PayoutP10  float64 `csv:"payout_p10"`
	PayoutP50  float64 `csv:"payout_p50"`
	PayoutP90  float64 `csv:"payout_p90"`

	// Board at window end
	Dirt     int `csv:"dirt"`
	Grass    int `csv:"grass"`
	Water    int `csv:"water"`
	Pavement int `csv:"pavement"`
	Quantum  int `csv:"quantum"`
	Machines int `csv:"machines"`

	// Rendering
	FPS         float64 `csv:"fps"`
	RenderEvery int     `csv:"render_every"`
}

// ComputePayoutStats calculates mean, std, and percentiles from payout amounts.
func ComputePayoutStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// Net returns the window's total balance change.
func (s WindowStats) Net() float64 {
	return s.Earned + s.Harvested + s.Refunded - s.Spent
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("balance", s.Balance),
		slog.Float64("money_rate", s.MoneyRate),
		slog.Float64("earned", s.Earned),
		slog.Float64("harvested", s.Harvested),
		slog.Float64("spent", s.Spent),
		slog.Float64("refunded", s.Refunded),
		slog.Int("clicks", s.Clicks),
		slog.Int("purchases", s.Purchases),
		slog.Int("sales", s.Sales),
		slog.Int("upgrades", s.Upgrades),
		slog.Int("refusals", s.Refusals),
		slog.Int("payouts", s.Payouts),
		slog.Float64("payout_mean", s.PayoutMean),
		slog.Float64("payout_std", s.PayoutStd),
		slog.Float64("payout_p50", s.PayoutP50),
		slog.Int("grass", s.Grass),
		slog.Int("water", s.Water),
		slog.Int("machines", s.Machines),
		slog.Int("render_every", s.RenderEvery),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"balance", s.Balance,
		"money_rate", s.MoneyRate,
		"earned", s.Earned,
		"harvested", s.Harvested,
		"spent", s.Spent,
		"refunded", s.Refunded,
		"clicks", s.Clicks,
		"purchases", s.Purchases,
		"sales", s.Sales,
		"upgrades", s.Upgrades,
		"refusals", s.Refusals,
		"payouts", s.Payouts,
		"payout_mean", s.PayoutMean,
		"payout_std", s.PayoutStd,
		"payout_p10", s.PayoutP10,
		"payout_p50", s.PayoutP50,
		"payout_p90", s.PayoutP90,
		"dirt", s.Dirt,
		"grass", s.Grass,
		"water", s.Water,
		"pavement", s.Pavement,
		"quantum", s.Quantum,
		"machines", s.Machines,
		"fps", s.FPS,
		"render_every", s.RenderEvery,
	)
}
