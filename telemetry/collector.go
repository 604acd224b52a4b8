package telemetry

import (
	"math"

	"github.com/pthm-cable/tileclicker/systems"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	earned    float64
	harvested float64
	spent     float64
	refunded  float64
	clicks    int
	purchases int
	sales     int
	upgrades  int
	refusals  int
	payouts   []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordPayouts records machine payouts drained from the grid.
func (c *Collector) RecordPayouts(ps []systems.Payout) {
	for _, p := range ps {
		c.payouts = append(c.payouts, p.Amount)
		c.earned += p.Amount
	}
}

// RecordHarvest records a click harvest.
func (c *Collector) RecordHarvest(amount float64) {
	c.clicks++
	c.harvested += amount
}

// RecordPurchase records a tile or machine purchase.
func (c *Collector) RecordPurchase(cost float64) {
	c.clicks++
	c.purchases++
	c.spent += cost
}

// RecordSale records a sale.
func (c *Collector) RecordSale(refund float64) {
	c.clicks++
	c.sales++
	c.refunded += refund
}

// RecordUpgrade records an upgrade purchase.
func (c *Collector) RecordUpgrade(cost float64) {
	c.upgrades++
	c.spent += cost
}

// RecordRefusal records an action the shop turned down.
func (c *Collector) RecordRefusal() {
	c.clicks++
	c.refusals++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// BoardState is the game state sampled at window end.
type BoardState struct {
	Balance     float64
	MoneyRate   float64
	Counts      systems.Counts
	FPS         float64
	RenderEvery int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, board BoardState) WindowStats {
	mean, std, p10, p50, p90 := ComputePayoutStats(c.payouts)

	machines := 0
	for k := systems.DirtExcavator; k <= systems.QuantumPC; k++ {
		machines += board.Counts.OfMachine(k)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Balance:   board.Balance,
		MoneyRate: board.MoneyRate,
		Earned:    c.earned,
		Harvested: c.harvested,
		Spent:     c.spent,
		Refunded:  c.refunded,

		Clicks:    c.clicks,
		Purchases: c.purchases,
		Sales:     c.sales,
		Upgrades:  c.upgrades,
		Refusals:  c.refusals,

		Payouts:    len(c.payouts),
		PayoutMean: mean,
		PayoutStd:  std,
		PayoutP10:  p10,
		PayoutP50:  p50,
		PayoutP90:  p90,

		Dirt:     board.Counts.Of(systems.Dirt),
		Grass:    board.Counts.Of(systems.Grass),
		Water:    board.Counts.Of(systems.Water),
		Pavement: board.Counts.Of(systems.Pavement),
		Quantum:  board.Counts.Of(systems.Quantum),
		Machines: machines,

		FPS:         board.FPS,
		RenderEvery: board.RenderEvery,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.earned = 0
	c.harvested = 0
	c.spent = 0
	c.refunded = 0
	c.clicks = 0
	c.purchases = 0
	c.sales = 0
	c.upgrades = 0
	c.refusals = 0
	c.payouts = c.payouts[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
