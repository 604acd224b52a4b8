package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/tileclicker/systems"
)

func TestComputePayoutStats(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	mean, std, p10, p50, p90 := ComputePayoutStats(values)

	if math.Abs(mean-5.5) > 1e-9 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Sample standard deviation of 1..10
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.028", std)
	}
	if p10 != 1 || p50 != 5 || p90 != 9 {
		t.Errorf("quantiles = %v %v %v, want 1 5 9", p10, p50, p90)
	}

	// Input must not be reordered
	if values[0] != 10 {
		t.Error("input slice was sorted in place")
	}
}

func TestComputePayoutStatsSmall(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
	}{
		{"empty", nil, 0},
		{"single", []float64{-54}, -54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, _, p50, _ := ComputePayoutStats(tt.values)
			if mean != tt.wantMean {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if std != 0 || math.IsNaN(std) {
				t.Errorf("std = %v, want 0", std)
			}
			if p50 != tt.wantMean {
				t.Errorf("p50 = %v, want %v", p50, tt.wantMean)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10, 1.0/30)
	if c.WindowDurationTicks() != 300 {
		t.Fatalf("window ticks = %d, want 300", c.WindowDurationTicks())
	}

	c.RecordPayouts([]systems.Payout{{Amount: 4}, {Amount: -2}, {Amount: 10}})
	c.RecordHarvest(6)
	c.RecordPurchase(17)
	c.RecordSale(18)
	c.RecordUpgrade(170)
	c.RecordRefusal()

	if c.ShouldFlush(299) {
		t.Error("flushed early")
	}
	if !c.ShouldFlush(300) {
		t.Fatal("expected flush at window end")
	}

	var counts systems.Counts
	counts.Terrain[systems.Grass] = 12
	counts.Machines[systems.House] = 2
	counts.Machines[systems.Market] = 1

	s := c.Flush(300, BoardState{Balance: 500, Counts: counts, RenderEvery: 2})

	if s.Earned != 12 || s.Payouts != 3 {
		t.Errorf("earned = %v payouts = %d", s.Earned, s.Payouts)
	}
	if s.Clicks != 4 || s.Purchases != 1 || s.Sales != 1 || s.Upgrades != 1 || s.Refusals != 1 {
		t.Errorf("counters = %+v", s)
	}
	if got := s.Net(); got != 12+6+18-17-170 {
		t.Errorf("net = %v", got)
	}
	if s.Grass != 12 || s.Machines != 3 || s.RenderEvery != 2 {
		t.Errorf("board = grass %d machines %d every %d", s.Grass, s.Machines, s.RenderEvery)
	}
	if math.Abs(s.SimTimeSec-10) > 1e-9 {
		t.Errorf("sim time = %v, want 10", s.SimTimeSec)
	}

	next := c.Flush(600, BoardState{})
	if next.Earned != 0 || next.Clicks != 0 || next.Payouts != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 300 {
		t.Errorf("window start = %d, want 300", next.WindowStartTick)
	}
}
