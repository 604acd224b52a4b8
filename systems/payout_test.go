package systems

import "testing"

func TestCollectAndDrain(t *testing.T) {
	g, cfg := newTestGrid(t, 3, 2)
	g.At(Coord{2, 1}).PendingPayout = -3
	g.At(Coord{0, 0}).PendingPayout = 5
	g.At(Coord{1, 0}).PendingPayout = 0

	g.collectPayouts(newTestSim(cfg, always()))

	if g.Queued() != 2 {
		t.Fatalf("queued = %d, want 2", g.Queued())
	}
	if g.Pending() != 0 {
		t.Errorf("pending after collect = %v, want 0", g.Pending())
	}

	payouts := g.Drain()
	want := []float64{5, -3}
	if len(payouts) != len(want) {
		t.Fatalf("drained %d, want %d", len(payouts), len(want))
	}
	for i, p := range payouts {
		if p.Amount != want[i] {
			t.Errorf("payout %d = %v, want %v", i, p.Amount, want[i])
		}
	}

	if again := g.Drain(); again != nil {
		t.Errorf("second drain = %v, want nil", again)
	}
}

func TestUnsampledPayoutsWait(t *testing.T) {
	g, cfg := newTestGrid(t, 2, 2)
	g.At(Coord{1, 1}).PendingPayout = 4

	g.collectPayouts(newTestSim(cfg, never()))

	if g.Queued() != 0 {
		t.Errorf("queued = %d, want 0", g.Queued())
	}
	if g.Pending() != 4 {
		t.Errorf("pending = %v, want 4", g.Pending())
	}
}
