package systems

import "testing"

func TestMoneyRateAveragesWindow(t *testing.T) {
	cfg := testConfig(t)
	m := NewMoneyRate(cfg.Render)
	n := cfg.Render.MoneyRateWindow

	var got float64
	for i := 0; i < n; i++ {
		got = m.Update(14)
	}
	if got != 7 {
		t.Errorf("steady rate = %v, want 7", got)
	}

	if first := NewMoneyRate(cfg.Render).Update(14); first != 1 {
		t.Errorf("first frame = %v, want 1", first)
	}
}

func TestMoneyRateDecaysExpiredValue(t *testing.T) {
	cfg := testConfig(t)
	cfg.Render.MoneyRateWindow = 1
	cfg.Render.PayoutDecayFrames = 2
	cfg.Render.PayoutDecayRate = 0.5
	m := NewMoneyRate(cfg.Render)

	m.AddExpired(100)
	want := []float64{50, 50, 25, 25, 25, 6}
	for i, w := range want {
		if got := m.Update(0); got != w {
			t.Errorf("frame %d: rate = %v, want %v", i, got, w)
		}
	}
}
