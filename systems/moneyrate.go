package systems

import (
	"math"

	"github.com/pthm-cable/tileclicker/config"
)

// MoneyRate estimates earnings per second from the floater stream.
// Expired floater value goes into a pool that decays every few frames, which
// stands in for a long history buffer; a short moving average smooths the
// pool plus the live floaters.
type MoneyRate struct {
	decay       float64
	decayRate   float64
	decayFrames int
	frame       int

	window []float64
	idx    int
}

// NewMoneyRate creates an estimator from render config.
func NewMoneyRate(cfg config.RenderConfig) *MoneyRate {
	n := cfg.MoneyRateWindow
	if n < 1 {
		n = 1
	}
	return &MoneyRate{
		decayRate:   cfg.PayoutDecayRate,
		decayFrames: cfg.PayoutDecayFrames,
		frame:       cfg.PayoutDecayFrames,
		window:      make([]float64, n),
	}
}

// AddExpired adds the value of floaters that left the screen.
func (m *MoneyRate) AddExpired(v float64) {
	m.decay += v
}

// Update records one frame given the value of live floaters and returns the
// current per-second estimate.
func (m *MoneyRate) Update(live float64) float64 {
	if m.frame == 0 {
		m.decay = math.Round(m.decay*m.decayRate*100) / 100
		m.frame = m.decayFrames
	} else {
		m.frame--
	}

	m.window[m.idx] = live + m.decay
	m.idx = (m.idx + 1) % len(m.window)

	var sum float64
	for _, v := range m.window {
		sum += v
	}
	// Frames are not seconds; halving rescales to a per-second figure
	return math.Round(sum / float64(len(m.window)) / 2)
}
