package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/tileclicker/config"
)

// scriptedRand replays fixed draws, then falls back to defaults.
type scriptedRand struct {
	floats []float64
	ints   []int

	// Returned once the scripts run out
	floatDefault float64
	intDefault   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.floatDefault
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.intDefault
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// never makes every Chance with p < 1 fail.
func never() *scriptedRand { return &scriptedRand{floatDefault: 0.999999} }

// always makes every Chance with p > 0 succeed.
func always() *scriptedRand { return &scriptedRand{floatDefault: 0} }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	return cfg
}

// newTestGrid builds a cols x rows grid with no seeded water.
func newTestGrid(t *testing.T, cols, rows int) (*Grid, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	gc := GridConfigFrom(cfg)
	gc.Cols, gc.Rows = cols, rows
	gc.InitialWater = 0
	return NewGrid(gc, never()), cfg
}

func newTestSim(cfg *config.Config, r Rand) *SimContext {
	return NewSimContext(r, NewMultipliers(cfg.Multipliers))
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
