package systems

import "testing"

func TestRenderRateObserve(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name string
		fps  []float64
		want int
	}{
		{"starts at one", nil, 1},
		{"slow frame backs off", []float64{10}, 2},
		{"capped at max", []float64{10, 10, 10, 10, 10}, cfg.Render.MaxEvery},
		{"fast frames recover", []float64{10, 10, 30}, 2},
		{"never below one", []float64{60, 60}, 1},
		{"steady band holds", []float64{10, 20, 20}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderRate(cfg.Render)
			for _, fps := range tt.fps {
				r.Observe(fps)
			}
			if r.Every != tt.want {
				t.Errorf("every = %d, want %d", r.Every, tt.want)
			}
		})
	}
}
