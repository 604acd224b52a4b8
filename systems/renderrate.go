package systems

import "github.com/pthm-cable/tileclicker/config"

// RenderRate adapts how often tiles redraw to the measured frame rate.
// Slow frames spread tile redraws over more frames, keeping input responsive.
type RenderRate struct {
	Every   int // redraw each tile once every N frames
	LowFPS  float64
	HighFPS float64
	Max     int
}

// NewRenderRate creates a controller starting at one redraw per frame.
func NewRenderRate(cfg config.RenderConfig) *RenderRate {
	return &RenderRate{
		Every:   1,
		LowFPS:  cfg.LowFPS,
		HighFPS: cfg.HighFPS,
		Max:     cfg.MaxEvery,
	}
}

// Observe adjusts the interval for the latest fps reading and returns it.
func (r *RenderRate) Observe(fps float64) int {
	switch {
	case fps < r.LowFPS:
		r.Every = min(r.Every+1, r.Max)
	case fps > r.HighFPS:
		r.Every = max(r.Every-1, 1)
	}
	return r.Every
}
