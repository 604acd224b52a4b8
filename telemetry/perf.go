package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/tileclicker/systems"
)

// PhaseTiming is the average cost of one frame phase over the window.
type PhaseTiming struct {
	ID  string
	Avg time.Duration
	Pct float64 // share of the average frame
}

// PerfStats summarises frame timing over the rolling window.
type PerfStats struct {
	Frames   int
	AvgFrame time.Duration
	MaxFrame time.Duration
	Phases   []PhaseTiming // registry order
}

// Phase returns the timing for id, or a zero timing if it is not tracked.
func (s PerfStats) Phase(id string) PhaseTiming {
	for _, p := range s.Phases {
		if p.ID == id {
			return p
		}
	}
	return PhaseTiming{ID: id}
}

// PerfCollector times the phases of each frame over a rolling window.
// Phases come from the phase registry; unknown IDs close the open phase and
// are not timed themselves.
type PerfCollector struct {
	now  func() time.Time
	ids  []string
	slot map[string]int

	// Ring of frames, one row per frame: the frame total, then one
	// column per phase. sums holds the column totals over the ring.
	ring  []time.Duration
	sums  []time.Duration
	cols  int
	size  int
	next  int
	count int

	cur        []time.Duration
	frameStart time.Time
	phaseStart time.Time
	open       int // column of the running phase, 0 when none
}

// NewPerfCollector creates a collector averaging over window frames.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	ids := systems.NewPhaseRegistry().IDs()
	slot := make(map[string]int, len(ids))
	for i, id := range ids {
		slot[id] = i + 1
	}
	cols := len(ids) + 1
	return &PerfCollector{
		now:  time.Now,
		ids:  ids,
		slot: slot,
		ring: make([]time.Duration, window*cols),
		sums: make([]time.Duration, cols),
		cols: cols,
		size: window,
		cur:  make([]time.Duration, cols),
	}
}

// StartTick begins timing a frame.
func (p *PerfCollector) StartTick() {
	p.frameStart = p.now()
	clear(p.cur)
	p.open = 0
}

// StartPhase ends the running phase and starts timing id.
func (p *PerfCollector) StartPhase(id string) {
	now := p.now()
	p.closePhase(now)
	if col, ok := p.slot[id]; ok {
		p.open = col
		p.phaseStart = now
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.open > 0 {
		p.cur[p.open] += now.Sub(p.phaseStart)
		p.open = 0
	}
}

// EndTick closes the frame and stores it, evicting the oldest when full.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.cur[0] = now.Sub(p.frameStart)

	row := p.ring[p.next*p.cols : (p.next+1)*p.cols]
	for c := range row {
		p.sums[c] += p.cur[c] - row[c]
		row[c] = p.cur[c]
	}
	p.next = (p.next + 1) % p.size
	if p.count < p.size {
		p.count++
	}
}

// Stats returns averages over the frames currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{Frames: p.count, Phases: make([]PhaseTiming, len(p.ids))}
	for i, id := range p.ids {
		s.Phases[i].ID = id
	}
	if p.count == 0 {
		return s
	}

	n := time.Duration(p.count)
	s.AvgFrame = p.sums[0] / n
	for r := 0; r < p.count; r++ {
		s.MaxFrame = max(s.MaxFrame, p.ring[r*p.cols])
	}
	for i := range s.Phases {
		avg := p.sums[i+1] / n
		s.Phases[i].Avg = avg
		if s.AvgFrame > 0 {
			s.Phases[i].Pct = float64(avg) / float64(s.AvgFrame) * 100
		}
	}
	return s
}

// FramesPerSecond is the simulation throughput the average frame allows.
func (s PerfStats) FramesPerSecond() float64 {
	if s.AvgFrame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.AvgFrame)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
	}
	for _, ph := range s.Phases {
		if ph.Pct >= 0.1 {
			attrs = append(attrs, slog.Float64(ph.ID+"_pct", float64(int(ph.Pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the window at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "window", s)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd      int32   `csv:"window_end"`
	AvgFrameUS     int64   `csv:"avg_frame_us"`
	MaxFrameUS     int64   `csv:"max_frame_us"`
	InputPct       float64 `csv:"input_pct"`
	TilesPct       float64 `csv:"tiles_pct"`
	WaterSpreadPct float64 `csv:"water_spread_pct"`
	GrassSpreadPct float64 `csv:"grass_spread_pct"`
	PayoutsPct     float64 `csv:"payouts_pct"`
	DrainPct       float64 `csv:"drain_pct"`
	FloatersPct    float64 `csv:"floaters_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgFrameUS:     s.AvgFrame.Microseconds(),
		MaxFrameUS:     s.MaxFrame.Microseconds(),
		InputPct:       s.Phase(systems.PhaseInput).Pct,
		TilesPct:       s.Phase(systems.PhaseTiles).Pct,
		WaterSpreadPct: s.Phase(systems.PhaseWaterSpread).Pct,
		GrassSpreadPct: s.Phase(systems.PhaseGrassSpread).Pct,
		PayoutsPct:     s.Phase(systems.PhasePayouts).Pct,
		DrainPct:       s.Phase(systems.PhaseDrain).Pct,
		FloatersPct:    s.Phase(systems.PhaseFloaters).Pct,
	}
}
