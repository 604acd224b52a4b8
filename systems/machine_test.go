package systems

import (
	"math"
	"testing"
)

func TestNewMachineRotation(t *testing.T) {
	cfg := testConfig(t)
	mc := cfg.Machines

	tests := []struct {
		name      string
		kind      MachineKind
		rand      *scriptedRand
		wantRate  int
		wantPhase int
	}{
		{"excavator forward", DirtExcavator, &scriptedRand{ints: []int{1}, floats: []float64{0.1}}, 4, 0},
		{"excavator backward", DirtExcavator, &scriptedRand{ints: []int{3}, floats: []float64{0.9}}, -6, 0},
		{"harvester", GrassHarvester, &scriptedRand{ints: []int{0}, floats: []float64{0.1}}, 3, 0},
		{"house faces a side", House, &scriptedRand{ints: []int{2}}, 0, 180},
		{"market faces a side", Market, &scriptedRand{ints: []int{3}}, 0, 270},
		{"pump", WaterPump, never(), -4, 0},
		{"quantum slow", QuantumPC, &scriptedRand{ints: []int{0}, floats: []float64{0.1}}, 26, 0},
		{"quantum fast backward", QuantumPC, &scriptedRand{ints: []int{4}, floats: []float64{0.7}}, -58, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(tt.kind, 5, tt.rand, mc)
			if m.Kind != tt.kind || m.Payout != 5 {
				t.Fatalf("machine = %+v", m)
			}
			if m.Rate != tt.wantRate {
				t.Errorf("rate = %d, want %d", m.Rate, tt.wantRate)
			}
			if m.Phase != tt.wantPhase {
				t.Errorf("phase = %d, want %d", m.Phase, tt.wantPhase)
			}
		})
	}
}

func TestPhaseWrapsBackwards(t *testing.T) {
	cfg := testConfig(t)
	gc := GridConfigFrom(cfg)
	sim := newTestSim(cfg, never())

	tile := newTile(Coord{}, 0)
	tile.Install(Machine{Kind: WaterPump, Rate: -4})
	tile.advanceMachine(sim, &gc)

	if tile.Machine.Phase != gc.PhaseWrap-4 {
		t.Errorf("phase = %d, want %d", tile.Machine.Phase, gc.PhaseWrap-4)
	}
}

func TestDirtExcavatorPaysOncePerInterval(t *testing.T) {
	g, cfg := newTestGrid(t, 3, 3)
	sim := newTestSim(cfg, never())
	g.At(Coord{1, 1}).Install(Machine{Kind: DirtExcavator, Rate: 1, Payout: 1})

	for i := 1; i < cfg.Machines.TickInterval; i++ {
		if err := g.Step(sim); err != nil {
			t.Fatal(err)
		}
	}
	if got := g.Pending(); got != 0 {
		t.Fatalf("pending before a full interval = %v, want 0", got)
	}

	// Collect everything on the crossing frame
	sim.Rand = always()
	if err := g.Step(sim); err != nil {
		t.Fatal(err)
	}

	payouts := g.Drain()
	if len(payouts) != 1 {
		t.Fatalf("got %d payouts, want 1", len(payouts))
	}
	if payouts[0].Amount != 1 {
		t.Errorf("amount = %v, want 1", payouts[0].Amount)
	}
	wx, wy := g.ScreenCoord(Coord{1, 1})
	if payouts[0].X != wx || payouts[0].Y != wy {
		t.Errorf("payout at (%d,%d), want (%d,%d)", payouts[0].X, payouts[0].Y, wx, wy)
	}
}

// tickTile installs m on a fresh tile one degree before a tick and advances it once.
func tickTile(t *testing.T, sim *SimContext, setup func(*Tile), m Machine) Tile {
	t.Helper()
	cfg := testConfig(t)
	gc := GridConfigFrom(cfg)

	tile := newTile(Coord{}, 0)
	setup(&tile)
	m.Phase = gc.Machines.TickInterval - 1
	m.Rate = 1
	tile.Install(m)
	tile.advanceMachine(sim, &gc)
	return tile
}

func TestGrassHarvesterPayout(t *testing.T) {
	cfg := testConfig(t)
	grass := func(stage int) func(*Tile) {
		return func(tl *Tile) { tl.ToGrass(); tl.GrassStage = stage }
	}

	t.Run("pays rate times stage times multiplier", func(t *testing.T) {
		sim := newTestSim(cfg, never())
		sim.Mult.Double(CategoryGrass)

		tile := tickTile(t, sim, grass(3), Machine{Kind: GrassHarvester, Payout: 12})

		if tile.PendingPayout != 72 {
			t.Errorf("payout = %v, want 72", tile.PendingPayout)
		}
		if tile.Terrain != Grass || tile.GrassStage != 3 {
			t.Errorf("tile = %v stage %d, want grass stage 3", tile.Terrain, tile.GrassStage)
		}
	})

	t.Run("depletion applies after payout", func(t *testing.T) {
		sim := newTestSim(cfg, always())

		tile := tickTile(t, sim, grass(3), Machine{Kind: GrassHarvester, Payout: 12})

		if tile.PendingPayout != 36 {
			t.Errorf("payout = %v, want 36", tile.PendingPayout)
		}
		if tile.Terrain != Dirt {
			t.Errorf("terrain = %v, want dirt", tile.Terrain)
		}
	})

	t.Run("last stage eaten reverts to dirt", func(t *testing.T) {
		// Stage loss succeeds, full depletion fails
		sim := newTestSim(cfg, &scriptedRand{floats: []float64{0.1, 0.5}, floatDefault: 0.999})

		tile := tickTile(t, sim, grass(1), Machine{Kind: GrassHarvester, Payout: 12})

		if tile.PendingPayout != 12 {
			t.Errorf("payout = %v, want 12", tile.PendingPayout)
		}
		if tile.Terrain != Dirt {
			t.Errorf("terrain = %v, want dirt", tile.Terrain)
		}
	})

	t.Run("idle on dirt", func(t *testing.T) {
		sim := newTestSim(cfg, always())

		tile := tickTile(t, sim, func(*Tile) {}, Machine{Kind: GrassHarvester, Payout: 12})

		if tile.PendingPayout != 0 {
			t.Errorf("payout = %v, want 0", tile.PendingPayout)
		}
	})
}

func TestTickRules(t *testing.T) {
	cfg := testConfig(t)

	t.Run("pump refills and charges", func(t *testing.T) {
		sim := newTestSim(cfg, never())
		tile := tickTile(t, sim, func(*Tile) {}, Machine{Kind: WaterPump, Payout: -54})

		if tile.PendingPayout != -54 {
			t.Errorf("payout = %v, want -54", tile.PendingPayout)
		}
		if tile.Terrain != Water || tile.WaterReserve != cfg.Ecology.MaxWaterReserve {
			t.Errorf("tile = %v reserve %d, want full water", tile.Terrain, tile.WaterReserve)
		}
	})

	t.Run("quantum pc needs quantum tile", func(t *testing.T) {
		sim := newTestSim(cfg, never())
		tile := tickTile(t, sim, func(*Tile) {}, Machine{Kind: QuantumPC, Payout: 20000})
		if tile.PendingPayout != 0 {
			t.Errorf("payout on dirt = %v, want 0", tile.PendingPayout)
		}

		sim.Mult.Double(CategoryQuantum)
		tile = tickTile(t, sim, func(tl *Tile) { tl.ToQuantum() }, Machine{Kind: QuantumPC, Payout: 20000})
		if tile.PendingPayout != 40000 {
			t.Errorf("payout on quantum = %v, want 40000", tile.PendingPayout)
		}
	})

	t.Run("payouts accumulate until collected", func(t *testing.T) {
		sim := newTestSim(cfg, never())
		tile := tickTile(t, sim, func(tl *Tile) { tl.PendingPayout = 2 }, Machine{Kind: DirtExcavator, Payout: 1})
		if tile.PendingPayout != 3 {
			t.Errorf("payout = %v, want 3", tile.PendingPayout)
		}
	})
}

func TestUngatedRules(t *testing.T) {
	cfg := testConfig(t)
	gc := GridConfigFrom(cfg)
	unit := cfg.Machines.MarketUnit

	tests := []struct {
		name string
		kind MachineKind
		rand Rand
		mult func(*Multipliers)
		want float64
	}{
		{"house collects rent", House, always(), func(m *Multipliers) { m.Double(CategoryRent) }, 16},
		{"house idle", House, never(), nil, 0},
		{"market loss", Market, &scriptedRand{floats: []float64{0, 0}, ints: []int{2}}, nil, -3 * unit},
		{"market gain", Market, &scriptedRand{floats: []float64{0, 0.5}, ints: []int{4}}, func(m *Multipliers) { m.Double(CategoryMarket) }, 5 * unit * 2},
		{"market idle", Market, never(), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(cfg, tt.rand)
			if tt.mult != nil {
				tt.mult(sim.Mult)
			}
			tile := newTile(Coord{}, 0)
			// Phase 1 with rate 0 never reaches a tick
			tile.Install(Machine{Kind: tt.kind, Phase: 1, Payout: 8})
			tile.advanceMachine(sim, &gc)

			if math.Abs(tile.PendingPayout-tt.want) > 1e-9 {
				t.Errorf("payout = %v, want %v", tile.PendingPayout, tt.want)
			}
		})
	}
}

func TestParseMachineKind(t *testing.T) {
	for k := DirtExcavator; k < numMachineKinds; k++ {
		got, err := ParseMachineKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseMachineKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseMachineKind("none"); err == nil {
		t.Error("expected error for none")
	}
}
