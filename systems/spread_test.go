package systems

import "testing"

func TestWaterSpreadsToOrthogonalDirt(t *testing.T) {
	g, cfg := newTestGrid(t, 3, 3)
	g.At(Coord{1, 1}).ToWater(16)
	sim := newTestSim(cfg, always())

	g.spread(sim, Water, 1)

	for _, c := range []Coord{{1, 0}, {0, 1}, {2, 1}, {1, 2}} {
		if tile := g.At(c); tile.Terrain != Grass || tile.GrassStage != 1 {
			t.Errorf("%v = %v stage %d, want grass stage 1", c, tile.Terrain, tile.GrassStage)
		}
	}
	for _, c := range []Coord{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if g.At(c).Terrain != Dirt {
			t.Errorf("diagonal %v = %v, want dirt", c, g.At(c).Terrain)
		}
	}
	if g.At(Coord{1, 1}).Terrain != Water {
		t.Error("source changed")
	}
}

func TestSpreadDoesNotChainWithinPass(t *testing.T) {
	g, cfg := newTestGrid(t, 5, 1)
	g.At(Coord{0, 0}).ToGrass()
	sim := newTestSim(cfg, always())

	g.spread(sim, Grass, 1)
	want := []Terrain{Grass, Grass, Dirt, Dirt, Dirt}
	for x, w := range want {
		if got := g.At(Coord{x, 0}).Terrain; got != w {
			t.Errorf("after first pass x=%d: %v, want %v", x, got, w)
		}
	}

	g.spread(sim, Grass, 1)
	if got := g.At(Coord{2, 0}).Terrain; got != Grass {
		t.Errorf("second pass x=2: %v, want grass", got)
	}
	if got := g.At(Coord{3, 0}).Terrain; got != Dirt {
		t.Errorf("second pass x=3: %v, want dirt", got)
	}
}

func TestSpreadSkipsUnsampledTiles(t *testing.T) {
	g, cfg := newTestGrid(t, 3, 3)
	g.At(Coord{1, 1}).ToWater(16)
	sim := newTestSim(cfg, never())

	g.spread(sim, Water, 1)

	if got := g.Counts().Of(Grass); got != 0 {
		t.Errorf("grass = %d, want 0", got)
	}
}

func TestSpreadLeavesNonDirtAlone(t *testing.T) {
	g, cfg := newTestGrid(t, 3, 1)
	g.At(Coord{0, 0}).ToWater(16)
	g.At(Coord{1, 0}).ToPavement()
	sim := newTestSim(cfg, always())

	g.spread(sim, Water, 1)

	if got := g.At(Coord{1, 0}).Terrain; got != Pavement {
		t.Errorf("pavement became %v", got)
	}
}
