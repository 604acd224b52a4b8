package renderer

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/systems"
)

type rect struct {
	x, y, w, h int
	c          color.RGBA
}

// recordingSurface captures draw calls.
type recordingSurface struct {
	rects    []rect
	machines []systems.MachineKind
	texts    []string
}

func (s *recordingSurface) FillRect(x, y, w, h int, c color.RGBA) {
	s.rects = append(s.rects, rect{x, y, w, h, c})
}

func (s *recordingSurface) DrawText(text string, x, y, size int, c color.RGBA) {
	s.texts = append(s.texts, text)
}

func (s *recordingSurface) DrawMachine(kind systems.MachineKind, x, y, w, h, phase int) {
	s.machines = append(s.machines, kind)
}

type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0.999 }
func (zeroRand) Intn(int) int     { return 0 }

func newBoard(t *testing.T) (*systems.Grid, *systems.SimContext, *config.Config) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	gc := systems.GridConfigFrom(cfg)
	gc.Cols, gc.Rows = 3, 2
	gc.InitialWater = 0
	g := systems.NewGrid(gc, zeroRand{})
	sim := systems.NewSimContext(zeroRand{}, systems.NewMultipliers(cfg.Multipliers))
	return g, sim, cfg
}

func TestBoardDrawFull(t *testing.T) {
	g, _, cfg := newBoard(t)
	g.At(systems.Coord{X: 2, Y: 1}).Install(systems.Machine{Kind: systems.House})

	br := NewBoardRenderer(50, 50, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve)
	s := &recordingSurface{}

	if n := br.Draw(s, g, true); n != 6 {
		t.Fatalf("drawn = %d, want 6", n)
	}
	last := s.rects[len(s.rects)-1]
	if last.x != 100 || last.y != 50 || last.w != 50 {
		t.Errorf("last rect = %+v", last)
	}
	if len(s.machines) != 1 || s.machines[0] != systems.House {
		t.Errorf("machines = %v", s.machines)
	}
}

func TestBoardDrawOnlyDueTiles(t *testing.T) {
	g, sim, cfg := newBoard(t)
	br := NewBoardRenderer(2, 1, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve)

	sim.RenderEvery = 2
	counts := make([]int, 4)
	for frame := range counts {
		if err := g.Step(sim); err != nil {
			t.Fatal(err)
		}
		counts[frame] = br.Draw(&recordingSurface{}, g, false)
	}

	want := []int{3, 3, 3, 3}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("frame %d drew %d, want %d", i, counts[i], want[i])
		}
	}
}

func TestTileColor(t *testing.T) {
	p := DefaultPalette()
	var tile systems.Tile

	if got := p.TileColor(&tile, 4, 16); got != p.Dirt {
		t.Errorf("dirt = %v", got)
	}

	tile.ToGrass()
	if got := p.TileColor(&tile, 4, 16); got != p.GrassLight {
		t.Errorf("young grass = %v", got)
	}
	tile.GrassStage = 4
	if got := p.TileColor(&tile, 4, 16); got != p.GrassDark {
		t.Errorf("mature grass = %v", got)
	}

	tile.ToWater(16)
	if got := p.TileColor(&tile, 4, 16); got != p.WaterFull {
		t.Errorf("full water = %v", got)
	}
}
