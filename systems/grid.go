package systems

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/tileclicker/config"
)

// ErrCapacity reports that the grid no longer holds exactly cols*rows tiles.
// It indicates a spread-rule bug, not a recoverable condition.
var ErrCapacity = errors.New("grid tile count differs from board capacity")

// Phase identifiers reported through SimContext.OnPhase.
const (
	PhaseTiles       = "tiles"
	PhaseWaterSpread = "water_spread"
	PhaseGrassSpread = "grass_spread"
	PhasePayouts     = "payouts"
)

// GridConfig holds the fixed-at-startup parameters of the grid.
type GridConfig struct {
	Cols, Rows   int
	CellSize     int
	InitialWater int
	PhaseWrap    int
	Ecology      config.EcologyConfig
	Machines     config.MachinesConfig
}

// GridConfigFrom extracts grid parameters from the loaded configuration.
func GridConfigFrom(cfg *config.Config) GridConfig {
	return GridConfig{
		Cols:         cfg.Board.Cols,
		Rows:         cfg.Board.Rows,
		CellSize:     cfg.Board.CellSize,
		InitialWater: cfg.Board.InitialWater,
		PhaseWrap:    cfg.Derived.PhaseWrap,
		Ecology:      cfg.Ecology,
		Machines:     cfg.Machines,
	}
}

// Grid owns every tile of the board, indexed by coordinate.
type Grid struct {
	cfg   GridConfig
	tiles []Tile // row-major, len == cols*rows

	queue []Payout

	// Scratch buffers reused by the spread passes
	sample  []int
	convert []int
}

// NewGrid creates an all-Dirt board and seeds the configured number of
// water tiles away from the border.
func NewGrid(cfg GridConfig, r Rand) *Grid {
	if cfg.PhaseWrap <= 0 {
		cfg.PhaseWrap = 360
	}
	g := &Grid{
		cfg:   cfg,
		tiles: make([]Tile, cfg.Cols*cfg.Rows),
	}
	for y := 0; y < cfg.Rows; y++ {
		for x := 0; x < cfg.Cols; x++ {
			g.tiles[g.index(x, y)] = newTile(Coord{X: x, Y: y}, g.index(x, y))
		}
	}

	for i := 0; i < cfg.InitialWater; i++ {
		g.seedWater(r)
	}

	return g
}

// seedWater converts one random interior tile to Water.
func (g *Grid) seedWater(r Rand) {
	c := Coord{
		X: RandRange(r, 1, g.cfg.Cols-2),
		Y: RandRange(r, 1, g.cfg.Rows-2),
	}
	g.At(c).ToWater(g.cfg.Ecology.MaxWaterReserve)
}

func (g *Grid) index(x, y int) int { return y*g.cfg.Cols + x }

// Config returns the grid parameters.
func (g *Grid) Config() GridConfig { return g.cfg }

// Cols returns the board width in tiles.
func (g *Grid) Cols() int { return g.cfg.Cols }

// Rows returns the board height in tiles.
func (g *Grid) Rows() int { return g.cfg.Rows }

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// Tiles returns the tiles in row-major order. Callers must not append to it.
func (g *Grid) Tiles() []Tile { return g.tiles }

// InBounds reports whether c names a tile on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.cfg.Cols && c.Y >= 0 && c.Y < g.cfg.Rows
}

// At returns the tile at c. Out-of-range coordinates clamp to the nearest
// edge tile, so edge tiles act as their own neighbours.
func (g *Grid) At(c Coord) *Tile {
	x := min(max(c.X, 0), g.cfg.Cols-1)
	y := min(max(c.Y, 0), g.cfg.Rows-1)
	return &g.tiles[g.index(x, y)]
}

var orthogonal = [4]Coord{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// AdjacentTo reports whether any N/S/E/W neighbour of c has the terrain.
func (g *Grid) AdjacentTo(c Coord, terrain Terrain) bool {
	for _, d := range orthogonal {
		if g.At(Coord{X: c.X + d.X, Y: c.Y + d.Y}).Terrain == terrain {
			return true
		}
	}
	return false
}

// AdjacentToMachine reports whether any N/S/E/W neighbour of c holds the machine kind.
func (g *Grid) AdjacentToMachine(c Coord, kind MachineKind) bool {
	for _, d := range orthogonal {
		if g.At(Coord{X: c.X + d.X, Y: c.Y + d.Y}).Machine.Kind == kind {
			return true
		}
	}
	return false
}

// FloodPump converts the 3x3 block centred on c to Water and disables
// evaporation on it. Off-board cells resolve through At, so pumps on the
// edge re-flood the edge tiles.
func (g *Grid) FloodPump(c Coord) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			t := g.At(Coord{X: c.X + dx, Y: c.Y + dy})
			t.ToWater(g.cfg.Ecology.MaxWaterReserve)
			t.EvaporationEnabled = false
		}
	}
}

// ScreenCoord returns the pixel centre of the tile at c.
func (g *Grid) ScreenCoord(c Coord) (px, py int) {
	half := g.cfg.CellSize / 2
	return c.X*g.cfg.CellSize + half, c.Y*g.cfg.CellSize + half
}

// CoordAt converts pixel coordinates to the clamped tile coordinate under them.
func (g *Grid) CoordAt(px, py int) Coord {
	x := min(max(px/g.cfg.CellSize, 0), g.cfg.Cols-1)
	y := min(max(py/g.cfg.CellSize, 0), g.cfg.Rows-1)
	return Coord{X: x, Y: y}
}

// Step advances the simulation by one frame.
func (g *Grid) Step(sim *SimContext) error {
	sim.phase(PhaseTiles)
	g.updateTiles(sim)

	sim.phase(PhaseWaterSpread)
	g.spread(sim, Water, g.cfg.Ecology.GrassFromWaterChance)

	// Fresh sample; the water pass may have changed terrain
	sim.phase(PhaseGrassSpread)
	g.spread(sim, Grass, sim.Mult.Value(CategoryGrassSpread))

	sim.phase(PhasePayouts)
	g.collectPayouts(sim)

	return g.checkCapacity()
}

// updateTiles runs ecology, machine production and the redraw stagger on every tile.
func (g *Grid) updateTiles(sim *SimContext) {
	for i := range g.tiles {
		t := &g.tiles[i]
		t.updateEcology(sim, &g.cfg)
		if t.HasMachine() {
			t.advanceMachine(sim, &g.cfg)
		}
		t.advanceRender(sim.RenderEvery)
	}
}

func (g *Grid) checkCapacity() error {
	want := g.cfg.Cols * g.cfg.Rows
	if len(g.tiles) != want {
		return fmt.Errorf("%w: have %d, want %d", ErrCapacity, len(g.tiles), want)
	}
	return nil
}

// Counts summarises the board for telemetry and the HUD.
type Counts struct {
	Terrain  [numTerrains]int
	Machines [numMachineKinds]int
}

// Of returns the count for a terrain.
func (c Counts) Of(t Terrain) int { return c.Terrain[t] }

// OfMachine returns the count for a machine kind.
func (c Counts) OfMachine(k MachineKind) int { return c.Machines[k] }

// Counts tallies terrains and machines across the board.
func (g *Grid) Counts() Counts {
	var c Counts
	for i := range g.tiles {
		c.Terrain[g.tiles[i].Terrain]++
		c.Machines[g.tiles[i].Machine.Kind]++
	}
	return c
}
