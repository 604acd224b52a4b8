package systems

import "fmt"

// Terrain is the ecological state of a tile.
type Terrain uint8

const (
	Dirt Terrain = iota
	Grass
	Water
	Pavement
	Quantum
	numTerrains
)

var terrainNames = [numTerrains]string{
	Dirt:     "dirt",
	Grass:    "grass",
	Water:    "water",
	Pavement: "pavement",
	Quantum:  "quantum",
}

func (t Terrain) String() string {
	if t < numTerrains {
		return terrainNames[t]
	}
	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// ParseTerrain returns the terrain with the given config name.
func ParseTerrain(s string) (Terrain, error) {
	for i, name := range terrainNames {
		if name == s {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}

// Coord is a grid position.
type Coord struct {
	X, Y int
}

// Tile is a single grid cell. Tiles are owned by a Grid.
type Tile struct {
	coord Coord

	Terrain            Terrain
	GrassStage         int // 0-MaxGrassStage, meaningful on Grass only
	WaterReserve       int // counts down to 0 on Water, then the tile reverts to Dirt
	EvaporationEnabled bool

	Machine       Machine
	PendingPayout float64 // owed to the player, zeroed when collected

	renderSkip  int
	renderSlot  int  // fixed offset that spreads redraws across frames
	renderEvery int  // interval renderSkip was derived for
	RedrawDue   bool // expensive redraw scheduled for this frame
}

func newTile(c Coord, slot int) Tile {
	return Tile{coord: c, Terrain: Dirt, EvaporationEnabled: true, renderSlot: slot}
}

// Coord returns the tile's grid position.
func (t *Tile) Coord() Coord { return t.coord }

// HasMachine reports whether a machine occupies the tile.
func (t *Tile) HasMachine() bool { return t.Machine.Kind != MachineNone }

// Install places a machine on the tile, overwriting any machine already
// there. Callers check HasMachine first.
func (t *Tile) Install(m Machine) { t.Machine = m }

// RemoveMachine clears the tile's machine slot.
func (t *Tile) RemoveMachine() { t.Machine = Machine{} }

// ToWater converts the tile to Water with a full reserve.
func (t *Tile) ToWater(maxReserve int) {
	t.Terrain = Water
	t.GrassStage = 0
	t.WaterReserve = maxReserve
}

// ToGrass converts the tile to Grass at stage 1.
func (t *Tile) ToGrass() {
	t.Terrain = Grass
	t.GrassStage = 1
	t.WaterReserve = 0
}

// ToDirt reverts the tile to Dirt.
func (t *Tile) ToDirt() { t.reset(Dirt) }

// ToPavement converts the tile to Pavement.
func (t *Tile) ToPavement() { t.reset(Pavement) }

// ToQuantum converts the tile to a Quantum tile.
func (t *Tile) ToQuantum() { t.reset(Quantum) }

func (t *Tile) reset(terrain Terrain) {
	t.Terrain = terrain
	t.GrassStage = 0
	t.WaterReserve = 0
}

// updateEcology applies the per-frame grass growth and water evaporation checks.
func (t *Tile) updateEcology(sim *SimContext, p *GridConfig) {
	r := sim.Rand

	if t.Terrain == Grass && t.GrassStage < p.Ecology.MaxGrassStage && Chance(r, p.Ecology.GrassGrowChance) {
		t.GrassStage++
	}

	if t.Terrain == Water && t.WaterReserve > 0 && Chance(r, p.Ecology.WaterEvapChance) {
		if t.Machine.Kind != WaterPump && t.EvaporationEnabled {
			t.WaterReserve--
		}
	}

	if t.Terrain == Water && t.WaterReserve == 0 {
		t.ToDirt()
	}
}

// advanceRender steps the staggered redraw counter. A counter at zero marks
// the tile due and reloads it with the shared interval. When the interval
// changes the counter is re-derived from the tile's slot, so tiles stay
// spread over the N frames instead of lining up.
func (t *Tile) advanceRender(every int) {
	if every < 1 {
		every = 1
	}
	if every != t.renderEvery {
		t.renderEvery = every
		t.renderSkip = t.renderSlot % every
	}
	t.RedrawDue = t.renderSkip == 0
	if t.renderSkip == 0 {
		t.renderSkip = every
	}
	t.renderSkip--
}
