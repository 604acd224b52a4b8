package systems

import "testing"

func TestToWaterSetsFullReserve(t *testing.T) {
	tile := newTile(Coord{}, 0)
	tile.ToGrass()
	tile.GrassStage = 3

	tile.ToWater(16)

	if tile.Terrain != Water {
		t.Fatalf("terrain = %v, want water", tile.Terrain)
	}
	if tile.WaterReserve != 16 {
		t.Errorf("reserve = %d, want 16", tile.WaterReserve)
	}
	if tile.GrassStage != 0 {
		t.Errorf("grass stage = %d, want 0", tile.GrassStage)
	}
}

func TestUpdateEcology(t *testing.T) {
	cfg := testConfig(t)
	gc := GridConfigFrom(cfg)
	maxStage := cfg.Ecology.MaxGrassStage

	tests := []struct {
		name        string
		setup       func(*Tile)
		rand        Rand
		wantTerrain Terrain
		wantStage   int
		wantReserve int
	}{
		{
			name:        "grass grows",
			setup:       func(tl *Tile) { tl.ToGrass() },
			rand:        always(),
			wantTerrain: Grass,
			wantStage:   2,
		},
		{
			name:        "grass capped",
			setup:       func(tl *Tile) { tl.ToGrass(); tl.GrassStage = maxStage },
			rand:        always(),
			wantTerrain: Grass,
			wantStage:   maxStage,
		},
		{
			name:        "grass idle when check fails",
			setup:       func(tl *Tile) { tl.ToGrass() },
			rand:        never(),
			wantTerrain: Grass,
			wantStage:   1,
		},
		{
			name:        "water evaporates",
			setup:       func(tl *Tile) { tl.ToWater(16) },
			rand:        always(),
			wantTerrain: Water,
			wantReserve: 15,
		},
		{
			name:        "last drop reverts to dirt",
			setup:       func(tl *Tile) { tl.ToWater(16); tl.WaterReserve = 1 },
			rand:        always(),
			wantTerrain: Dirt,
		},
		{
			name:        "empty water reverts without a draw",
			setup:       func(tl *Tile) { tl.ToWater(16); tl.WaterReserve = 0 },
			rand:        never(),
			wantTerrain: Dirt,
		},
		{
			name:        "pump holds reserve",
			setup:       func(tl *Tile) { tl.ToWater(16); tl.Install(Machine{Kind: WaterPump}) },
			rand:        always(),
			wantTerrain: Water,
			wantReserve: 16,
		},
		{
			name:        "flooded tile holds reserve",
			setup:       func(tl *Tile) { tl.ToWater(16); tl.EvaporationEnabled = false },
			rand:        always(),
			wantTerrain: Water,
			wantReserve: 16,
		},
		{
			name:        "dirt untouched",
			setup:       func(tl *Tile) {},
			rand:        always(),
			wantTerrain: Dirt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := newTile(Coord{}, 0)
			tt.setup(&tile)
			sim := newTestSim(cfg, tt.rand)

			tile.updateEcology(sim, &gc)

			if tile.Terrain != tt.wantTerrain {
				t.Errorf("terrain = %v, want %v", tile.Terrain, tt.wantTerrain)
			}
			if tile.GrassStage != tt.wantStage {
				t.Errorf("grass stage = %d, want %d", tile.GrassStage, tt.wantStage)
			}
			if tile.WaterReserve != tt.wantReserve {
				t.Errorf("reserve = %d, want %d", tile.WaterReserve, tt.wantReserve)
			}
		})
	}
}

func TestAdvanceRenderStagger(t *testing.T) {
	tests := []struct {
		every int
		want  []bool
	}{
		{every: 1, want: []bool{true, true, true, true}},
		{every: 2, want: []bool{true, false, true, false, true}},
		{every: 3, want: []bool{true, false, false, true, false, false, true}},
		{every: 0, want: []bool{true, true}},
	}

	for _, tt := range tests {
		tile := newTile(Coord{}, 0)
		for frame, want := range tt.want {
			tile.advanceRender(tt.every)
			if tile.RedrawDue != want {
				t.Errorf("every=%d frame %d: due = %v, want %v", tt.every, frame, tile.RedrawDue, want)
			}
		}
	}
}

func TestRemoveMachine(t *testing.T) {
	tile := newTile(Coord{}, 0)
	tile.Install(Machine{Kind: House, Payout: 8})
	if !tile.HasMachine() {
		t.Fatal("expected machine after install")
	}
	tile.RemoveMachine()
	if tile.HasMachine() {
		t.Error("expected empty slot after removal")
	}
}

func TestParseTerrain(t *testing.T) {
	for _, want := range []Terrain{Dirt, Grass, Water, Pavement, Quantum} {
		got, err := ParseTerrain(want.String())
		if err != nil || got != want {
			t.Errorf("ParseTerrain(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseTerrain("lava"); err == nil {
		t.Error("expected error for unknown terrain")
	}
}

func TestInstallOverwritesMachine(t *testing.T) {
	tile := newTile(Coord{}, 0)
	tile.Install(Machine{Kind: House, Payout: 8})
	tile.Install(Machine{Kind: Market, Payout: 120})

	if tile.Machine.Kind != Market || tile.Machine.Payout != 120 {
		t.Errorf("machine = %+v, want the market", tile.Machine)
	}
}
