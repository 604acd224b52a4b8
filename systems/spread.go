package systems

// spread runs one spread pass: a fresh spot-check sample of tiles is taken,
// sampled Dirt tiles next to the source terrain are collected, and each
// collected tile then converts to Grass with probability p.
//
// Candidates are gathered before any conversion so a tile turned to Grass in
// this pass cannot seed its neighbours until a later pass.
func (g *Grid) spread(sim *SimContext, source Terrain, p float64) {
	r := sim.Rand

	g.sample = g.sample[:0]
	for i := range g.tiles {
		if Chance(r, g.cfg.Ecology.SpotCheckChance) {
			g.sample = append(g.sample, i)
		}
	}

	g.convert = g.convert[:0]
	for _, i := range g.sample {
		t := &g.tiles[i]
		if t.Terrain == Dirt && g.AdjacentTo(t.coord, source) {
			g.convert = append(g.convert, i)
		}
	}

	for _, i := range g.convert {
		if Chance(r, p) {
			g.tiles[i].ToGrass()
		}
	}
}
