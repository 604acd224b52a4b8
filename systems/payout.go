package systems

// Payout is an amount earned by a tile, waiting to be shown and credited.
type Payout struct {
	X, Y   int // screen pixel centre of the tile
	Amount float64
}

// collectPayouts moves pending payouts of a sampled subset of tiles into the
// grid queue. Unsampled tiles keep accumulating until a later frame.
func (g *Grid) collectPayouts(sim *SimContext) {
	for i := range g.tiles {
		if !Chance(sim.Rand, g.cfg.Ecology.MachineCheckChance) {
			continue
		}
		t := &g.tiles[i]
		if t.PendingPayout == 0 {
			continue
		}
		px, py := g.ScreenCoord(t.coord)
		g.queue = append(g.queue, Payout{X: px, Y: py, Amount: t.PendingPayout})
		t.PendingPayout = 0
	}
}

// Drain returns the queued payouts in insertion order and empties the queue.
// The returned slice belongs to the caller.
func (g *Grid) Drain() []Payout {
	if len(g.queue) == 0 {
		return nil
	}
	out := g.queue
	g.queue = nil
	return out
}

// Queued returns the number of payouts waiting to be drained.
func (g *Grid) Queued() int { return len(g.queue) }

// Pending sums payouts still held on tiles.
func (g *Grid) Pending() float64 {
	var sum float64
	for i := range g.tiles {
		sum += g.tiles[i].PendingPayout
	}
	return sum
}
