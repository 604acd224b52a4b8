package systems

import (
	"fmt"

	"github.com/pthm-cable/tileclicker/config"
)

// MachineKind identifies what occupies a tile.
type MachineKind uint8

const (
	MachineNone MachineKind = iota
	DirtExcavator
	House
	GrassHarvester
	WaterPump
	Market
	QuantumPC
	numMachineKinds
)

var machineNames = [numMachineKinds]string{
	MachineNone:    "none",
	DirtExcavator:  "dirt_excavator",
	House:          "house",
	GrassHarvester: "grass_harvester",
	WaterPump:      "water_pump",
	Market:         "market",
	QuantumPC:      "quantum_pc",
}

func (k MachineKind) String() string {
	if k < numMachineKinds {
		return machineNames[k]
	}
	return fmt.Sprintf("MachineKind(%d)", uint8(k))
}

// ParseMachineKind returns the machine kind with the given config name.
func ParseMachineKind(s string) (MachineKind, error) {
	for i, name := range machineNames {
		if name == s && MachineKind(i) != MachineNone {
			return MachineKind(i), nil
		}
	}
	return MachineNone, fmt.Errorf("unknown machine %q", s)
}

// Machine is the production state installed on a tile.
type Machine struct {
	Kind   MachineKind
	Phase  int     // rotation in degrees, wrapped
	Rate   int     // degrees per frame, negative spins backwards
	Payout float64 // base amount per production event
}

// NewMachine builds a machine with the rotation policy for its kind.
func NewMachine(kind MachineKind, payout float64, r Rand, mc config.MachinesConfig) Machine {
	m := Machine{Kind: kind, Payout: payout}

	switch kind {
	case DirtExcavator, GrassHarvester:
		m.Rate = RandRange(r, mc.RotationMin, mc.RotationMax) * randSign(r)
	case House, Market:
		// Static sprites facing a random orthogonal direction
		m.Phase = RandRange(r, 0, 3) * 90
	case WaterPump:
		m.Rate = mc.PumpRotation
	case QuantumPC:
		m.Rate = (RandRange(r, -2, 2)*mc.QuantumRotationStep + mc.QuantumRotationBase) * randSign(r)
	case MachineNone, numMachineKinds:
	}

	return m
}

// advanceMachine rotates the tile's machine and applies its production rules.
func (t *Tile) advanceMachine(sim *SimContext, p *GridConfig) {
	m := &t.Machine
	m.Phase = mod(m.Phase+m.Rate, p.PhaseWrap)

	if m.Phase%p.Machines.TickInterval == 0 {
		t.produceTick(sim, p)
	}
	t.produceUngated(sim, p)
}

// produceTick applies the phase-gated production rule for the machine kind.
func (t *Tile) produceTick(sim *SimContext, p *GridConfig) {
	r := sim.Rand
	m := &t.Machine

	switch m.Kind {
	case DirtExcavator:
		t.PendingPayout += m.Payout

	case GrassHarvester:
		if t.Terrain == Grass && t.GrassStage > 0 {
			t.PendingPayout += m.Payout * float64(t.GrassStage) * sim.Mult.Value(CategoryGrass)
			if Chance(r, p.Machines.HarvesterStageLossChance) {
				t.GrassStage--
			}
			if Chance(r, p.Machines.HarvesterDepleteChance) {
				t.ToDirt()
			}
		}
		if t.GrassStage == 0 {
			t.ToDirt()
		}

	case WaterPump:
		t.PendingPayout += m.Payout
		if t.Terrain != Water {
			t.ToWater(p.Ecology.MaxWaterReserve)
		}

	case QuantumPC:
		if t.Terrain == Quantum {
			t.PendingPayout += m.Payout * sim.Mult.Value(CategoryQuantum)
		}

	case House, Market, MachineNone, numMachineKinds:
	}
}

// produceUngated applies the per-frame production rules of machines that
// have no rotating sprite.
func (t *Tile) produceUngated(sim *SimContext, p *GridConfig) {
	r := sim.Rand
	m := &t.Machine
	mc := &p.Machines

	switch m.Kind {
	case House:
		if Chance(r, mc.HouseTaxChance) {
			t.PendingPayout += m.Payout * sim.Mult.Value(CategoryRent)
		}

	case Market:
		if Chance(r, mc.MarketChance) {
			mult := sim.Mult.Value(CategoryMarket)
			if Chance(r, mc.MarketLossChance) {
				t.PendingPayout -= float64(RandRange(r, 1, mc.MarketLossMax)) * mc.MarketUnit * mult
			} else {
				t.PendingPayout += float64(RandRange(r, 1, mc.MarketGainMax)) * mc.MarketUnit * mult
			}
		}

	case DirtExcavator, GrassHarvester, WaterPump, QuantumPC, MachineNone, numMachineKinds:
	}
}
