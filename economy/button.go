// Package economy resolves player actions against the grid: harvesting,
// buying and selling tiles and machines, and buying upgrades.
package economy

import (
	"fmt"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/systems"
)

// ButtonKind says what a shop button sells.
type ButtonKind uint8

const (
	KindTerrain ButtonKind = iota
	KindMachine
	KindUpgrade
)

func (k ButtonKind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindMachine:
		return "machine"
	case KindUpgrade:
		return "upgrade"
	}
	return fmt.Sprintf("ButtonKind(%d)", uint8(k))
}

// UpgradeState tracks progress along an upgrade line. Stage starts at 1 and
// passes MaxStages once the line is exhausted.
type UpgradeState struct {
	Category  systems.Category
	Stage     int
	MaxStages int
}

// Button is one shop entry with its live price.
type Button struct {
	Label     string
	Kind      ButtonKind
	Terrain   systems.Terrain     // KindTerrain
	Machine   systems.MachineKind // KindMachine
	Upgrade   UpgradeState        // KindUpgrade
	Cost      float64
	Increment float64
	Profit    float64 // machine payout per production event

	Icon   string
	Sprite string
}

// Maxed reports whether an upgrade line has no purchases left.
func (b *Button) Maxed() bool {
	return b.Kind == KindUpgrade && b.Upgrade.Stage > b.Upgrade.MaxStages
}

// Placeable reports whether the button acts on a clicked tile.
func (b *Button) Placeable() bool {
	return b.Kind == KindTerrain || b.Kind == KindMachine
}

// NewButton builds a button from its catalog entry.
func NewButton(bc config.ButtonConfig) (Button, error) {
	b := Button{
		Label:     bc.Label,
		Cost:      bc.Cost,
		Increment: bc.Increment,
		Profit:    bc.Profit,
		Icon:      bc.Icon,
		Sprite:    bc.Sprite,
	}

	switch bc.Kind {
	case "terrain":
		t, err := systems.ParseTerrain(bc.Terrain)
		if err != nil {
			return b, fmt.Errorf("button %q: %w", bc.Label, err)
		}
		switch t {
		case systems.Water, systems.Pavement, systems.Quantum:
		case systems.Dirt, systems.Grass:
			return b, fmt.Errorf("button %q: terrain %s is not for sale", bc.Label, t)
		}
		b.Kind = KindTerrain
		b.Terrain = t

	case "machine":
		k, err := systems.ParseMachineKind(bc.Machine)
		if err != nil {
			return b, fmt.Errorf("button %q: %w", bc.Label, err)
		}
		b.Kind = KindMachine
		b.Machine = k

	case "upgrade":
		c, err := systems.ParseCategory(bc.Upgrade)
		if err != nil {
			return b, fmt.Errorf("button %q: %w", bc.Label, err)
		}
		b.Kind = KindUpgrade
		b.Upgrade = UpgradeState{Category: c, Stage: 1, MaxStages: bc.MaxStages}

	default:
		return b, fmt.Errorf("button %q: unknown kind %q", bc.Label, bc.Kind)
	}

	return b, nil
}
