package systems

import (
	"fmt"

	"github.com/pthm-cable/tileclicker/config"
)

// Category names an entry of the upgrade multiplier table.
type Category uint8

const (
	CategoryMarket Category = iota
	CategoryGrass
	CategoryRent
	CategoryGrassSpread
	CategoryQuantum
	CategoryWin
	numCategories
)

var categoryNames = [numCategories]string{
	CategoryMarket:      "market",
	CategoryGrass:       "grass",
	CategoryRent:        "rent",
	CategoryGrassSpread: "grass_spread",
	CategoryQuantum:     "quantum",
	CategoryWin:         "win",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory returns the category with the given config name.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown upgrade category %q", s)
}

// Categories returns every category in table order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Multipliers is the upgrade multiplier table. Upgrades double entries.
type Multipliers struct {
	values [numCategories]float64
}

// NewMultipliers builds the table from configured starting values.
func NewMultipliers(cfg config.MultipliersConfig) *Multipliers {
	m := &Multipliers{}
	m.values[CategoryMarket] = cfg.Market
	m.values[CategoryGrass] = cfg.Grass
	m.values[CategoryRent] = cfg.Rent
	m.values[CategoryGrassSpread] = cfg.GrassSpread
	m.values[CategoryQuantum] = cfg.Quantum
	m.values[CategoryWin] = cfg.Win
	return m
}

// Value returns the current multiplier for a category.
func (m *Multipliers) Value(c Category) float64 {
	return m.values[c]
}

// Double doubles a category's multiplier and returns the new value.
func (m *Multipliers) Double(c Category) float64 {
	m.values[c] *= 2
	return m.values[c]
}

// SimContext carries the per-frame state shared by the grid step and
// economy transactions.
type SimContext struct {
	Rand        Rand
	Mult        *Multipliers
	RenderEvery int // Tiles redraw once every N frames

	// OnPhase, when set, is called as the grid step enters each phase.
	OnPhase func(id string)
}

// NewSimContext creates a context with a render interval of 1.
func NewSimContext(r Rand, mult *Multipliers) *SimContext {
	return &SimContext{Rand: r, Mult: mult, RenderEvery: 1}
}

func (s *SimContext) phase(id string) {
	if s.OnPhase != nil {
		s.OnPhase(id)
	}
}
