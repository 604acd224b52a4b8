package economy

import (
	"fmt"

	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/systems"
)

// Shop owns the button catalog, the active selection and the balance.
type Shop struct {
	rules   Rules
	buttons []Button
	active  int // -1 when nothing is selected
	balance float64
	won     bool
}

// NewShop builds a shop from the loaded configuration.
func NewShop(cfg *config.Config) (*Shop, error) {
	s := &Shop{
		rules:   RulesFrom(cfg),
		active:  -1,
		balance: cfg.Economy.StartingBalance,
	}
	for i, bc := range cfg.Economy.Catalog {
		b, err := NewButton(bc)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		s.buttons = append(s.buttons, b)
	}
	return s, nil
}

// Rules returns the shop's pricing rules.
func (s *Shop) Rules() *Rules { return &s.rules }

// Buttons returns the catalog. Callers must not append to it.
func (s *Shop) Buttons() []Button { return s.buttons }

// Button returns the i-th catalog entry.
func (s *Shop) Button(i int) *Button { return &s.buttons[i] }

// Len returns the number of buttons.
func (s *Shop) Len() int { return len(s.buttons) }

// Balance returns the player's money.
func (s *Shop) Balance() float64 { return s.balance }

// Apply adds delta to the balance.
func (s *Shop) Apply(delta float64) { s.balance += delta }

// Won reports whether the win upgrade has been bought.
func (s *Shop) Won() bool { return s.won }

// ActiveIndex returns the selected button index, or -1.
func (s *Shop) ActiveIndex() int { return s.active }

// Active returns the selected button, or nil.
func (s *Shop) Active() *Button {
	if s.active < 0 {
		return nil
	}
	return &s.buttons[s.active]
}

// Select toggles selection of the i-th button. Selecting the active
// button again clears the selection.
func (s *Shop) Select(i int) {
	if i < 0 || i >= len(s.buttons) || i == s.active {
		s.active = -1
		return
	}
	s.active = i
}

// Deselect clears the selection.
func (s *Shop) Deselect() { s.active = -1 }

// Press handles a sidebar button press. Upgrades are bought immediately and
// never stay selected; other buttons toggle selection.
func (s *Shop) Press(sim *systems.SimContext, i int) Result {
	if i < 0 || i >= len(s.buttons) {
		s.Deselect()
		return Result{}
	}
	b := &s.buttons[i]
	if b.Kind != KindUpgrade {
		s.Select(i)
		return Result{}
	}

	s.Deselect()
	res := s.rules.BuyUpgrade(sim, b, s.balance)
	s.balance += res.Delta
	if res.Status == StatusWon {
		s.won = true
	}
	return res
}

// ClickTile resolves a board click with the current selection and applies
// the resulting delta to the balance.
func (s *Shop) ClickTile(sim *systems.SimContext, g *systems.Grid, c systems.Coord) Result {
	res := s.rules.Click(sim, g, c, s.balance, s.Active())
	s.balance += res.Delta
	return res
}

// Credit adds drained grid payouts to the balance and returns their sum.
func (s *Shop) Credit(payouts []systems.Payout) float64 {
	var sum float64
	for _, p := range payouts {
		sum += p.Amount
	}
	s.balance += sum
	return sum
}
