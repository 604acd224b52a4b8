// Package components defines ECS components for display-layer entities.
package components

// Floater is a payout number rising above the tile that earned it.
type Floater struct {
	Amount float64 // credited value, 0 for status messages
	Text   string  // rendered label
	Stage  int     // frames left; the entity is removed below zero
}

// Negative reports whether the floater shows a loss or a spend.
func (f Floater) Negative() bool { return f.Amount < 0 }
