package components

// Position represents an entity's screen position in pixels.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's per-frame movement in pixels.
type Velocity struct {
	X, Y float32
}
