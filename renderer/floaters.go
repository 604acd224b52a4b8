package renderer

import (
	"image/color"

	"github.com/pthm-cable/tileclicker/components"
	"github.com/pthm-cable/tileclicker/systems"
)

// FloaterColor picks the label color for a floating number.
func (p Palette) FloaterColor(fl components.Floater) color.RGBA {
	switch {
	case fl.Amount > 0:
		return p.Gain
	case fl.Negative():
		return p.Loss
	default:
		return p.Status
	}
}

// DrawFloaters draws live floating numbers. Floater positions are board
// pixels; cellSize converts them to surface units.
func (b *BoardRenderer) DrawFloaters(s Surface, fs *systems.FloaterSystem, cellSize, textSize int) {
	fs.Each(func(pos components.Position, fl components.Floater) {
		x := int(pos.X) * b.CellW / cellSize
		y := int(pos.Y) * b.CellH / cellSize
		s.DrawText(fl.Text, x, y, textSize, b.Palette.FloaterColor(fl))
	})
}
