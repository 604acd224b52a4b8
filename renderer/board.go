package renderer

import "github.com/pthm-cable/tileclicker/systems"

// BoardRenderer paints grid tiles onto a surface. Only tiles whose redraw is
// due are painted, so the surface must keep its contents between frames.
type BoardRenderer struct {
	Palette    Palette
	CellW      int
	CellH      int
	MaxStage   int
	MaxReserve int
}

// NewBoardRenderer creates a renderer for tiles of the given surface size.
func NewBoardRenderer(cellW, cellH, maxStage, maxReserve int) *BoardRenderer {
	return &BoardRenderer{
		Palette:    DefaultPalette(),
		CellW:      cellW,
		CellH:      cellH,
		MaxStage:   maxStage,
		MaxReserve: maxReserve,
	}
}

// Draw paints due tiles, or every tile when full is set, and returns the
// number painted.
func (b *BoardRenderer) Draw(s Surface, g *systems.Grid, full bool) int {
	drawn := 0
	tiles := g.Tiles()
	for i := range tiles {
		t := &tiles[i]
		if !full && !t.RedrawDue {
			continue
		}
		b.drawTile(s, t)
		drawn++
	}
	return drawn
}

func (b *BoardRenderer) drawTile(s Surface, t *systems.Tile) {
	c := t.Coord()
	x, y := c.X*b.CellW, c.Y*b.CellH

	s.FillRect(x, y, b.CellW, b.CellH, b.Palette.TileColor(t, b.MaxStage, b.MaxReserve))
	if t.HasMachine() {
		s.DrawMachine(t.Machine.Kind, x, y, b.CellW, b.CellH, t.Machine.Phase)
	}
}
