// Package renderer draws the board onto a drawing surface.
// Surfaces exist for a raylib window and for a terminal.
package renderer

import (
	"image/color"

	"github.com/pthm-cable/tileclicker/systems"
)

// Surface is a drawing target. Units are surface-specific: pixels for a
// window, character cells for a terminal.
type Surface interface {
	FillRect(x, y, w, h int, c color.RGBA)
	DrawText(text string, x, y, size int, c color.RGBA)
	// DrawMachine draws a machine sprite centred in the given box, rotated
	// by phase degrees.
	DrawMachine(kind systems.MachineKind, x, y, w, h, phase int)
}

// Palette holds board colors.
type Palette struct {
	Dirt       color.RGBA
	GrassLight color.RGBA // stage 1
	GrassDark  color.RGBA // max stage
	WaterFull  color.RGBA
	WaterLow   color.RGBA
	Pavement   color.RGBA
	Quantum    color.RGBA
	Gain       color.RGBA
	Loss       color.RGBA
	Status     color.RGBA
}

// DefaultPalette returns the board palette.
func DefaultPalette() Palette {
	return Palette{
		Dirt:       color.RGBA{R: 92, G: 46, B: 22, A: 255},
		GrassLight: color.RGBA{R: 72, G: 120, B: 20, A: 255},
		GrassDark:  color.RGBA{R: 24, G: 84, B: 10, A: 255},
		WaterFull:  color.RGBA{R: 16, G: 40, B: 150, A: 255},
		WaterLow:   color.RGBA{R: 70, G: 90, B: 120, A: 255},
		Pavement:   color.RGBA{R: 112, G: 116, B: 120, A: 255},
		Quantum:    color.RGBA{R: 110, G: 0, B: 170, A: 255},
		Gain:       color.RGBA{R: 250, G: 220, B: 60, A: 255},
		Loss:       color.RGBA{R: 230, G: 70, B: 60, A: 255},
		Status:     color.RGBA{R: 240, G: 240, B: 240, A: 255},
	}
}

// lerp blends a toward b by t in [0, 1].
func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// TileColor returns the fill color for a tile.
func (p Palette) TileColor(t *systems.Tile, maxStage, maxReserve int) color.RGBA {
	switch t.Terrain {
	case systems.Grass:
		if maxStage <= 1 {
			return p.GrassLight
		}
		return lerp(p.GrassLight, p.GrassDark, float64(t.GrassStage-1)/float64(maxStage-1))
	case systems.Water:
		if maxReserve <= 0 {
			return p.WaterFull
		}
		return lerp(p.WaterLow, p.WaterFull, float64(t.WaterReserve)/float64(maxReserve))
	case systems.Pavement:
		return p.Pavement
	case systems.Quantum:
		return p.Quantum
	case systems.Dirt:
	}
	return p.Dirt
}
