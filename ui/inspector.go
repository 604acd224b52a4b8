package ui

import (
	"fmt"

	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
)

// Inspector renders the hovered tile's state from section descriptors.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
	sections []SectionDescriptor
}

// NewInspector creates a tile inspector for the given stage and reserve maxima.
func NewInspector(x, y, width int32, maxStage, maxReserve int) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		sections: tileSections(maxStage, maxReserve),
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector for t.
func (ins *Inspector) Draw(t *systems.Tile) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	r.DrawPanel(ins.x, ins.y, ins.width, 150)

	y := ins.y + padding
	for _, sd := range ins.sections {
		y = r.DrawSection(ins.x+padding, y, sd, t, ins.width-padding*2)
	}
	return y
}

func tile(data any) *systems.Tile { return data.(*systems.Tile) }

func tileSections(maxStage, maxReserve int) []SectionDescriptor {
	return []SectionDescriptor{
		{
			ID:    "terrain",
			Title: "Tile",
			Fields: []FieldDescriptor{
				{
					ID: "coord", Label: "Coord", Widget: WidgetText,
					TextGetter: func(d any) string {
						c := tile(d).Coord()
						return fmt.Sprintf("%d, %d", c.X, c.Y)
					},
				},
				{
					ID: "terrain", Label: "Terrain", Widget: WidgetText,
					TextGetter: func(d any) string { return tile(d).Terrain.String() },
				},
				{
					ID: "grass_stage", Label: "Stage", Widget: WidgetBar,
					Range:   FieldRange{Min: 0, Max: float32(maxStage)},
					Visible: func(d any) bool { return tile(d).Terrain == systems.Grass },
					Getter:  func(d any) float32 { return float32(tile(d).GrassStage) },
				},
				{
					ID: "water_reserve", Label: "Reserve", Widget: WidgetBar,
					Range:   FieldRange{Min: 0, Max: float32(maxReserve)},
					Visible: func(d any) bool { return tile(d).Terrain == systems.Water },
					Getter:  func(d any) float32 { return float32(tile(d).WaterReserve) },
				},
				{
					ID: "evaporating", Label: "Evaporates", Widget: WidgetText,
					Visible: func(d any) bool { return tile(d).Terrain == systems.Water },
					TextGetter: func(d any) string {
						if tile(d).EvaporationEnabled {
							return "yes"
						}
						return "no"
					},
				},
			},
		},
		{
			ID:      "machine",
			Title:   "Machine",
			Visible: func(d any) bool { return tile(d).HasMachine() },
			Fields: []FieldDescriptor{
				{
					ID: "kind", Label: "Kind", Widget: WidgetText,
					TextGetter: func(d any) string { return tile(d).Machine.Kind.String() },
				},
				{
					ID: "phase", Label: "Phase", Widget: WidgetBar,
					Range:  FieldRange{Min: 0, Max: 360},
					Getter: func(d any) float32 { return float32(tile(d).Machine.Phase % 360) },
				},
				{
					ID: "rate", Label: "Rate", Widget: WidgetText, Format: "%.0f deg/f",
					Getter: func(d any) float32 { return float32(tile(d).Machine.Rate) },
				},
				{
					ID: "payout", Label: "Payout", Widget: WidgetText,
					TextGetter: func(d any) string { return economy.FormatAmount(tile(d).Machine.Payout) },
				},
			},
		},
		{
			ID: "pending",
			Fields: []FieldDescriptor{
				{ID: "spacer", Widget: WidgetSpacer},
				{
					ID: "pending", Label: "Pending", Widget: WidgetText,
					TextGetter: func(d any) string { return economy.FormatAmount(tile(d).PendingPayout) },
				},
			},
		},
	}
}
