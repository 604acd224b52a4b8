package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a board layer or side panel the player can toggle.
type OverlayID uint8

const (
	OverlayFloaters OverlayID = iota
	OverlayGridLines
	OverlayPending
	OverlayInspector
	OverlayMultipliers
	OverlayPerf
	numOverlays
)

type overlayDef struct {
	key   int32
	label string
}

var overlayDefs = [numOverlays]overlayDef{
	OverlayFloaters:    {key: rl.KeyF, label: "F Payouts"},
	OverlayGridLines:   {key: rl.KeyG, label: "G Grid"},
	OverlayPending:     {key: rl.KeyO, label: "O Pending"},
	OverlayInspector:   {key: rl.KeyI, label: "I Inspect"},
	OverlayMultipliers: {key: rl.KeyM, label: "M Mults"},
	OverlayPerf:        {key: rl.KeyP, label: "P Phases"},
}

// Inspector and perf panels share the bottom of the board.
var overlayExcludes = map[OverlayID]OverlayID{
	OverlayInspector: OverlayPerf,
	OverlayPerf:      OverlayInspector,
}

// Overlays tracks which layers are shown and draws the toggle strip.
type Overlays struct {
	on         [numOverlays]bool
	stripShown bool
	theme      Theme
}

// NewOverlays creates an overlay set with the given layers switched on.
func NewOverlays(enabled ...OverlayID) *Overlays {
	o := &Overlays{theme: DefaultTheme()}
	for _, id := range enabled {
		o.Set(id, true)
	}
	return o
}

// Enabled reports whether a layer is shown.
func (o *Overlays) Enabled(id OverlayID) bool {
	return id < numOverlays && o.on[id]
}

// Set shows or hides a layer. Showing one hides the layer it excludes.
func (o *Overlays) Set(id OverlayID, on bool) {
	if id >= numOverlays {
		return
	}
	o.on[id] = on
	if other, ok := overlayExcludes[id]; ok && on {
		o.on[other] = false
	}
}

// Toggle flips a layer and returns its new state.
func (o *Overlays) Toggle(id OverlayID) bool {
	o.Set(id, !o.Enabled(id))
	return o.Enabled(id)
}

// HandleKey toggles the layer bound to key. It reports whether a binding matched.
func (o *Overlays) HandleKey(key int32) bool {
	for id, def := range overlayDefs {
		if def.key == key {
			o.Toggle(OverlayID(id))
			return true
		}
	}
	return false
}

// ToggleStrip shows or hides the toggle strip.
func (o *Overlays) ToggleStrip() { o.stripShown = !o.stripShown }

// DrawStrip draws one chip per layer in a row starting at (x, y), lit when
// the layer is on.
func (o *Overlays) DrawStrip(x, y int32) {
	if !o.stripShown {
		return
	}
	t := o.theme
	h := t.LineHeight + 4
	for id, def := range overlayDefs {
		w := rl.MeasureText(def.label, t.FontSize) + 12
		bg, fg := t.PanelBg, t.LabelColor
		if o.on[id] {
			bg, fg = t.Selected, rl.Black
		}
		rl.DrawRectangle(x, y, w, h, bg)
		rl.DrawRectangleLines(x, y, w, h, t.PanelBorder)
		rl.DrawText(def.label, x+6, y+4, t.FontSize, fg)
		x += w + 4
	}
}
