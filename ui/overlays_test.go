package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOverlaysKeyToggles(t *testing.T) {
	o := NewOverlays(OverlayFloaters)

	if !o.HandleKey(rl.KeyF) || o.Enabled(OverlayFloaters) {
		t.Error("F should switch payouts off")
	}
	if !o.HandleKey(rl.KeyG) || !o.Enabled(OverlayGridLines) {
		t.Error("G should switch grid lines on")
	}
	if o.HandleKey(rl.KeyZ) {
		t.Error("Z is not bound")
	}
}

func TestOverlaysBottomPanelsExclude(t *testing.T) {
	o := NewOverlays(OverlayInspector)

	o.Toggle(OverlayPerf)
	if o.Enabled(OverlayInspector) || !o.Enabled(OverlayPerf) {
		t.Errorf("after perf on: inspector=%v perf=%v", o.Enabled(OverlayInspector), o.Enabled(OverlayPerf))
	}

	o.Set(OverlayInspector, true)
	if o.Enabled(OverlayPerf) {
		t.Error("inspector should switch perf off")
	}

	o.Set(OverlayPerf, false)
	if !o.Enabled(OverlayInspector) {
		t.Error("switching perf off must leave inspector alone")
	}
}

func TestOverlaysIgnoreUnknownID(t *testing.T) {
	o := NewOverlays()
	o.Set(numOverlays, true)
	if o.Enabled(numOverlays) {
		t.Error("unknown overlay reported enabled")
	}
}
