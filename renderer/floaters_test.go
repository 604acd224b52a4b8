package renderer

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/tileclicker/components"
	"github.com/pthm-cable/tileclicker/config"
	"github.com/pthm-cable/tileclicker/systems"
)

func TestFloaterColor(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name string
		fl   components.Floater
		want color.RGBA
	}{
		{"gain", components.Floater{Amount: 5}, p.Gain},
		{"loss", components.Floater{Amount: -17}, p.Loss},
		{"status", components.Floater{Text: "Occupied!"}, p.Status},
	}
	for _, tt := range tests {
		if got := p.FloaterColor(tt.fl); got != tt.want {
			t.Errorf("%s: got %v", tt.name, got)
		}
	}
}

func TestDrawFloatersScalesToSurface(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	fs := systems.NewFloaterSystem(cfg.Render, cfg.Derived.BoardWidth, cfg.Board.CellSize)
	fs.Spawn(100, 200, 3, "+3")

	br := NewBoardRenderer(2, 1, cfg.Ecology.MaxGrassStage, cfg.Ecology.MaxWaterReserve)
	s := &textSurface{}
	br.DrawFloaters(s, fs, cfg.Board.CellSize, 1)

	if len(s.calls) != 1 {
		t.Fatalf("calls = %d", len(s.calls))
	}
	got := s.calls[0]
	if got.text != "+3" || got.x != 4 || got.y != 4 {
		t.Errorf("drew %+v, want +3 at 4,4", got)
	}
}

type textCall struct {
	text string
	x, y int
}

type textSurface struct {
	recordingSurface
	calls []textCall
}

func (s *textSurface) DrawText(text string, x, y, size int, _ color.RGBA) {
	s.calls = append(s.calls, textCall{text, x, y})
}
