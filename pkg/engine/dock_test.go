package engine

import (
	"testing"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

func TestDockSides(t *testing.T) {
	// Anchor at (300,300) 100x60; object 40x20 starting at (10,10).
	tests := []struct {
		name     string
		side     Side
		wantLeft float64
		wantTop  float64
	}{
		{"left", SideLeft, 260, 10},   // 300-40, zero gap to anchor's left edge
		{"right", SideRight, 400, 10}, // 300+100
		{"top", SideTop, 10, 280},     // 300-20
		{"bottom", SideBottom, 10, 360}, // 300+60
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := slide.NewBox("obj", 10, 10, 40, 20)
			anchorObj := slide.NewBox("anchor", 300, 300, 100, 60)
			sel := slide.Selection{obj, anchorObj}

			report, err := New(nil).Dock(sel, "anchor", tt.side)
			if err != nil {
				t.Fatalf("Dock: %v", err)
			}
			if report.Done != 1 {
				t.Errorf("report done = %d, want 1", report.Done)
			}

			if obj.Left() != tt.wantLeft || obj.Top() != tt.wantTop {
				t.Errorf("obj at (%v,%v), want (%v,%v)", obj.Left(), obj.Top(), tt.wantLeft, tt.wantTop)
			}
			if obj.Width() != 40 || obj.Height() != 20 {
				t.Error("docking must not resize")
			}
			if anchorObj.Left() != 300 || anchorObj.Top() != 300 {
				t.Error("anchor must not move")
			}
		})
	}
}

func TestDockStacksMultipleObjects(t *testing.T) {
	// Two same-width objects docked left both land at the same coordinate.
	a := slide.NewBox("a", 0, 0, 40, 10)
	b := slide.NewBox("b", 50, 50, 40, 10)
	anchorObj := slide.NewBox("anchor", 300, 0, 100, 10)
	sel := slide.Selection{a, b, anchorObj}

	if _, err := New(nil).Dock(sel, "anchor", SideLeft); err != nil {
		t.Fatalf("Dock: %v", err)
	}

	if a.Left() != 260 || b.Left() != 260 {
		t.Errorf("lefts = %v/%v, want both 260 (stacking is intentional)", a.Left(), b.Left())
	}
}

func TestDockInsufficientSelection(t *testing.T) {
	sel := slide.Selection{slide.NewBox("a", 0, 0, 10, 10)}

	_, err := New(nil).Dock(sel, "", SideLeft)
	if !errors.Is(err, errors.ErrCodeInvalidSelection) {
		t.Fatalf("error = %v, want INVALID_SELECTION", err)
	}
}
