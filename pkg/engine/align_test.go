package engine

import (
	"testing"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/geometry"
	"github.com/slidekit/slidekit/pkg/slide"
)

func TestAlignEdges(t *testing.T) {
	// Anchor at (100,100) 50x20; object at (10,10) 30x40.
	tests := []struct {
		name     string
		edge     Edge
		wantLeft float64
		wantTop  float64
	}{
		{"left", EdgeLeft, 100, 10},
		{"right", EdgeRight, 120, 10},    // 100+50-30
		{"top", EdgeTop, 10, 100},
		{"bottom", EdgeBottom, 10, 80},   // 100+20-40
		{"center-x", EdgeCenterX, 110, 10}, // 100+25-15
		{"center-y", EdgeCenterY, 10, 90},  // 100+10-20
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := slide.NewBox("obj", 10, 10, 30, 40)
			anchorObj := slide.NewBox("anchor", 100, 100, 50, 20)
			sel := slide.Selection{obj, anchorObj}

			report, err := New(nil).Align(sel, "anchor", tt.edge)
			if err != nil {
				t.Fatalf("Align: %v", err)
			}
			if report.Done != 1 || report.Failed != 0 {
				t.Errorf("report = %d done, %d failed; want 1, 0", report.Done, report.Failed)
			}

			if got := obj.Left(); got != tt.wantLeft {
				t.Errorf("obj left = %v, want %v", got, tt.wantLeft)
			}
			if got := obj.Top(); got != tt.wantTop {
				t.Errorf("obj top = %v, want %v", got, tt.wantTop)
			}
			// Size never changes during alignment.
			if obj.Width() != 30 || obj.Height() != 40 {
				t.Errorf("obj size = %vx%v, want 30x40", obj.Width(), obj.Height())
			}
			// The anchor itself is never mutated.
			if got := slide.BoundsOf(anchorObj); got != (geometry.Rect{Left: 100, Top: 100, Width: 50, Height: 20}) {
				t.Errorf("anchor geometry changed: %+v", got)
			}
		})
	}
}

func TestAlignFallbackAnchor(t *testing.T) {
	// No pinned anchor: the last selected object is the reference.
	a := slide.NewBox("a", 0, 0, 10, 10)
	b := slide.NewBox("b", 50, 50, 10, 10)
	sel := slide.Selection{a, b}

	if _, err := New(nil).Align(sel, "", EdgeLeft); err != nil {
		t.Fatalf("Align: %v", err)
	}

	if a.Left() != 50 {
		t.Errorf("a left = %v, want 50 (aligned to last-selected b)", a.Left())
	}
	if b.Left() != 50 {
		t.Errorf("b left = %v, anchor should not move", b.Left())
	}
}

func TestAlignInsufficientSelection(t *testing.T) {
	obj := slide.NewBox("only", 0, 0, 10, 10)

	_, err := New(nil).Align(slide.Selection{obj}, "", EdgeLeft)
	if !errors.Is(err, errors.ErrCodeInvalidSelection) {
		t.Fatalf("error = %v, want INVALID_SELECTION", err)
	}
	// Precondition failures have zero side effects.
	if obj.Left() != 0 {
		t.Errorf("obj left = %v, should be untouched", obj.Left())
	}
}

func TestAlignCountsMutationFailures(t *testing.T) {
	movable := slide.NewBox("movable", 0, 0, 10, 10)
	frozen := slide.Lock(slide.NewBox("frozen", 20, 0, 10, 10))
	anchorObj := slide.NewBox("anchor", 100, 0, 10, 10)
	sel := slide.Selection{movable, frozen, anchorObj}

	report, err := New(nil).Align(sel, "anchor", EdgeLeft)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	if report.Done != 1 || report.Failed != 1 {
		t.Errorf("report = %d done, %d failed; want 1, 1", report.Done, report.Failed)
	}
	if report.Message != "aligned 1 object (1 failed)" {
		t.Errorf("message = %q", report.Message)
	}
	// The failure must not abort the batch.
	if movable.Left() != 100 {
		t.Errorf("movable left = %v, want 100", movable.Left())
	}
	if frozen.Left() != 20 {
		t.Errorf("frozen left = %v, should be untouched", frozen.Left())
	}
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in      string
		want    Edge
		wantErr bool
	}{
		{"left", EdgeLeft, false},
		{"right", EdgeRight, false},
		{"top", EdgeTop, false},
		{"bottom", EdgeBottom, false},
		{"center-x", EdgeCenterX, false},
		{"center-y", EdgeCenterY, false},
		{"diagonal", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEdge(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdge(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseEdge(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
