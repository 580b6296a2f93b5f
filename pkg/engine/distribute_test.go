package engine

import (
	"testing"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

func TestDistributeHorizontal(t *testing.T) {
	// Three objects: lefts 0/50/200, widths 50/30/50.
	// Total space = 200+50-0 = 250, used = 130, gap = (250-130)/2 = 60.
	// Middle object lands at 0+50+60 = 110.
	a := slide.NewBox("a", 0, 0, 50, 10)
	b := slide.NewBox("b", 50, 20, 30, 10)
	c := slide.NewBox("c", 200, 40, 50, 10)
	sel := slide.Selection{a, b, c}

	report, err := New(nil).Distribute(sel, AxisHorizontal)
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if report.Done != 3 || report.Failed != 0 {
		t.Errorf("report = %d done, %d failed; want 3, 0", report.Done, report.Failed)
	}

	if a.Left() != 0 {
		t.Errorf("first left = %v, want 0 (outermost objects stay fixed)", a.Left())
	}
	if b.Left() != 110 {
		t.Errorf("middle left = %v, want 110", b.Left())
	}
	if c.Left() != 200 {
		t.Errorf("last left = %v, want 200", c.Left())
	}
	// Vertical coordinates are untouched by horizontal distribution.
	if a.Top() != 0 || b.Top() != 20 || c.Top() != 40 {
		t.Errorf("tops = %v/%v/%v, want 0/20/40", a.Top(), b.Top(), c.Top())
	}
}

func TestDistributeVertical(t *testing.T) {
	a := slide.NewBox("a", 0, 0, 10, 50)
	b := slide.NewBox("b", 5, 50, 10, 30)
	c := slide.NewBox("c", 9, 200, 10, 50)
	sel := slide.Selection{a, b, c}

	if _, err := New(nil).Distribute(sel, AxisVertical); err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	if a.Top() != 0 || b.Top() != 110 || c.Top() != 200 {
		t.Errorf("tops = %v/%v/%v, want 0/110/200", a.Top(), b.Top(), c.Top())
	}
	if a.Left() != 0 || b.Left() != 5 || c.Left() != 9 {
		t.Error("horizontal coordinates should be untouched")
	}
}

func TestDistributeIgnoresSelectionOrder(t *testing.T) {
	// Same objects as the horizontal case, selected in scrambled order.
	// Spatial order comes from an explicit sort, never from selection order.
	a := slide.NewBox("a", 0, 0, 50, 10)
	b := slide.NewBox("b", 50, 0, 30, 10)
	c := slide.NewBox("c", 200, 0, 50, 10)
	sel := slide.Selection{c, a, b}

	if _, err := New(nil).Distribute(sel, AxisHorizontal); err != nil {
		t.Fatalf("Distribute: %v", err)
	}

	if a.Left() != 0 || b.Left() != 110 || c.Left() != 200 {
		t.Errorf("lefts = %v/%v/%v, want 0/110/200", a.Left(), b.Left(), c.Left())
	}
	// The caller's selection slice keeps its original order.
	if sel[0] != slide.Object(c) || sel[1] != slide.Object(a) || sel[2] != slide.Object(b) {
		t.Error("selection order was mutated")
	}
}

func TestDistributeNegativeGapOverlaps(t *testing.T) {
	// Objects wider than the span they occupy: gap goes negative and the
	// middle object overlaps its neighbors. Accepted, not an error.
	a := slide.NewBox("a", 0, 0, 80, 10)
	b := slide.NewBox("b", 10, 0, 80, 10)
	c := slide.NewBox("c", 100, 0, 80, 10)
	sel := slide.Selection{a, b, c}

	// total = 100+80-0 = 180, used = 240, gap = -30.
	if _, err := New(nil).Distribute(sel, AxisHorizontal); err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if b.Left() != 50 { // 0+80-30
		t.Errorf("middle left = %v, want 50", b.Left())
	}
}

func TestDistributeInsufficientSelection(t *testing.T) {
	sel := slide.Selection{
		slide.NewBox("a", 0, 0, 10, 10),
		slide.NewBox("b", 30, 0, 10, 10),
	}

	_, err := New(nil).Distribute(sel, AxisHorizontal)
	if !errors.Is(err, errors.ErrCodeInvalidSelection) {
		t.Fatalf("error = %v, want INVALID_SELECTION", err)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"horizontal", AxisHorizontal, false},
		{"h", AxisHorizontal, false},
		{"vertical", AxisVertical, false},
		{"v", AxisVertical, false},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxis(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
