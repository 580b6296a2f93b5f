package table

import (
	"testing"

	"github.com/slidekit/slidekit/pkg/geometry"
	"github.com/slidekit/slidekit/pkg/slide"
)

func TestAlignWithinCellStacksAndCenters(t *testing.T) {
	// Cell (100,100) 80x60; two objects 10 and 20 tall.
	// Stack height = 10 + 6 + 20 = 36, so the stack starts at
	// 100 + 30 - 18 = 112.
	cell := geometry.Rect{Left: 100, Top: 100, Width: 80, Height: 60}
	a := slide.NewBox("a", 0, 0, 30, 10)
	b := slide.NewBox("b", 0, 0, 40, 20)
	group := CellGroup{Bounds: cell, Objects: []slide.Object{a, b}}

	moved, failed := AlignWithinCell(group, CellAlignLeft, 4)
	if moved != 2 || failed != 0 {
		t.Fatalf("moved/failed = %d/%d, want 2/0", moved, failed)
	}

	if a.Top() != 112 {
		t.Errorf("a top = %v, want 112", a.Top())
	}
	if b.Top() != 128 { // 112 + 10 + stackGap
		t.Errorf("b top = %v, want 128", b.Top())
	}
	if a.Left() != 104 || b.Left() != 104 {
		t.Errorf("lefts = %v/%v, want both 104 (left edge + padding)", a.Left(), b.Left())
	}
}

func TestAlignWithinCellHorizontal(t *testing.T) {
	cell := geometry.Rect{Left: 100, Top: 100, Width: 80, Height: 60}

	tests := []struct {
		name     string
		align    CellAlignment
		padding  float64
		wantLeft float64
	}{
		{"left", CellAlignLeft, 5, 105},
		{"right", CellAlignRight, 5, 145},   // 100+80-30-5
		{"center", CellAlignCenter, 5, 125}, // padding ignored when centering
		{"negative padding clamps", CellAlignLeft, -10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := slide.NewBox("o", 0, 0, 30, 10)
			group := CellGroup{Bounds: cell, Objects: []slide.Object{o}}

			if moved, _ := AlignWithinCell(group, tt.align, tt.padding); moved != 1 {
				t.Fatalf("moved = %d, want 1", moved)
			}
			if o.Left() != tt.wantLeft {
				t.Errorf("left = %v, want %v", o.Left(), tt.wantLeft)
			}
			if o.Top() != 125 { // single object centered: 100+30-5
				t.Errorf("top = %v, want 125", o.Top())
			}
		})
	}
}

func TestAlignWithinCellCountsFailures(t *testing.T) {
	cell := geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	ok := slide.NewBox("ok", 0, 0, 10, 10)
	stuck := slide.Lock(slide.NewBox("stuck", 0, 0, 10, 10))
	group := CellGroup{Bounds: cell, Objects: []slide.Object{ok, stuck}}

	moved, failed := AlignWithinCell(group, CellAlignCenter, 0)
	if moved != 1 || failed != 1 {
		t.Errorf("moved/failed = %d/%d, want 1/1", moved, failed)
	}
}
