package engine

import (
	"fmt"
	"testing"

	"github.com/slidekit/slidekit/pkg/slide"
)

// tenBoxes builds ten 10x10 boxes spanning a 310x310 bounding box:
// first at (0,0), last at (300,300).
func tenBoxes() slide.Selection {
	sel := make(slide.Selection, 10)
	for i := range sel {
		offset := float64(i) * (300.0 / 9.0)
		sel[i] = slide.NewBox(fmt.Sprintf("s%d", i), offset, offset, 10, 10)
	}
	return sel
}

func TestArrangeExpandsOverflowingRows(t *testing.T) {
	// 10 objects into a requested 3x3 grid: the column count is honored and
	// the row count derived, yielding 4 rows.
	sel := tenBoxes()

	report, err := New(nil).Arrange(sel, 3, 3, 0)
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if report.Done != 10 {
		t.Errorf("report done = %d, want 10", report.Done)
	}

	// Bounds: (0,0)-(310,310). cellWidth = 310/3, cellHeight = 310/4.
	cellWidth := 310.0 / 3.0
	cellHeight := 310.0 / 4.0

	// Element at index 9 goes to row 3, col 0.
	if got := sel[9].Left(); got != 0 {
		t.Errorf("element 9 left = %v, want 0", got)
	}
	if got := sel[9].Top(); got != 3*cellHeight {
		t.Errorf("element 9 top = %v, want %v", got, 3*cellHeight)
	}

	// Element at index 4 goes to row 1, col 1.
	if got := sel[4].Left(); got != cellWidth {
		t.Errorf("element 4 left = %v, want %v", got, cellWidth)
	}
	if got := sel[4].Top(); got != cellHeight {
		t.Errorf("element 4 top = %v, want %v", got, cellHeight)
	}
}

func TestArrangeShrinksUnusedRows(t *testing.T) {
	// 4 objects into a requested 5x2 grid: only 2 rows are needed.
	sel := slide.Selection{
		slide.NewBox("a", 0, 0, 10, 10),
		slide.NewBox("b", 30, 0, 10, 10),
		slide.NewBox("c", 0, 90, 10, 10),
		slide.NewBox("d", 90, 90, 10, 10),
	}
	// Bounds: (0,0)-(100,100).

	if _, err := New(nil).Arrange(sel, 5, 2, 0); err != nil {
		t.Fatalf("Arrange: %v", err)
	}

	// 2 cols x 2 rows over a 100x100 box: cells are 50x50.
	wantPositions := [][2]float64{{0, 0}, {50, 0}, {0, 50}, {50, 50}}
	for i, want := range wantPositions {
		if sel[i].Left() != want[0] || sel[i].Top() != want[1] {
			t.Errorf("element %d at (%v,%v), want (%v,%v)",
				i, sel[i].Left(), sel[i].Top(), want[0], want[1])
		}
	}
}

func TestArrangeSpacing(t *testing.T) {
	sel := slide.Selection{
		slide.NewBox("a", 0, 0, 10, 10),
		slide.NewBox("b", 100, 0, 10, 10),
	}
	// Bounds: (0,0)-(110,10). 2 cols, 1 row, spacing 10:
	// cellWidth = (110-10)/2 = 50, second column at 0+1*(50+10) = 60.

	if _, err := New(nil).Arrange(sel, 1, 2, 10); err != nil {
		t.Fatalf("Arrange: %v", err)
	}

	if sel[0].Left() != 0 || sel[1].Left() != 60 {
		t.Errorf("lefts = %v/%v, want 0/60", sel[0].Left(), sel[1].Left())
	}
}

func TestArrangeFollowsInputOrder(t *testing.T) {
	// Objects are placed by selection order, never re-sorted by position:
	// the spatially-last object selected first lands in the first cell.
	a := slide.NewBox("a", 100, 100, 10, 10)
	b := slide.NewBox("b", 0, 0, 10, 10)
	sel := slide.Selection{a, b}
	// Bounds: (0,0)-(110,110). 2 cols, 1 row: cells 55x110.

	if _, err := New(nil).Arrange(sel, 1, 2, 0); err != nil {
		t.Fatalf("Arrange: %v", err)
	}

	if a.Left() != 0 || a.Top() != 0 {
		t.Errorf("first-selected at (%v,%v), want cell (0,0)", a.Left(), a.Top())
	}
	if b.Left() != 55 || b.Top() != 0 {
		t.Errorf("second-selected at (%v,%v), want cell (55,0)", b.Left(), b.Top())
	}
}

func TestArrangeDegenerateInputs(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		report, err := New(nil).Arrange(nil, 3, 3, 0)
		if err != nil {
			t.Fatalf("Arrange: %v", err)
		}
		if report.Done != 0 {
			t.Errorf("report done = %d, want 0", report.Done)
		}
	})

	t.Run("non-positive columns fall back to a single row", func(t *testing.T) {
		sel := slide.Selection{
			slide.NewBox("a", 0, 0, 10, 10),
			slide.NewBox("b", 50, 0, 10, 10),
			slide.NewBox("c", 110, 0, 10, 10),
		}
		// Bounds: (0,0)-(120,10). 3 cols of width 40.

		if _, err := New(nil).Arrange(sel, 0, 0, 0); err != nil {
			t.Fatalf("Arrange: %v", err)
		}
		if sel[0].Left() != 0 || sel[1].Left() != 40 || sel[2].Left() != 80 {
			t.Errorf("lefts = %v/%v/%v, want 0/40/80",
				sel[0].Left(), sel[1].Left(), sel[2].Left())
		}
		if sel[0].Top() != 0 || sel[1].Top() != 0 || sel[2].Top() != 0 {
			t.Error("single-row fallback must keep everything in row 0")
		}
	})
}

func TestArrangeCountsPlacementFailures(t *testing.T) {
	sel := slide.Selection{
		slide.NewBox("a", 0, 0, 10, 10),
		slide.Lock(slide.NewBox("b", 50, 50, 10, 10)),
	}

	report, err := New(nil).Arrange(sel, 1, 2, 0)
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	if report.Done != 1 || report.Failed != 1 {
		t.Errorf("report = %d done, %d failed; want 1, 1", report.Done, report.Failed)
	}
}
