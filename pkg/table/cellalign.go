package table

// CellAlignment is the horizontal placement of objects inside a cell.
type CellAlignment int

// Intra-cell alignments.
const (
	CellAlignLeft CellAlignment = iota
	CellAlignCenter
	CellAlignRight
)

// stackGap is the fixed vertical gap between objects stacked in one cell.
const stackGap = 6.0

// AlignWithinCell stacks a cell group's objects vertically, centers the
// whole stack in the cell, and places each object horizontally per the
// requested alignment with the given padding from the cell edge. Negative
// padding is clamped to zero. Per-object mutation failures are counted and
// never abort the stack.
func AlignWithinCell(group CellGroup, align CellAlignment, padding float64) (moved, failed int) {
	if padding < 0 {
		padding = 0
	}

	var stackHeight float64
	for _, o := range group.Objects {
		stackHeight += o.Height()
	}
	if n := len(group.Objects); n > 1 {
		stackHeight += float64(n-1) * stackGap
	}

	cell := group.Bounds
	y := cell.Top + cell.Height/2 - stackHeight/2

	for _, o := range group.Objects {
		var x float64
		switch align {
		case CellAlignLeft:
			x = cell.Left + padding
		case CellAlignRight:
			x = cell.Left + cell.Width - o.Width() - padding
		case CellAlignCenter:
			x = cell.Left + cell.Width/2 - o.Width()/2
		}

		if err := o.SetLeft(x); err != nil {
			failed++
		} else if err := o.SetTop(y); err != nil {
			failed++
		} else {
			moved++
		}
		y += o.Height() + stackGap
	}
	return moved, failed
}
