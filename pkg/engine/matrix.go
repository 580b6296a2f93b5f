package engine

import (
	"github.com/slidekit/slidekit/pkg/slide"
)

// Arrange lays the selection out in a grid inside its own bounding box.
//
// The column count is taken from the request; the row count is always
// derived as ceil(n/cols), which both shrinks a grid requested too tall and
// expands one requested too small. requestedRows is accepted for host API
// parity but never constrains the result. A non-positive column request
// degenerates to a single row.
//
// Cell size divides the selection's bounding box minus the inter-cell
// spacing. Objects are placed strictly in selection order - index i goes to
// row i/cols, column i%cols - anchored at each cell's top-left corner with
// no intra-cell centering. Per-object placement failures are counted.
func (e *Engine) Arrange(sel slide.Selection, requestedRows, requestedCols int, spacing float64) (*Report, error) {
	n := len(sel)
	if n == 0 {
		return &Report{Message: "arranged 0 objects"}, nil
	}

	cols := requestedCols
	if cols <= 0 {
		cols = n
	}
	rows := (n + cols - 1) / cols

	bounds := sel.Bounds()
	cellWidth := (bounds.Width - float64(cols-1)*spacing) / float64(cols)
	cellHeight := (bounds.Height - float64(rows-1)*spacing) / float64(rows)

	var t tally
	for i, o := range sel {
		row, col := i/cols, i%cols
		left := bounds.Left + float64(col)*(cellWidth+spacing)
		top := bounds.Top + float64(row)*(cellHeight+spacing)
		t.add(firstErr(o.SetLeft(left), o.SetTop(top)))
	}

	e.logger.Debug("arranged selection",
		"rows", rows, "cols", cols, "requested_rows", requestedRows,
		"placed", t.done, "failed", t.failed)
	return t.report("arranged"), nil
}
