package table

import (
	"github.com/slidekit/slidekit/pkg/geometry"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Grid is the geometric view of a table: an origin plus per-column widths
// and per-row heights. Cell bounds are derived by prefix-summing the sizes
// from the origin, so non-uniform grids are handled naturally.
type Grid struct {
	Left       float64
	Top        float64
	ColWidths  []float64
	RowHeights []float64
}

// GridOf builds the geometric view of a host table.
func GridOf(t Table) Grid {
	left, top := t.Origin()
	g := Grid{
		Left:       left,
		Top:        top,
		ColWidths:  make([]float64, t.ColCount()),
		RowHeights: make([]float64, t.RowCount()),
	}
	for c := range g.ColWidths {
		g.ColWidths[c] = t.ColWidth(c)
	}
	for r := range g.RowHeights {
		g.RowHeights[r] = t.RowHeight(r)
	}
	return g
}

// NumRows returns the number of rows.
func (g Grid) NumRows() int { return len(g.RowHeights) }

// NumCols returns the number of columns.
func (g Grid) NumCols() int { return len(g.ColWidths) }

// CellBounds returns the bounds of the cell at (row, col).
func (g Grid) CellBounds(row, col int) geometry.Rect {
	left := g.Left
	for c := 0; c < col; c++ {
		left += g.ColWidths[c]
	}
	top := g.Top
	for r := 0; r < row; r++ {
		top += g.RowHeights[r]
	}
	return geometry.Rect{Left: left, Top: top, Width: g.ColWidths[col], Height: g.RowHeights[row]}
}

// Locate returns the bounds of the cell containing the object's center
// point, or false when the center lies outside the grid. Containment uses
// half-open bounds, so a center exactly on a shared cell boundary belongs
// to the cell on the right/below, never to both.
func (g Grid) Locate(o slide.Object) (geometry.Rect, bool) {
	cx := o.Left() + o.Width()/2
	cy := o.Top() + o.Height()/2

	top := g.Top
	for row := 0; row < g.NumRows(); row++ {
		left := g.Left
		for col := 0; col < g.NumCols(); col++ {
			bounds := geometry.Rect{Left: left, Top: top, Width: g.ColWidths[col], Height: g.RowHeights[row]}
			if bounds.Contains(cx, cy) {
				return bounds, true
			}
			left += g.ColWidths[col]
		}
		top += g.RowHeights[row]
	}
	return geometry.Rect{}, false
}

// CellGroup is one grid cell's bounds plus the objects whose center falls
// inside it, in input order.
type CellGroup struct {
	Bounds  geometry.Rect
	Objects []slide.Object
}

// GroupByCell buckets objects by the cell containing their center point.
// Groups are keyed by bounds identity rather than by cell index, which
// tolerates duplicate or ambiguous table lookups: two lookups that resolve
// to the same rectangle land in the same group no matter how they were
// derived. Objects whose center lies outside every cell are returned
// separately and take no part in grouping.
func (g Grid) GroupByCell(objects []slide.Object) (groups []CellGroup, unplaced []slide.Object) {
	for _, o := range objects {
		bounds, ok := g.Locate(o)
		if !ok {
			unplaced = append(unplaced, o)
			continue
		}
		placed := false
		for i := range groups {
			if groups[i].Bounds == bounds {
				groups[i].Objects = append(groups[i].Objects, o)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, CellGroup{Bounds: bounds, Objects: []slide.Object{o}})
		}
	}
	return groups, unplaced
}
