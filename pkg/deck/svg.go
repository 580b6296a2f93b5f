package deck

import (
	"bytes"
	"fmt"

	"github.com/slidekit/slidekit/pkg/geometry"
	"github.com/slidekit/slidekit/pkg/slide"
	"github.com/slidekit/slidekit/pkg/table"
)

const svgMargin = 20.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels bool
	grid   bool
}

// WithLabels draws each object's id at its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithGrid draws the interior cell lines of tables.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// RenderSVG renders a deck preview: objects as rectangles, tables as
// outlined grids. The canvas is the union of all object bounds plus a
// fixed margin, so previews before and after an operation stay comparable
// when nothing moved off the original bounds.
func RenderSVG(d *Deck, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	objects := d.Objects()
	canvas := canvasBounds(objects)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		canvas.Left, canvas.Top, canvas.Width, canvas.Height, canvas.Width, canvas.Height)
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		canvas.Left, canvas.Top, canvas.Width, canvas.Height)

	for _, o := range objects {
		if to, ok := o.(*table.TableBox); ok {
			r.renderTable(&buf, to)
		} else {
			r.renderObject(&buf, o, d.locked[o.ID()])
		}
		if r.labels {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-size="10" text-anchor="middle" fill="#333333">%s</text>`+"\n",
				o.Left()+o.Width()/2, o.Top()+o.Height()/2, o.ID())
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func canvasBounds(objects slide.Selection) geometry.Rect {
	if len(objects) == 0 {
		return geometry.Rect{Width: 2 * svgMargin, Height: 2 * svgMargin}
	}
	b := objects.Bounds()
	return geometry.Rect{
		Left:   b.Left - svgMargin,
		Top:    b.Top - svgMargin,
		Width:  b.Width + 2*svgMargin,
		Height: b.Height + 2*svgMargin,
	}
}

func (r *svgRenderer) renderObject(buf *bytes.Buffer, o slide.Object, isLocked bool) {
	fill := "#9ecae1"
	if isLocked {
		fill = "#cccccc"
	}
	fmt.Fprintf(buf, `  <rect id="obj-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#31708f" stroke-width="1"/>`+"\n",
		o.ID(), o.Left(), o.Top(), o.Width(), o.Height(), fill)
}

func (r *svgRenderer) renderTable(buf *bytes.Buffer, to *table.TableBox) {
	fmt.Fprintf(buf, `  <rect id="tbl-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#555555" stroke-width="1.5"/>`+"\n",
		to.ID(), to.Left(), to.Top(), to.Width(), to.Height())
	if !r.grid {
		return
	}

	g := table.GridOf(to.Table())
	x := to.Left()
	for col := 0; col < g.NumCols()-1; col++ {
		x += g.ColWidths[col]
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="0.5"/>`+"\n",
			x, to.Top(), x, to.Top()+to.Height())
	}
	y := to.Top()
	for row := 0; row < g.NumRows()-1; row++ {
		y += g.RowHeights[row]
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="0.5"/>`+"\n",
			to.Left(), y, to.Left()+to.Width(), y)
	}
}
