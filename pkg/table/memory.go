package table

import (
	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// MemoryCell is an in-memory Cell implementation. It backs deck fixture
// files and serves as the standard test double for the swap pipeline.
type MemoryCell struct {
	text       string
	merge      MergeState
	fill       Fill
	alignment  ContentAlignment
	runs       []RunSpan
	paragraphs []ParagraphSpan
}

// NewMemoryCell creates an unmerged cell with the given plain text.
func NewMemoryCell(text string) *MemoryCell {
	return &MemoryCell{text: text}
}

// Text returns the cell's plain text content.
func (c *MemoryCell) Text() string { return c.text }

// SetText replaces the plain text and drops all styled spans, the way host
// editors reset formatting when content is rewritten wholesale.
func (c *MemoryCell) SetText(s string) error {
	c.text = s
	c.runs = nil
	c.paragraphs = nil
	return nil
}

// Merge reports the cell's merge state.
func (c *MemoryCell) Merge() MergeState { return c.merge }

// SetMerge sets the merge state. Fixtures use this to build merged regions.
func (c *MemoryCell) SetMerge(m MergeState) { c.merge = m }

// Fill returns the cell's background fill.
func (c *MemoryCell) Fill() Fill { return c.fill }

// SetFill replaces the cell's background fill.
func (c *MemoryCell) SetFill(f Fill) error { c.fill = f; return nil }

// ContentAlignment returns the cell's content anchoring.
func (c *MemoryCell) ContentAlignment() ContentAlignment { return c.alignment }

// SetContentAlignment replaces the cell's content anchoring.
func (c *MemoryCell) SetContentAlignment(a ContentAlignment) error {
	c.alignment = a
	return nil
}

// Runs returns the styled run spans in application order.
func (c *MemoryCell) Runs() []RunSpan { return c.runs }

// ApplyRunStyle records a run style over a character span.
func (c *MemoryCell) ApplyRunStyle(span RunSpan) error {
	if span.Start < 0 || span.End < span.Start || span.End > len(c.text) {
		return errors.New(errors.ErrCodeInvalidInput,
			"run span [%d,%d) out of range for %d characters", span.Start, span.End, len(c.text))
	}
	c.runs = append(c.runs, span)
	return nil
}

// Paragraphs returns the styled paragraph spans in application order.
func (c *MemoryCell) Paragraphs() []ParagraphSpan { return c.paragraphs }

// ApplyParagraphStyle records a paragraph style over a character span.
func (c *MemoryCell) ApplyParagraphStyle(span ParagraphSpan) error {
	if span.Start < 0 || span.End < span.Start || span.End > len(c.text) {
		return errors.New(errors.ErrCodeInvalidInput,
			"paragraph span [%d,%d) out of range for %d characters", span.Start, span.End, len(c.text))
	}
	c.paragraphs = append(c.paragraphs, span)
	return nil
}

// Ensure MemoryCell implements Cell.
var _ Cell = (*MemoryCell)(nil)

// MemoryTable is an in-memory Table implementation with non-uniform column
// widths and row heights.
type MemoryTable struct {
	left, top  float64
	colWidths  []float64
	rowHeights []float64
	cells      [][]*MemoryCell
}

// NewMemoryTable creates a table at (left, top) sized by the given column
// widths and row heights, with every cell empty and unmerged.
func NewMemoryTable(left, top float64, colWidths, rowHeights []float64) *MemoryTable {
	t := &MemoryTable{
		left:       left,
		top:        top,
		colWidths:  append([]float64(nil), colWidths...),
		rowHeights: append([]float64(nil), rowHeights...),
		cells:      make([][]*MemoryCell, len(rowHeights)),
	}
	for r := range t.cells {
		t.cells[r] = make([]*MemoryCell, len(colWidths))
		for c := range t.cells[r] {
			t.cells[r][c] = NewMemoryCell("")
		}
	}
	return t
}

// Origin returns the table's top-left corner on the slide.
func (t *MemoryTable) Origin() (left, top float64) { return t.left, t.top }

// RowCount returns the number of rows.
func (t *MemoryTable) RowCount() int { return len(t.rowHeights) }

// ColCount returns the number of columns.
func (t *MemoryTable) ColCount() int { return len(t.colWidths) }

// ColWidth returns the width of column col.
func (t *MemoryTable) ColWidth(col int) float64 { return t.colWidths[col] }

// RowHeight returns the height of row row.
func (t *MemoryTable) RowHeight(row int) float64 { return t.rowHeights[row] }

// Cell returns the cell at (row, col), 0-based.
func (t *MemoryTable) Cell(row, col int) (Cell, error) {
	if row < 0 || row >= t.RowCount() || col < 0 || col >= t.ColCount() {
		return nil, errors.New(errors.ErrCodeInvalidIndex,
			"cell (%d, %d) out of range for %dx%d table", row, col, t.RowCount(), t.ColCount())
	}
	return t.cells[row][col], nil
}

// CellAt is Cell without the error return, for fixtures that know their
// indices are valid.
func (t *MemoryTable) CellAt(row, col int) *MemoryCell { return t.cells[row][col] }

// Width returns the total table width.
func (t *MemoryTable) Width() float64 {
	var w float64
	for _, cw := range t.colWidths {
		w += cw
	}
	return w
}

// Height returns the total table height.
func (t *MemoryTable) Height() float64 {
	var h float64
	for _, rh := range t.rowHeights {
		h += rh
	}
	return h
}

// Ensure MemoryTable implements Table.
var _ Table = (*MemoryTable)(nil)

// MemoryPage is an in-memory Page holding a fixed list of tables.
type MemoryPage struct {
	tables []Table
}

// NewMemoryPage creates a page with the given tables.
func NewMemoryPage(tables ...Table) *MemoryPage {
	return &MemoryPage{tables: tables}
}

// Tables returns the page's tables.
func (p *MemoryPage) Tables() []Table { return p.tables }

// Ensure MemoryPage implements Page.
var _ Page = (*MemoryPage)(nil)

// TableBox is a slide object whose content is a table: the table's geometry
// exposed as an Object, so a table can sit inside a selection. Geometry
// edits are refused; tables are repositioned through host-specific means.
type TableBox struct {
	id    string
	table *MemoryTable
}

// NewTableBox wraps a memory table as a slide object.
func NewTableBox(id string, table *MemoryTable) *TableBox {
	return &TableBox{id: id, table: table}
}

// ID returns the stable object identity.
func (b *TableBox) ID() string { return b.id }

// Left returns the x coordinate of the table's left edge.
func (b *TableBox) Left() float64 { return b.table.left }

// Top returns the y coordinate of the table's top edge.
func (b *TableBox) Top() float64 { return b.table.top }

// Width returns the total table width.
func (b *TableBox) Width() float64 { return b.table.Width() }

// Height returns the total table height.
func (b *TableBox) Height() float64 { return b.table.Height() }

func (b *TableBox) SetLeft(float64) error   { return b.refuse() }
func (b *TableBox) SetTop(float64) error    { return b.refuse() }
func (b *TableBox) SetWidth(float64) error  { return b.refuse() }
func (b *TableBox) SetHeight(float64) error { return b.refuse() }

func (b *TableBox) refuse() error {
	return errors.New(errors.ErrCodeUnsupported, "table %s does not support geometry edits", b.id)
}

// Table returns the wrapped table.
func (b *TableBox) Table() Table { return b.table }

// Ensure TableBox implements the table object marker.
var _ Object = (*TableBox)(nil)
var _ slide.Object = (*TableBox)(nil)
