// Package table implements grid-cell location and content swapping for
// slide tables.
//
// A slide table is a positioned rectangle subdivided into rows and columns
// of possibly non-uniform size. This package answers two questions the
// layout engine needs:
//
//   - which cell geometrically contains a given slide object (by center
//     point, with half-open cell bounds), and how to stack and align the
//     objects grouped inside one cell, and
//   - how to swap the full content of two rows or two columns - plain text
//     only, or with every run style, paragraph style, fill, and content
//     alignment preserved through a snapshot payload.
//
// Tables are owned by the host; this package reaches them through the
// Table, Cell, and Page interfaces and ships in-memory implementations as
// test doubles.
package table

import (
	"github.com/slidekit/slidekit/pkg/slide"
)

// MergeState describes a cell's participation in a merged region.
type MergeState int

// Merge states. Only MergeNormal cells can take part in content swaps.
const (
	// MergeNormal is a plain, unmerged cell.
	MergeNormal MergeState = iota
	// MergeOrigin is the top-left cell of a merged region.
	MergeOrigin
	// MergeContinuation is a cell hidden under a merged region.
	MergeContinuation
)

// String returns the lowercase merge state name.
func (m MergeState) String() string {
	switch m {
	case MergeNormal:
		return "normal"
	case MergeOrigin:
		return "origin"
	case MergeContinuation:
		return "continuation"
	}
	return "unknown"
}

// ContentAlignment is the vertical anchoring of a cell's text content.
type ContentAlignment int

// Content alignments. The zero value means "not explicitly set" and is
// never written back to a destination cell.
const (
	ContentAlignUnset ContentAlignment = iota
	ContentAlignTop
	ContentAlignMiddle
	ContentAlignBottom
)

// Fill is a cell's background fill state.
type Fill struct {
	Visible bool
	Color   ColorSpec
	Alpha   float64
}

// Cell is the host-facing surface of one table cell.
//
// Style reads must tolerate attributes that were never explicitly set:
// such attributes come back as unset (nil pointers, ColorNone, zero spans)
// and are never reapplied, so a transplant cannot clobber destination
// defaults.
type Cell interface {
	// Text returns the cell's plain text content.
	Text() string
	// SetText replaces the cell's plain text content.
	SetText(s string) error

	// Merge reports the cell's merge state.
	Merge() MergeState

	// Fill returns the cell's background fill.
	Fill() Fill
	// SetFill replaces the cell's background fill.
	SetFill(f Fill) error

	// ContentAlignment returns the cell's content anchoring.
	ContentAlignment() ContentAlignment
	// SetContentAlignment replaces the cell's content anchoring.
	SetContentAlignment(a ContentAlignment) error

	// Runs returns the styled runs over the current plain text, in order.
	// Offsets are character offsets into Text at the time of the call.
	Runs() []RunSpan
	// ApplyRunStyle applies a run style over a character span.
	ApplyRunStyle(span RunSpan) error

	// Paragraphs returns the styled paragraph spans, in order.
	Paragraphs() []ParagraphSpan
	// ApplyParagraphStyle applies a paragraph style over a character span.
	ApplyParagraphStyle(span ParagraphSpan) error
}

// Table is the host-facing surface of one slide table.
// Rows and columns are 0-based at this interface; the user-facing swap
// operations take 1-based indices and translate.
type Table interface {
	// Origin returns the table's top-left corner on the slide.
	Origin() (left, top float64)
	// RowCount returns the number of rows.
	RowCount() int
	// ColCount returns the number of columns.
	ColCount() int
	// ColWidth returns the width of column col.
	ColWidth(col int) float64
	// RowHeight returns the height of row row.
	RowHeight(row int) float64
	// Cell returns the cell at (row, col).
	Cell(row, col int) (Cell, error)
}

// Page enumerates the tables on the current slide page.
type Page interface {
	Tables() []Table
}

// Object marks a slide object that is a table. The content swapper uses
// this to find the target table inside the current selection.
type Object interface {
	slide.Object
	Table() Table
}
