package table

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Swapper exchanges the content of two table rows or two table columns.
//
// Every swap request runs the same validation pipeline before touching
// anything: resolve exactly one target table, validate the 1-based indices,
// and reject the whole swap if any affected cell is merged. Only then are
// cells mutated, so a rejected swap has zero side effects. Table border
// styling is never touched.
type Swapper struct {
	logger *log.Logger
}

// NewSwapper creates a swapper.
// If logger is nil, log.Default() is used.
func NewSwapper(logger *log.Logger) *Swapper {
	if logger == nil {
		logger = log.Default()
	}
	return &Swapper{logger: logger}
}

// SwapRows exchanges rows a and b (1-based). With keepFormatting, each
// cell's full payload (text, run styles, paragraph styles, fill, content
// alignment) moves; otherwise only the plain text is exchanged.
func (s *Swapper) SwapRows(sel slide.Selection, page Page, a, b int, keepFormatting bool) (string, error) {
	return s.swap(sel, page, a, b, keepFormatting, true)
}

// SwapColumns exchanges columns a and b (1-based), analogous to SwapRows.
func (s *Swapper) SwapColumns(sel slide.Selection, page Page, a, b int, keepFormatting bool) (string, error) {
	return s.swap(sel, page, a, b, keepFormatting, false)
}

func (s *Swapper) swap(sel slide.Selection, page Page, a, b int, keepFormatting, byRows bool) (string, error) {
	tbl, err := ResolveTable(sel, page)
	if err != nil {
		return "", err
	}

	noun := "column"
	count, lanes := tbl.ColCount(), tbl.RowCount()
	if byRows {
		noun = "row"
		count, lanes = tbl.RowCount(), tbl.ColCount()
	}

	for _, idx := range []int{a, b} {
		if idx < 1 || idx > count {
			return "", errors.New(errors.ErrCodeInvalidIndex,
				"%s index %d out of range [1, %d]", noun, idx, count)
		}
	}
	if a == b {
		return fmt.Sprintf("%s %d and %s %d are identical, nothing to swap", noun, a, noun, b), nil
	}

	// Collect the cell pairs up front; swapping touches every lane.
	cellAt := func(lane, idx int) (Cell, error) {
		if byRows {
			return tbl.Cell(idx-1, lane)
		}
		return tbl.Cell(lane, idx-1)
	}
	pairs := make([][2]Cell, lanes)
	for lane := 0; lane < lanes; lane++ {
		ca, err := cellAt(lane, a)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "look up %s %d cell", noun, a)
		}
		cb, err := cellAt(lane, b)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "look up %s %d cell", noun, b)
		}
		pairs[lane] = [2]Cell{ca, cb}
	}

	// Partial swaps are never applied: any merged cell rejects the whole
	// request before the first mutation.
	for _, pair := range pairs {
		if pair[0].Merge() != MergeNormal || pair[1].Merge() != MergeNormal {
			return "", errors.New(errors.ErrCodeMergedCell,
				"cannot swap %ss %d and %d: merged cells are not supported", noun, a, b)
		}
	}

	if keepFormatting {
		// Capture every payload on both sides before mutating either side;
		// applying as we go would read cells already overwritten.
		type snapshot struct{ a, b CellPayload }
		snapshots := make([]snapshot, lanes)
		for i, pair := range pairs {
			snapshots[i] = snapshot{a: Capture(pair[0]), b: Capture(pair[1])}
		}
		for i, pair := range pairs {
			if err := Apply(pair[0], snapshots[i].b); err != nil {
				return "", err
			}
			if err := Apply(pair[1], snapshots[i].a); err != nil {
				return "", err
			}
		}
		s.logger.Debug("swapped with formatting", "kind", noun, "a", a, "b", b, "cells", lanes*2)
		return fmt.Sprintf("swapped %ss %d and %d (formatting preserved)", noun, a, b), nil
	}

	for _, pair := range pairs {
		textA, textB := pair[0].Text(), pair[1].Text()
		if err := pair[0].SetText(textB); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s %d cell", noun, a)
		}
		if err := pair[1].SetText(textA); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s %d cell", noun, b)
		}
	}
	s.logger.Debug("swapped text", "kind", noun, "a", a, "b", b, "cells", lanes*2)
	return fmt.Sprintf("swapped %ss %d and %d", noun, a, b), nil
}

// ResolveTable finds the single table a swap should target: the selection
// if it contains exactly one table object, else the page if it contains
// exactly one table. Any other combination is an unresolvable ambiguity.
func ResolveTable(sel slide.Selection, page Page) (Table, error) {
	var selected []Table
	for _, o := range sel {
		if to, ok := o.(Object); ok {
			selected = append(selected, to.Table())
		}
	}
	if len(selected) == 1 {
		return selected[0], nil
	}

	var onPage []Table
	if page != nil {
		onPage = page.Tables()
	}
	if len(onPage) == 1 {
		return onPage[0], nil
	}

	return nil, errors.New(errors.ErrCodeAmbiguousTable,
		"cannot determine target table: %d selected, %d on page (need exactly one)",
		len(selected), len(onPage))
}
