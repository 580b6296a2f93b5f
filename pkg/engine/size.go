package engine

import (
	"github.com/slidekit/slidekit/pkg/anchor"
	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Dimension selects which size components a match operation copies.
type Dimension int

// Match dimensions.
const (
	DimWidth Dimension = iota
	DimHeight
	DimBoth
)

// String returns the lowercase dimension name.
func (d Dimension) String() string {
	switch d {
	case DimWidth:
		return "width"
	case DimHeight:
		return "height"
	case DimBoth:
		return "both"
	}
	return "unknown"
}

// ParseDimension parses a dimension name as used by the CLI and API.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "width", "w":
		return DimWidth, nil
	case "height", "h":
		return DimHeight, nil
	case "both":
		return DimBoth, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"unknown dimension %q (want width, height, or both)", s)
}

// Match copies the anchor's width, height, or both onto every non-anchor
// object. Positions are left untouched.
//
// Requires at least 2 selected objects.
func (e *Engine) Match(sel slide.Selection, anchorID string, dim Dimension) (*Report, error) {
	if len(sel) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"size matching needs at least 2 selected objects, got %d", len(sel))
	}

	a := anchor.Resolve(sel, anchorID)
	var t tally
	for _, o := range sel {
		if o == a {
			continue
		}
		var wErr, hErr error
		if dim == DimWidth || dim == DimBoth {
			wErr = o.SetWidth(a.Width())
		}
		if dim == DimHeight || dim == DimBoth {
			hErr = o.SetHeight(a.Height())
		}
		t.add(firstErr(wErr, hErr))
	}

	e.logger.Debug("matched sizes",
		"dimension", dim, "anchor", a.ID(), "resized", t.done, "failed", t.failed)
	return t.report("resized"), nil
}

// Stretch moves one edge of every non-anchor object to the anchor's
// corresponding edge while holding the opposite edge fixed, recomputing the
// size. Objects whose stretched size would collapse to zero or invert are
// skipped entirely: no mutation, and not counted as a failure.
//
// Requires at least 2 selected objects.
func (e *Engine) Stretch(sel slide.Selection, anchorID string, side Side) (*Report, error) {
	if len(sel) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"stretching needs at least 2 selected objects, got %d", len(sel))
	}

	a := anchor.Resolve(sel, anchorID)
	var t tally
	for _, o := range sel {
		if o == a {
			continue
		}
		switch side {
		case SideLeft:
			newWidth := o.Left() + o.Width() - a.Left()
			if newWidth <= 0 {
				continue
			}
			t.add(firstErr(o.SetLeft(a.Left()), o.SetWidth(newWidth)))
		case SideRight:
			newWidth := a.Left() + a.Width() - o.Left()
			if newWidth <= 0 {
				continue
			}
			t.add(o.SetWidth(newWidth))
		case SideTop:
			newHeight := o.Top() + o.Height() - a.Top()
			if newHeight <= 0 {
				continue
			}
			t.add(firstErr(o.SetTop(a.Top()), o.SetHeight(newHeight)))
		case SideBottom:
			newHeight := a.Top() + a.Height() - o.Top()
			if newHeight <= 0 {
				continue
			}
			t.add(o.SetHeight(newHeight))
		}
	}

	e.logger.Debug("stretched selection",
		"side", side, "anchor", a.ID(), "resized", t.done, "failed", t.failed)
	return t.report("stretched"), nil
}

// Fill extends every non-anchor object across the empty space between it
// and the anchor, so the two end up flush. An object qualifies only when a
// genuine gap exists: its near edge must lie strictly beyond the anchor's
// far edge on the relevant axis. Objects already flush with or overlapping
// the anchor are left untouched. If no object qualifies, the report says
// "no gaps found".
//
// Requires at least 2 selected objects.
func (e *Engine) Fill(sel slide.Selection, anchorID string, side Side) (*Report, error) {
	if len(sel) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"gap filling needs at least 2 selected objects, got %d", len(sel))
	}

	a := anchor.Resolve(sel, anchorID)
	var t tally
	for _, o := range sel {
		if o == a {
			continue
		}
		switch side {
		case SideLeft:
			// Object sits right of the anchor; grow leftward to its right edge.
			if o.Left() <= a.Left()+a.Width() {
				continue
			}
			newWidth := o.Left() + o.Width() - (a.Left() + a.Width())
			t.add(firstErr(o.SetLeft(a.Left()+a.Width()), o.SetWidth(newWidth)))
		case SideRight:
			// Object sits left of the anchor; grow rightward to its left edge.
			if o.Left()+o.Width() >= a.Left() {
				continue
			}
			t.add(o.SetWidth(a.Left() - o.Left()))
		case SideTop:
			// Object sits below the anchor; grow upward to its bottom edge.
			if o.Top() <= a.Top()+a.Height() {
				continue
			}
			newHeight := o.Top() + o.Height() - (a.Top() + a.Height())
			t.add(firstErr(o.SetTop(a.Top()+a.Height()), o.SetHeight(newHeight)))
		case SideBottom:
			// Object sits above the anchor; grow downward to its top edge.
			if o.Top()+o.Height() >= a.Top() {
				continue
			}
			t.add(o.SetHeight(a.Top() - o.Top()))
		}
	}

	if t.done == 0 && t.failed == 0 {
		return &Report{Message: "no gaps found"}, nil
	}

	e.logger.Debug("filled gaps",
		"side", side, "anchor", a.ID(), "resized", t.done, "failed", t.failed)
	return t.report("filled"), nil
}

// MagicResize scales every selected object by the given percentage, keeping
// each object's top-left corner fixed. 100 leaves sizes unchanged, 200
// doubles them, 50 halves them. The operation is anchor-independent.
//
// Requires a positive percentage and at least 1 selected object.
func (e *Engine) MagicResize(sel slide.Selection, percent float64) (*Report, error) {
	if len(sel) < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"magic resize needs at least 1 selected object")
	}
	if percent <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"scale percentage must be positive, got %v", percent)
	}

	factor := percent / 100
	var t tally
	for _, o := range sel {
		w, h := o.Width(), o.Height()
		t.add(firstErr(o.SetWidth(w*factor), o.SetHeight(h*factor)))
	}

	e.logger.Debug("magic resized selection",
		"percent", percent, "resized", t.done, "failed", t.failed)
	return t.report("resized"), nil
}
