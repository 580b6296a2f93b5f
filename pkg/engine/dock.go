package engine

import (
	"github.com/slidekit/slidekit/pkg/anchor"
	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Side identifies which side of the anchor an operation targets.
type Side int

// Anchor sides.
const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

// ParseSide parses a side name as used by the CLI and API.
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	case "top":
		return SideTop, nil
	case "bottom":
		return SideBottom, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"unknown side %q (want left, right, top, or bottom)", s)
}

// Dock moves every non-anchor object along one axis until it touches the
// anchor with zero gap: DockLeft places objects flush against the anchor's
// left edge, DockRight against its right edge, and so on. Only the docking
// axis changes; the orthogonal coordinate and the size stay untouched.
//
// When several objects are docked to the same side they all land at the
// same coordinate and stack. That is intentional: callers dock one object
// at a time, or follow up with an alignment pass to fan the stack out.
//
// Requires at least 2 selected objects.
func (e *Engine) Dock(sel slide.Selection, anchorID string, side Side) (*Report, error) {
	if len(sel) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"docking needs at least 2 selected objects, got %d", len(sel))
	}

	a := anchor.Resolve(sel, anchorID)
	var t tally
	for _, o := range sel {
		if o == a {
			continue
		}
		var err error
		switch side {
		case SideLeft:
			err = o.SetLeft(a.Left() - o.Width())
		case SideRight:
			err = o.SetLeft(a.Left() + a.Width())
		case SideTop:
			err = o.SetTop(a.Top() - o.Height())
		case SideBottom:
			err = o.SetTop(a.Top() + a.Height())
		}
		t.add(err)
	}

	e.logger.Debug("docked selection",
		"side", side, "anchor", a.ID(), "moved", t.done, "failed", t.failed)
	return t.report("docked"), nil
}
