package engine

import (
	"github.com/slidekit/slidekit/pkg/anchor"
	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Edge identifies the edge or center line an alignment targets.
type Edge int

// Alignment targets.
const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
	EdgeCenterX
	EdgeCenterY
)

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeCenterX:
		return "center-x"
	case EdgeCenterY:
		return "center-y"
	}
	return "unknown"
}

// ParseEdge parses an alignment target name as used by the CLI and API.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "center-x", "centerx":
		return EdgeCenterX, nil
	case "center-y", "centery":
		return EdgeCenterY, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"unknown alignment edge %q (want left, right, top, bottom, center-x, or center-y)", s)
}

// Align moves every non-anchor object so the chosen edge or center line
// coincides with the anchor's. The orthogonal coordinate and the size of
// each moved object stay untouched, and the anchor itself is never mutated.
//
// Requires at least 2 selected objects.
func (e *Engine) Align(sel slide.Selection, anchorID string, edge Edge) (*Report, error) {
	if len(sel) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"alignment needs at least 2 selected objects, got %d", len(sel))
	}

	a := anchor.Resolve(sel, anchorID)
	var t tally
	for _, o := range sel {
		if o == a {
			continue
		}
		var err error
		switch edge {
		case EdgeLeft:
			err = o.SetLeft(a.Left())
		case EdgeRight:
			err = o.SetLeft(a.Left() + a.Width() - o.Width())
		case EdgeTop:
			err = o.SetTop(a.Top())
		case EdgeBottom:
			err = o.SetTop(a.Top() + a.Height() - o.Height())
		case EdgeCenterX:
			err = o.SetLeft(a.Left() + a.Width()/2 - o.Width()/2)
		case EdgeCenterY:
			err = o.SetTop(a.Top() + a.Height()/2 - o.Height()/2)
		}
		t.add(err)
	}

	e.logger.Debug("aligned selection",
		"edge", edge, "anchor", a.ID(), "moved", t.done, "failed", t.failed)
	return t.report("aligned"), nil
}
