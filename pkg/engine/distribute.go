package engine

import (
	"sort"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/slide"
)

// Axis identifies the direction of a distribution.
type Axis int

// Distribution axes.
const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseAxis parses a distribution axis name as used by the CLI and API.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal", "h":
		return AxisHorizontal, nil
	case "vertical", "v":
		return AxisVertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput,
		"unknown axis %q (want horizontal or vertical)", s)
}

// Distribute repositions the selection so the gaps between consecutive
// objects along the axis are equal. The outermost two objects (after
// sorting by position) stay where they are; everything between is spread
// evenly. If the objects don't fit, the gap goes negative and objects
// overlap - that is accepted, not an error.
//
// Selection order is never used for spacing: a copy is sorted by the
// leading coordinate, and the original order is left untouched.
//
// Requires at least 3 selected objects.
func (e *Engine) Distribute(sel slide.Selection, axis Axis) (*Report, error) {
	if len(sel) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidSelection,
			"distribution needs at least 3 selected objects, got %d", len(sel))
	}

	sorted := make(slide.Selection, len(sel))
	copy(sorted, sel)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lead(sorted[i], axis) < lead(sorted[j], axis)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]
	total := lead(last, axis) + extent(last, axis) - lead(first, axis)

	var used float64
	for _, o := range sorted {
		used += extent(o, axis)
	}
	gap := (total - used) / float64(len(sorted)-1)

	pos := lead(first, axis)
	var t tally
	for _, o := range sorted {
		t.add(setLead(o, axis, pos))
		pos += extent(o, axis) + gap
	}

	e.logger.Debug("distributed selection",
		"axis", axis, "gap", gap, "moved", t.done, "failed", t.failed)
	return t.report("distributed"), nil
}
