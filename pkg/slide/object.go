// Package slide defines the host-facing object model for the layout engine.
//
// The engine never owns slide objects: they belong to the hosting editor,
// which exposes them through the narrow accessor/mutator surface defined
// here. Geometry getters are assumed to always succeed; every setter may
// fail for object kinds the host cannot reposition or resize, and engines
// tolerate and count such failures instead of aborting.
//
// The package also ships an in-memory implementation (Box, optionally
// wrapped by Lock) used as a test double by the engine packages and as the
// backing model for deck fixture files.
package slide

import "github.com/slidekit/slidekit/pkg/geometry"

// Object is a rectangular, positionable element on a slide.
//
// The ID is opaque and stable per object for the lifetime of a document.
// Coordinates are in a fixed linear unit with the origin at the slide's
// top-left corner. Objects may overlap; overlap is never auto-corrected.
type Object interface {
	ID() string

	Left() float64
	Top() float64
	Width() float64
	Height() float64

	SetLeft(v float64) error
	SetTop(v float64) error
	SetWidth(v float64) error
	SetHeight(v float64) error
}

// Selection is an ordered sequence of objects as reported by the host.
//
// The order is opaque: it is stable for the duration of one operation but
// carries no spatial or temporal meaning (in particular it does not reflect
// click order). Any algorithm that needs spatial order must sort a copy
// explicitly.
type Selection []Object

// BoundsOf returns the geometry of a single object as a Rect.
func BoundsOf(o Object) geometry.Rect {
	return geometry.Rect{Left: o.Left(), Top: o.Top(), Width: o.Width(), Height: o.Height()}
}

// Bounds returns the axis-aligned bounding box of the whole selection.
// The zero Rect is returned for an empty selection.
func (s Selection) Bounds() geometry.Rect {
	rects := make([]geometry.Rect, len(s))
	for i, o := range s {
		rects[i] = BoundsOf(o)
	}
	return geometry.Union(rects)
}

// ByID returns the first object with the given id, or nil if absent.
func (s Selection) ByID(id string) Object {
	for _, o := range s {
		if o.ID() == id {
			return o
		}
	}
	return nil
}
