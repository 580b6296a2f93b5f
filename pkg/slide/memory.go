package slide

import (
	"github.com/google/uuid"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/geometry"
)

// Box is an in-memory Object implementation.
//
// It backs deck fixture files and serves as the standard test double for
// the engine packages. All setters succeed; wrap a Box with Lock to obtain
// an object whose setters fail the way an unsupported host object would.
type Box struct {
	id   string
	rect geometry.Rect
}

// NewBox creates a box with the given id and geometry.
// An empty id is replaced with a freshly generated UUID, matching how the
// deck loader assigns identities to fixture objects without one.
func NewBox(id string, left, top, width, height float64) *Box {
	if id == "" {
		id = uuid.NewString()
	}
	return &Box{
		id:   id,
		rect: geometry.Rect{Left: left, Top: top, Width: width, Height: height},
	}
}

// ID returns the stable object identity.
func (b *Box) ID() string { return b.id }

// Left returns the x coordinate of the left edge.
func (b *Box) Left() float64 { return b.rect.Left }

// Top returns the y coordinate of the top edge.
func (b *Box) Top() float64 { return b.rect.Top }

// Width returns the horizontal size.
func (b *Box) Width() float64 { return b.rect.Width }

// Height returns the vertical size.
func (b *Box) Height() float64 { return b.rect.Height }

// SetLeft moves the left edge, keeping the size.
func (b *Box) SetLeft(v float64) error { b.rect.Left = v; return nil }

// SetTop moves the top edge, keeping the size.
func (b *Box) SetTop(v float64) error { b.rect.Top = v; return nil }

// SetWidth resizes horizontally, keeping the top-left corner.
func (b *Box) SetWidth(v float64) error { b.rect.Width = v; return nil }

// SetHeight resizes vertically, keeping the top-left corner.
func (b *Box) SetHeight(v float64) error { b.rect.Height = v; return nil }

// Ensure Box implements Object.
var _ Object = (*Box)(nil)

// locked wraps an Object and rejects every mutation.
type locked struct {
	Object
}

// Lock returns a read-only view of o: geometry reads pass through, every
// setter fails with an UNSUPPORTED error. This mirrors host object kinds
// (e.g. placeholders, embedded media) that reject geometry edits, and is
// how deck fixtures exercise per-element failure accounting.
func Lock(o Object) Object {
	return &locked{Object: o}
}

func (l *locked) SetLeft(float64) error   { return l.refuse() }
func (l *locked) SetTop(float64) error    { return l.refuse() }
func (l *locked) SetWidth(float64) error  { return l.refuse() }
func (l *locked) SetHeight(float64) error { return l.refuse() }

func (l *locked) refuse() error {
	return errors.New(errors.ErrCodeUnsupported, "object %s does not support geometry edits", l.ID())
}

// IsLocked reports whether o was wrapped with Lock.
func IsLocked(o Object) bool {
	_, ok := o.(*locked)
	return ok
}
