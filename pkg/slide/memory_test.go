package slide

import (
	"testing"

	"github.com/slidekit/slidekit/pkg/errors"
	"github.com/slidekit/slidekit/pkg/geometry"
)

func TestNewBoxAssignsID(t *testing.T) {
	b := NewBox("", 0, 0, 10, 10)
	if b.ID() == "" {
		t.Error("NewBox with empty id should generate one")
	}

	named := NewBox("shape-1", 0, 0, 10, 10)
	if named.ID() != "shape-1" {
		t.Errorf("ID() = %v, want shape-1", named.ID())
	}
}

func TestBoxSetters(t *testing.T) {
	b := NewBox("a", 10, 20, 30, 40)

	if err := b.SetLeft(100); err != nil {
		t.Fatalf("SetLeft: %v", err)
	}
	if err := b.SetTop(200); err != nil {
		t.Fatalf("SetTop: %v", err)
	}
	if err := b.SetWidth(300); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	if err := b.SetHeight(400); err != nil {
		t.Fatalf("SetHeight: %v", err)
	}

	want := geometry.Rect{Left: 100, Top: 200, Width: 300, Height: 400}
	if got := BoundsOf(b); got != want {
		t.Errorf("BoundsOf() = %+v, want %+v", got, want)
	}
}

func TestLockRejectsMutations(t *testing.T) {
	b := NewBox("frozen", 1, 2, 3, 4)
	l := Lock(b)

	setters := []struct {
		name string
		call func() error
	}{
		{"SetLeft", func() error { return l.SetLeft(9) }},
		{"SetTop", func() error { return l.SetTop(9) }},
		{"SetWidth", func() error { return l.SetWidth(9) }},
		{"SetHeight", func() error { return l.SetHeight(9) }},
	}

	for _, tt := range setters {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatalf("%s on locked object should fail", tt.name)
			}
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
			}
		})
	}

	// Reads still pass through, geometry unchanged.
	if got := BoundsOf(l); got != (geometry.Rect{Left: 1, Top: 2, Width: 3, Height: 4}) {
		t.Errorf("BoundsOf() = %+v, geometry should be untouched", got)
	}
	if !IsLocked(l) {
		t.Error("IsLocked(l) = false, want true")
	}
	if IsLocked(b) {
		t.Error("IsLocked(b) = true, want false")
	}
}

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want geometry.Rect
	}{
		{
			name: "empty",
			sel:  nil,
			want: geometry.Rect{},
		},
		{
			name: "two objects",
			sel: Selection{
				NewBox("a", 0, 0, 10, 10),
				NewBox("b", 90, 40, 10, 10),
			},
			want: geometry.Rect{Left: 0, Top: 0, Width: 100, Height: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectionByID(t *testing.T) {
	a := NewBox("a", 0, 0, 1, 1)
	b := NewBox("b", 0, 0, 1, 1)
	sel := Selection{a, b}

	if got := sel.ByID("b"); got != Object(b) {
		t.Errorf("ByID(b) = %v, want b", got)
	}
	if got := sel.ByID("missing"); got != nil {
		t.Errorf("ByID(missing) = %v, want nil", got)
	}
}
