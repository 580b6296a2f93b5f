// Package geometry provides shared rectangle math for slide layout.
//
// All coordinates are in user units (typically points on a slide canvas).
// Rectangles are stored as a top-left origin plus a size, matching the host
// object model, with derived accessors for the opposite edges and centers.
package geometry

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Bounds are half-open: the left and top edges are inclusive, the right
// and bottom edges exclusive, so adjacent rectangles never both claim a
// shared boundary point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Union returns the smallest rectangle covering every rectangle in rects.
// The zero Rect is returned for an empty slice.
func Union(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	left, top := rects[0].Left, rects[0].Top
	right, bottom := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		if r.Left < left {
			left = r.Left
		}
		if r.Top < top {
			top = r.Top
		}
		if r.Right() > right {
			right = r.Right()
		}
		if r.Bottom() > bottom {
			bottom = r.Bottom()
		}
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}
