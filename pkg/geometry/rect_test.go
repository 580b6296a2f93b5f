package geometry

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name                     string
		rect                     Rect
		wantRight, wantBottom    float64
		wantCenterX, wantCenterY float64
	}{
		{
			name:        "simple",
			rect:        Rect{Left: 10, Top: 20, Width: 100, Height: 50},
			wantRight:   110,
			wantBottom:  70,
			wantCenterX: 60,
			wantCenterY: 45,
		},
		{
			name:        "zero size",
			rect:        Rect{Left: 5, Top: 5},
			wantRight:   5,
			wantBottom:  5,
			wantCenterX: 5,
			wantCenterY: 5,
		},
		{
			name:        "negative origin",
			rect:        Rect{Left: -40, Top: -10, Width: 40, Height: 10},
			wantRight:   0,
			wantBottom:  0,
			wantCenterX: -20,
			wantCenterY: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.wantRight {
				t.Errorf("Right() = %v, want %v", got, tt.wantRight)
			}
			if got := tt.rect.Bottom(); got != tt.wantBottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.wantBottom)
			}
			if got := tt.rect.CenterX(); got != tt.wantCenterX {
				t.Errorf("CenterX() = %v, want %v", got, tt.wantCenterX)
			}
			if got := tt.rect.CenterY(); got != tt.wantCenterY {
				t.Errorf("CenterY() = %v, want %v", got, tt.wantCenterY)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"interior point", 15, 15, true},
		{"left edge inclusive", 10, 15, true},
		{"top edge inclusive", 15, 10, true},
		{"right edge exclusive", 30, 15, false},
		{"bottom edge exclusive", 15, 30, false},
		{"top-left corner inclusive", 10, 10, true},
		{"bottom-right corner exclusive", 30, 30, false},
		{"outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name  string
		rects []Rect
		want  Rect
	}{
		{
			name:  "empty",
			rects: nil,
			want:  Rect{},
		},
		{
			name:  "single",
			rects: []Rect{{Left: 1, Top: 2, Width: 3, Height: 4}},
			want:  Rect{Left: 1, Top: 2, Width: 3, Height: 4},
		},
		{
			name: "disjoint pair",
			rects: []Rect{
				{Left: 0, Top: 0, Width: 10, Height: 10},
				{Left: 50, Top: 60, Width: 10, Height: 10},
			},
			want: Rect{Left: 0, Top: 0, Width: 60, Height: 70},
		},
		{
			name: "contained rect does not grow bounds",
			rects: []Rect{
				{Left: 0, Top: 0, Width: 100, Height: 100},
				{Left: 20, Top: 20, Width: 10, Height: 10},
			},
			want: Rect{Left: 0, Top: 0, Width: 100, Height: 100},
		},
		{
			name: "negative coordinates",
			rects: []Rect{
				{Left: -10, Top: -20, Width: 5, Height: 5},
				{Left: 10, Top: 10, Width: 5, Height: 5},
			},
			want: Rect{Left: -10, Top: -20, Width: 25, Height: 35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Union(tt.rects); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
