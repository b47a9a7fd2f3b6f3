package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoxIntersectsSymmetric(t *testing.T) {
	boxes := []Box{
		NewBox(0, 0, 10, 10),
		NewBox(5, 5, 10, 10),
		NewBox(10, 0, 10, 10), // touches the first on its right edge
		NewBox(0, 10, 10, 10), // touches the first on its bottom edge
		NewBox(2.5, 2.5, 0.5, 0.5),
		NewBox(-20, -20, 5, 5),
		NewBox(9.999, 9.999, 1, 1),
	}

	for i, a := range boxes {
		for j, b := range boxes {
			if a.Intersects(b) != b.Intersects(a) {
				t.Errorf("Intersects not symmetric for boxes %d and %d: %v vs %v", i, j, a, b)
			}
		}
	}
}

func TestBoxIntersectsEdges(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"touching corner", NewBox(0, 0, 10, 10), NewBox(10, 10, 10, 10), false},
		{"sliver overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 0, 10, 10), true},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 1, 1), true},
		{"separate", NewBox(0, 0, 10, 10), NewBox(30, 30, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAtAndCenter(t *testing.T) {
	b := BoxAt(V(100, 50), 28, 28)
	if b.X != 86 || b.Y != 36 {
		t.Errorf("BoxAt top-left = (%v, %v), expected (86, 36)", b.X, b.Y)
	}
	if c := b.Center(); c != V(100, 50) {
		t.Errorf("Center() = %v, expected (100, 50)", c)
	}

	visual := b.Centered(38, 38)
	if visual.Center() != b.Center() || visual.W != 38 {
		t.Errorf("Centered() = %v, expected 38x38 around the same center", visual)
	}

	moved := b.Translate(V(4, -6))
	if moved.X != 90 || moved.Y != 30 || moved.W != 28 {
		t.Errorf("Translate() = %v", moved)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize length = %v, expected 1", n.Len())
	}
	if n.X != 0.6 || n.Y != 0.8 {
		t.Errorf("Normalize(3,4) = %v, expected (0.6, 0.8)", n)
	}
	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("Normalize of zero vector = %v, expected zero", z)
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 20, 30, 40)

	tests := []struct {
		p    Vec2
		want bool
	}{
		{V(10, 20), true},  // top-left corner is inside
		{V(39.9, 59.9), true},
		{V(40, 30), false}, // right edge is exclusive
		{V(20, 60), false}, // bottom edge is exclusive
		{V(9.9, 30), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}
