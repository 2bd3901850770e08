package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 48, 48),
			b:        NewBox(24, 24, 48, 48),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 48, 48),
			b:        NewBox(96, 0, 48, 48),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 48, 48),
			b:        NewBox(0, 96, 48, 48),
			expected: false,
		},
		{
			name:     "adjacent edges (no overlap)",
			a:        NewBox(0, 0, 48, 48),
			b:        NewBox(48, 0, 48, 48),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 96, 96),
			b:        NewBox(24, 24, 12, 12),
			expected: true,
		},
		{
			name:     "negative-y overlap above floor",
			a:        NewBox(0, -48, 48, 48),
			b:        NewBox(24, -24, 48, 48),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewBox(0, 0, 48, 48),
			b:        NewBox(47.5, 47.5, 48, 48),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(10, -58, 48, 48)

	if b.Right() != 58 {
		t.Errorf("Right() = %f, expected 58", b.Right())
	}
	if b.Bottom() != -10 {
		t.Errorf("Bottom() = %f, expected -10", b.Bottom())
	}

	c := b.Center()
	if c.X != 34 || c.Y != -34 {
		t.Errorf("Center() = (%f, %f), expected (34, -34)", c.X, c.Y)
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}

	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	if d := b.Dist(a); d != 5 {
		t.Errorf("Dist() (reversed) = %f, expected 5", d)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
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
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSnapAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{44, 0},
		{46, 90}, // rounds up past midpoint
		{134, 90},
		{136, 180},
		{-44, 0},
		{-50, -90},
		{359, 360},
	}

	for _, tc := range tests {
		if got := SnapAngle(tc.in); got != tc.expected {
			t.Errorf("SnapAngle(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}
