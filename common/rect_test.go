package common

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touch_right_edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"touch_left_edge", Rect{X: -5, Y: 0, W: 5, H: 10}, false},
		{"far", Rect{X: 50, Y: 50, W: 1, H: 1}, false},
		{"zero_size_inside", Rect{X: 5, Y: 5, W: 0, H: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("Overlaps(%v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Overlaps(base); got != c.want {
				t.Fatalf("Overlaps is not symmetric for %v", c.other)
			}
		})
	}
}

func TestRectClampInside(t *testing.T) {
	bounds := Rect{W: 100, H: 50}
	got := Rect{X: 90, Y: -5, W: 20, H: 10}.ClampInside(bounds)
	if got.X != 80 || got.Y != 0 {
		t.Fatalf("expected (80,0), got (%v,%v)", got.X, got.Y)
	}
}

func TestApproach(t *testing.T) {
	if v := Approach(0, 10, 3); v != 3 {
		t.Fatalf("expected 3, got %v", v)
	}
	if v := Approach(9, 10, 3); v != 10 {
		t.Fatalf("expected snap to 10, got %v", v)
	}
	if v := Approach(0, -1, 3); v != -1 {
		t.Fatalf("expected -1, got %v", v)
	}
}
