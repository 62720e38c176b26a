package common

// Rect is an axis-aligned box with a top-left origin. The covered area is the
// half-open range [X, X+W) x [Y, Y+H), so boxes that only share an edge do not
// overlap.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ContainsPoint uses closed bounds, matching point probes against triggers.
func (r Rect) ContainsPoint(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// ClampInside shifts r so it stays inside bounds where possible.
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.X > bounds.X+bounds.W-r.W {
		r.X = bounds.X + bounds.W - r.W
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y > bounds.Y+bounds.H-r.H {
		r.Y = bounds.Y + bounds.H - r.H
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}
