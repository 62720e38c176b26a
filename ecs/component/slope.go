package component

import "github.com/jakecoffman/cp"

// Slope marks a solid as a ramp. Without FlipX the floor rises from the
// bottom-left corner to the top-right corner.
type Slope struct {
	FlipX bool
	// FlipY is carried from level data. Upside-down ramps are not
	// interpolated yet and collide like upright ones.
	FlipY bool
}

var SlopeComponent = NewComponent[Slope]()

// Slanted reports whether b can be treated as a ramp. A zero-width box has no
// slope and behaves like a wall.
func (s *Slope) Slanted(b *Body) bool {
	return s != nil && b != nil && b.W > 0
}

// HeightAt returns the floor height of ramp b at world x, clamped to the box.
func (s *Slope) HeightAt(b *Body, wx float64) float64 {
	if b.W <= 0 {
		return b.Y
	}
	rise := (wx - b.X) / b.W * b.H
	if s.FlipX {
		rise = b.H - rise
	}
	return b.Y + b.H - cp.Clamp(rise, 0, b.H)
}
