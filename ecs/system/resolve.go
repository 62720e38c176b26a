package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Resolution is the corrected state of a body after Resolve.
type Resolution struct {
	// Occurred is true when any solid overlapped the desired position.
	Occurred bool
	X, Y     float64
	VX, VY   float64
	// Reverted is set when a corner wedge sent the body back to where it was.
	Reverted bool
}

// Resolve corrects the move of e from its current position to (x, y)
// against every solid overlapping the destination. Candidates are handled in
// registry order and each one sees the corrections made by the ones before.
// The body itself is not modified.
func Resolve(w *ecs.World, e ecs.Entity, x, y float64) Resolution {
	b, ok := w.Body(e)
	if !ok {
		return Resolution{X: x, Y: y}
	}
	res := Resolution{X: x, Y: y, VX: b.VX, VY: b.VY}

	candidates := SolidsOverlappingSlopeAware(w, e, x, y)
	res.Occurred = len(candidates) > 0

	for _, c := range candidates {
		cb, _ := w.Body(c)
		cr := cb.Rect()
		if !b.RectAt(res.X, res.Y).Overlaps(cr) {
			continue
		}

		if slope, ok := slopeOf(w, c, cb); ok {
			left := slope.HeightAt(cb, res.X)
			right := slope.HeightAt(cb, res.X+b.W)
			bottom := res.Y + b.H
			if bottom > left || bottom > right {
				switch {
				case cb.Y < left && left < right:
					res.Y = left - b.H
				case cb.Y < right && right < left:
					res.Y = right - b.H
				default:
					res.Y = cb.Y - b.H
				}
				res.VY = 0
			}
			continue
		}

		if ow, ok := ecs.Get(w, c, component.OneWayComponent.Kind()); ok {
			if ow.PassThrough {
				continue
			}
			// Only a body whose bottom was at or above the top last tick lands.
			if res.VY > 0 && res.Y+b.H-res.VY <= cb.Y {
				res.Y = cb.Y - b.H
				res.VY = 0
			}
			continue
		}

		switch {
		case !b.RectAt(res.X, b.Y).Overlaps(cr):
			if res.VY > 0 {
				res.Y = cb.Y - b.H
			} else if res.VY < 0 {
				res.Y = cb.Bottom()
			}
			res.VY = 0
		case !b.RectAt(b.X, res.Y).Overlaps(cr):
			if res.VX > 0 {
				res.X = cb.X - b.W
			} else if res.VX < 0 {
				res.X = cb.Right()
			}
			res.VX = 0
		default:
			res.X, res.Y = b.X, b.Y
			res.VX, res.VY = 0, 0
			res.Reverted = true
			return res
		}
	}
	return res
}

// Apply commits r to b.
func (r Resolution) Apply(b *component.Body) {
	b.X, b.Y = r.X, r.Y
	b.VX, b.VY = r.VX, r.VY
}
