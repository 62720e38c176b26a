package system

import (
	"github.com/jakecoffman/cp"
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// MovingPlatformStep advances platform e one tick and carries its rider.
//
// The platform first checks its own step against the solids, ignoring the
// rider. The rider is then moved by the same delta and checked against the
// solids, ignoring the platform. If the rider would end up inside anything,
// both moves are undone.
func MovingPlatformStep(w *ecs.World, e ecs.Entity) {
	b, ok := w.Body(e)
	if !ok {
		return
	}
	mp, ok := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	if !ok {
		return
	}

	if mp.Waiting {
		mp.WaitTimer--
		if mp.WaitTimer > 0 {
			return
		}
		mp.Waiting = false
	}

	rider, riding := findRider(w, e, b, mp.ZoneSize)
	var target cp.Vector
	if riding {
		mp.Riding = true
		mp.Rider = rider.Raw()
		target = mp.End
		if mp.Reverse {
			target = mp.Start
		}
	} else {
		if mp.Riding {
			mp.Wait()
		}
		mp.Riding = false
		mp.Rider = 0
		target = mp.Start
	}

	next := stepToward(cp.Vector{X: b.X, Y: b.Y}, target, mp.Speed)

	var ignore []ecs.Entity
	if riding {
		ignore = append(ignore, rider)
	}
	blocked := len(SolidsOverlappingSlopeAware(w, e, next.X, next.Y, ignore...)) > 0
	if blocked {
		next = cp.Vector{X: b.X, Y: b.Y}
	}
	dx, dy := next.X-b.X, next.Y-b.Y

	if riding && (dx != 0 || dy != 0) {
		rb, _ := w.Body(rider)
		rx, ry := rb.X+dx, rb.Y+dy
		if len(SolidsOverlappingSlopeAware(w, rider, rx, ry, e)) > 0 {
			next = cp.Vector{X: b.X, Y: b.Y}
			blocked = true
		} else {
			rb.X, rb.Y = rx, ry
		}
	}

	b.X, b.Y = next.X, next.Y

	if blocked {
		mp.Wait()
		mp.Reverse = !mp.Reverse
		return
	}
	if riding && next.Equal(target) {
		mp.Wait()
		mp.Reverse = !mp.Reverse
	}
}

// findRider returns the first rider standing in the strip of height zone
// directly above the platform.
func findRider(w *ecs.World, e ecs.Entity, b *component.Body, zone float64) (ecs.Entity, bool) {
	strip := common.Rect{X: b.X, Y: b.Y - zone, W: b.W, H: zone}
	for _, r := range w.Entities() {
		if r == e || !ecs.Has(w, r, component.RiderTagComponent.Kind()) {
			continue
		}
		rb, ok := w.Body(r)
		if ok && rb.Active && rb.Rect().Overlaps(strip) {
			return r, true
		}
	}
	return 0, false
}

// stepToward moves from by at most speed along the segment to target.
func stepToward(from, target cp.Vector, speed float64) cp.Vector {
	delta := target.Sub(from)
	dist := delta.Length()
	if dist <= speed || dist == 0 {
		return target
	}
	return from.Add(delta.Mult(speed / dist))
}
