package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// KinematicStep composes e's velocity for its movement mode, integrates it
// and commits the resolved position. It returns the resolution so callers can
// react to collisions.
func KinematicStep(w *ecs.World, e ecs.Entity, p Physics) Resolution {
	b, ok := w.Body(e)
	if !ok {
		return Resolution{}
	}
	k, ok := ecs.Get(w, e, component.KinematicComponent.Kind())
	if !ok {
		k = component.NewKinematic()
	}

	x, y := b.X, b.Y
	switch k.Mode {
	case component.MoveStandard:
		applyGravity(b, p, k.GravityScale)
	case component.MoveDashing:
		b.VY = 0
	case component.MoveClimbing:
		// Controllers drive climbing velocity directly.
	case component.MoveSwimming:
		y = swim(b, k, p)
	}

	res := Resolve(w, e, x+b.VX, y+b.VY)
	res.Apply(b)
	k.Collided = res.Occurred
	k.Reverted = res.Reverted
	return res
}

func applyGravity(b *component.Body, p Physics, scale float64) {
	if scale == 0 {
		return
	}
	limit := p.MaxGravity
	if b.VY < limit {
		b.VY += p.Gravity * scale
		if b.VY > limit {
			b.VY = limit
		}
	}
}

// swim adjusts velocity for buoyancy and returns the y to integrate from.
// A slowly rising swimmer whose centre would cross the surface is held with
// its centre on the surface.
func swim(b *component.Body, k *component.Kinematic, p Physics) float64 {
	if b.VY >= 0 {
		b.VY -= p.SwimBuoyancy
		if b.VY < 0 {
			b.VY = -p.SwimBuoyancy
		}
	}
	y := b.Y
	if b.VY > -p.SwimFloatLimit && y+b.VY+b.H/2 < k.SurfaceY {
		y = k.SurfaceY - b.H/2
		b.VY = 0
	}
	return y
}
