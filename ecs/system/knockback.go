package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Knockback pushes e away from an attacker at (ax, ay). Each axis is probed
// on its own and dropped if it would run into a solid; the remaining move is
// then resolved and committed.
func Knockback(w *ecs.World, e ecs.Entity, ax, ay, force float64) Resolution {
	b, ok := w.Body(e)
	if !ok {
		return Resolution{}
	}
	x, y := b.X, b.Y

	switch {
	case ax < b.X:
		b.VX = force
	case ax > b.X:
		b.VX = -force
	}
	x += b.VX * 2
	if len(SolidsOverlappingSlopeAware(w, e, x, b.Y)) > 0 {
		x = b.X
		b.VX = 0
	}

	switch {
	case ay < b.Y:
		b.VY = force / 2
	case ay > b.Y:
		b.VY = -force / 2
	}
	y += b.VY * 2
	if len(SolidsOverlappingSlopeAware(w, e, b.X, y)) > 0 {
		y = b.Y
		b.VY = 0
	}

	res := Resolve(w, e, x, y)
	res.Apply(b)
	return res
}

// HurtStep knocks a hurtable e away from the first enemy or projectile it
// overlaps and starts its invulnerability window. It reports whether e was
// hit this tick.
func HurtStep(w *ecs.World, e ecs.Entity, p Physics) bool {
	h, ok := ecs.Get(w, e, component.HurtableComponent.Kind())
	if !ok {
		return false
	}
	if h.Invulnerable > 0 {
		h.Invulnerable--
		return false
	}
	attacker, ok := firstAttacker(w, e)
	if !ok {
		return false
	}
	ab, _ := w.Body(attacker)
	Knockback(w, e, ab.X, ab.Y, p.KnockbackForce)
	h.Invulnerable = p.HurtInvulnerableTicks
	return true
}

func firstAttacker(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	for _, g := range []component.Group{component.GroupEnemy, component.GroupProjectile} {
		if hits := Overlapping(w, e, g); len(hits) > 0 {
			return hits[0], true
		}
	}
	return 0, false
}
