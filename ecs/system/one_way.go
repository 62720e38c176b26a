package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// DropThrough releases every one-way platform directly below e so e can fall
// through it. It reports whether any platform was released.
func DropThrough(w *ecs.World, e ecs.Entity) bool {
	b, ok := w.Body(e)
	if !ok {
		return false
	}
	probe := b.RectAt(b.X, b.Y+1)
	dropped := false
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.OneWayComponent.Kind(), func(p ecs.Entity, pb *component.Body, ow *component.OneWay) {
		if p == e || !pb.Active || !pb.Solid || !probe.Overlaps(pb.Rect()) {
			return
		}
		ow.PassThrough = true
		ow.Passer = e.Raw()
		pb.Solid = false
		dropped = true
	})
	return dropped
}

// OneWayStep makes a released platform solid again once the body it let
// through no longer overlaps it.
func OneWayStep(w *ecs.World, e ecs.Entity) {
	b, ok := w.Body(e)
	if !ok {
		return
	}
	ow, ok := ecs.Get(w, e, component.OneWayComponent.Kind())
	if !ok || !ow.PassThrough {
		return
	}
	if pb, ok := w.Body(ecs.FromRaw(ow.Passer)); ok && pb.Rect().Overlaps(b.Rect()) {
		return
	}
	ow.PassThrough = false
	ow.Passer = 0
	b.Solid = true
}
