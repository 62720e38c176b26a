package ecs

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Body returns e's body component.
func (w *World) Body(e Entity) (*component.Body, bool) {
	return Get(w, e, component.BodyComponent.Kind())
}

// ByName returns the first live entity with the given name.
func (w *World) ByName(name string) (Entity, bool) {
	if name == "" {
		return 0, false
	}
	for _, e := range w.order {
		if b, ok := w.Body(e); ok && b.Name == name {
			return e, true
		}
	}
	return 0, false
}

// Group returns every live entity of group g in insertion order.
func (w *World) Group(g component.Group) []Entity {
	var out []Entity
	for _, e := range w.order {
		if b, ok := w.Body(e); ok && b.Group == g {
			out = append(out, e)
		}
	}
	return out
}

// DestroyGroup destroys every entity of group g.
func (w *World) DestroyGroup(g component.Group) int {
	n := 0
	for _, e := range w.Group(g) {
		if w.DestroyEntity(e) {
			n++
		}
	}
	return n
}

// DestroyName destroys the first entity called name.
func (w *World) DestroyName(name string) bool {
	e, ok := w.ByName(name)
	if !ok {
		return false
	}
	return w.DestroyEntity(e)
}

// UpdateActiveZone activates entities overlapping zone and pauses the rest.
// Groups that are always active stay on; groups that despawn offscreen are
// destroyed instead of paused.
func (w *World) UpdateActiveZone(zone common.Rect) {
	w.Each(func(e Entity) {
		b, ok := w.Body(e)
		if !ok {
			return
		}
		switch {
		case b.Rect().Overlaps(zone) || b.Group.AlwaysActive():
			b.Active = true
		case b.Group.DespawnsOffscreen():
			w.DestroyEntity(e)
		default:
			b.Active = false
		}
	})
}
