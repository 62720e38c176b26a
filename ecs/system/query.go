package system

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// SolidsOverlapping returns every other live, active, solid entity whose box
// overlaps e's box placed at (x, y). Touching edges do not overlap. Results
// follow the registry order.
func SolidsOverlapping(w *ecs.World, e ecs.Entity, x, y float64, exclude ...ecs.Entity) []ecs.Entity {
	b, ok := w.Body(e)
	if !ok {
		return nil
	}
	return solidsOverlappingRect(w, e, b.RectAt(x, y), exclude)
}

func solidsOverlappingRect(w *ecs.World, e ecs.Entity, r common.Rect, exclude []ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, other := range w.Entities() {
		if other == e || excluded(other, exclude) {
			continue
		}
		ob, ok := w.Body(other)
		if !ok || !ob.Active || !ob.Solid {
			continue
		}
		if r.Overlaps(ob.Rect()) {
			out = append(out, other)
		}
	}
	return out
}

// SolidsOverlappingSlopeAware filters SolidsOverlapping so a slanted solid
// only counts when e's bottom edge sits below the slope floor at e's left or
// right edge.
func SolidsOverlappingSlopeAware(w *ecs.World, e ecs.Entity, x, y float64, exclude ...ecs.Entity) []ecs.Entity {
	b, ok := w.Body(e)
	if !ok {
		return nil
	}
	raw := solidsOverlappingRect(w, e, b.RectAt(x, y), exclude)
	out := raw[:0]
	for _, c := range raw {
		cb, _ := w.Body(c)
		slope, slanted := slopeOf(w, c, cb)
		if !slanted {
			out = append(out, c)
			continue
		}
		bottom := y + b.H
		if bottom > slope.HeightAt(cb, x) || bottom > slope.HeightAt(cb, x+b.W) {
			out = append(out, c)
		}
	}
	return out
}

// SolidAbove reports a slope-aware solid one unit above (x, y).
func SolidAbove(w *ecs.World, e ecs.Entity, x, y float64) bool {
	return len(SolidsOverlappingSlopeAware(w, e, x, y-1)) > 0
}

func SolidBelow(w *ecs.World, e ecs.Entity, x, y float64) bool {
	return len(SolidsOverlappingSlopeAware(w, e, x, y+1)) > 0
}

func SolidLeft(w *ecs.World, e ecs.Entity, x, y float64) bool {
	return len(SolidsOverlappingSlopeAware(w, e, x-1, y)) > 0
}

func SolidRight(w *ecs.World, e ecs.Entity, x, y float64) bool {
	return len(SolidsOverlappingSlopeAware(w, e, x+1, y)) > 0
}

// Overlapping returns the live, active entities of group g overlapping e's
// current box, solid or not.
func Overlapping(w *ecs.World, e ecs.Entity, g component.Group) []ecs.Entity {
	b, ok := w.Body(e)
	if !ok {
		return nil
	}
	return overlappingRect(w, e, b.Rect(), g)
}

func overlappingRect(w *ecs.World, e ecs.Entity, r common.Rect, g component.Group) []ecs.Entity {
	var out []ecs.Entity
	for _, other := range w.Group(g) {
		if other == e {
			continue
		}
		ob, _ := w.Body(other)
		if ob.Active && r.Overlaps(ob.Rect()) {
			out = append(out, other)
		}
	}
	return out
}

func slopeOf(w *ecs.World, e ecs.Entity, b *component.Body) (*component.Slope, bool) {
	if b.Group != component.GroupSolid {
		return nil, false
	}
	s, ok := ecs.Get(w, e, component.SlopeComponent.Kind())
	if !ok || !s.Slanted(b) {
		return nil, false
	}
	return s, true
}

func excluded(e ecs.Entity, exclude []ecs.Entity) bool {
	for _, x := range exclude {
		if x == e {
			return true
		}
	}
	return false
}
