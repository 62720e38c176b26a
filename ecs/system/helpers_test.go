package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

func addSolid(t *testing.T, w *ecs.World, x, y, wd, h float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	b := component.NewBody(component.GroupSolid, x, y, wd, h)
	b.Solid = true
	mustAdd(t, w, e, component.BodyComponent.Kind(), b)
	return e
}

func addSlope(t *testing.T, w *ecs.World, x, y, wd, h float64, flipX bool) ecs.Entity {
	t.Helper()
	e := addSolid(t, w, x, y, wd, h)
	mustAdd(t, w, e, component.SlopeComponent.Kind(), &component.Slope{FlipX: flipX})
	return e
}

func addPlatform(t *testing.T, w *ecs.World, x, y, wd float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	b := component.NewBody(component.GroupPlatform, x, y, wd, 2)
	b.Solid = true
	mustAdd(t, w, e, component.BodyComponent.Kind(), b)
	mustAdd(t, w, e, component.OneWayComponent.Kind(), &component.OneWay{})
	return e
}

func addMover(t *testing.T, w *ecs.World, x, y, wd, h, vx, vy float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	b := component.NewBody(component.GroupPlayer, x, y, wd, h)
	b.VX, b.VY = vx, vy
	mustAdd(t, w, e, component.BodyComponent.Kind(), b)
	mustAdd(t, w, e, component.KinematicComponent.Kind(), component.NewKinematic())
	return e
}

func addRider(t *testing.T, w *ecs.World, x, y, wd, h float64) ecs.Entity {
	t.Helper()
	e := addMover(t, w, x, y, wd, h, 0, 0)
	mustAdd(t, w, e, component.RiderTagComponent.Kind(), &component.RiderTag{})
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	return e
}

func addMovingPlatform(t *testing.T, w *ecs.World, start, end cp.Vector) (ecs.Entity, *component.MovingPlatform) {
	t.Helper()
	e := w.CreateEntity()
	b := component.NewBody(component.GroupMovingPlatform, start.X, start.Y, 16, 2)
	b.Solid = true
	mustAdd(t, w, e, component.BodyComponent.Kind(), b)
	mp := &component.MovingPlatform{Start: start, End: end, Speed: 1, ZoneSize: 2, WaitTicks: 60}
	mustAdd(t, w, e, component.MovingPlatformComponent.Kind(), mp)
	return e, mp
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func body(t *testing.T, w *ecs.World, e ecs.Entity) *component.Body {
	t.Helper()
	b, ok := w.Body(e)
	if !ok {
		t.Fatalf("entity %v has no body", e)
	}
	return b
}

func sameEntities(a, b []ecs.Entity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
