package system

import (
	"log"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// SpawnerStep counts down spawner e and emits a boulder beside it when the
// timer runs out. Boulders spawned mid-tick join the registry after the pass.
func SpawnerStep(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	b, ok := w.Body(e)
	if !ok {
		return 0, false
	}
	sp, ok := ecs.Get(w, e, component.SpawnerComponent.Kind())
	if !ok {
		return 0, false
	}
	sp.Timer--
	if sp.Timer >= 0 {
		return 0, false
	}
	sp.Timer = sp.Delay
	return SpawnBoulder(w, b.X+b.W*sp.Dir, b.Y, sp.Size, sp.Dir, sp.Speed), true
}

// SpawnBoulder adds a rolling boulder heading in dir.
func SpawnBoulder(w *ecs.World, x, y, size, dir, speed float64) ecs.Entity {
	e := w.CreateEntity()
	b := component.NewBody(component.GroupBoulder, x, y, size, size)
	b.VX = speed * dir
	add := func(err error) {
		if err != nil {
			log.Printf("system: spawn boulder %v: %v", e, err)
		}
	}
	add(ecs.Add(w, e, component.BodyComponent.Kind(), b))
	add(ecs.Add(w, e, component.KinematicComponent.Kind(), component.NewKinematic()))
	add(ecs.Add(w, e, component.RollerComponent.Kind(), &component.Roller{Speed: speed, Dir: dir}))
	return e
}

// RollerStep removes a roller that came to a full stop.
func RollerStep(w *ecs.World, e ecs.Entity) bool {
	b, ok := w.Body(e)
	if !ok || !ecs.Has(w, e, component.RollerComponent.Kind()) {
		return false
	}
	if b.VX == 0 && b.VY == 0 {
		return w.DestroyEntity(e)
	}
	return false
}

// TTLStep counts down e's TTL and destroys it when the TTL runs out.
func TTLStep(w *ecs.World, e ecs.Entity) bool {
	ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind())
	if !ok {
		return false
	}
	if ttl.Frames > 0 {
		ttl.Frames--
		if ttl.Frames > 0 {
			return false
		}
	}
	return w.DestroyEntity(e)
}
