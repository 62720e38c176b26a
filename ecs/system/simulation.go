package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Simulation runs every active entity's stages in one pass over the
// registry. Each entity is fully updated before the next one starts, so later
// entities see the committed state of earlier ones.
type Simulation struct {
	Physics  Physics
	Observer Observer
}

func NewSimulation(p Physics, observer Observer) *Simulation {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Simulation{Physics: p, Observer: observer}
}

func (s *Simulation) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Each(func(e ecs.Entity) {
		b, ok := w.Body(e)
		if !ok || !b.Active {
			return
		}
		s.step(w, e, b)
	})
	s.Observer.TickDone(w)
}

func (s *Simulation) step(w *ecs.World, e ecs.Entity, b *component.Body) {
	k, hasKinematic := ecs.Get(w, e, component.KinematicComponent.Kind())

	if beh, ok := ecs.Get(w, e, component.BehaviorComponent.Kind()); ok && beh.Controller != nil {
		kk := k
		if kk == nil {
			kk = component.NewKinematic()
		}
		beh.Controller.Control(&controlContext{w: w, e: e, b: b}, b, kk)
		if !w.IsAlive(e) {
			return
		}
	}

	PressurePlateStep(w, e)
	SpawnerStep(w, e)
	if TTLStep(w, e) {
		return
	}

	if mp, ok := ecs.Get(w, e, component.MovingPlatformComponent.Kind()); ok {
		MovingPlatformStep(w, e)
		if mp.Waiting && mp.WaitTimer == mp.WaitTicks {
			s.Observer.PlatformWaiting(e)
		}
	}

	if hasKinematic {
		res := KinematicStep(w, e, s.Physics)
		s.Observer.Stepped(e, b, res)
		HurtStep(w, e, s.Physics)
		if RollerStep(w, e) {
			return
		}
	}

	OneWayStep(w, e)
}
