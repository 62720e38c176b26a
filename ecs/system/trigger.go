package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// PressurePlateStep presses plate e while any solid or the player rests on
// it, queueing its commands on each edge.
func PressurePlateStep(w *ecs.World, e ecs.Entity) {
	b, ok := w.Body(e)
	if !ok {
		return
	}
	pp, ok := ecs.Get(w, e, component.PressurePlateComponent.Kind())
	if !ok {
		return
	}

	pressed := len(SolidsOverlapping(w, e, b.X, b.Y)) > 0
	if !pressed {
		if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok && player != e {
			if pb, ok := w.Body(player); ok && pb.Rect().Overlaps(b.Rect()) {
				pressed = true
			}
		}
	}

	switch {
	case pressed && !pp.Pressed:
		queue(w, e, pp.OnActivate)
	case !pressed && pp.Pressed:
		queue(w, e, pp.OnDeactivate)
	}
	pp.Pressed = pressed
}

// ActivateSwitches fires every switch within one unit of e. A switch fires
// once.
func ActivateSwitches(w *ecs.World, e ecs.Entity) bool {
	b, ok := w.Body(e)
	if !ok {
		return false
	}
	reach := b.Rect()
	reach.X--
	reach.Y--
	reach.W += 2
	reach.H += 2

	fired := false
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.SwitchComponent.Kind(), func(s ecs.Entity, sb *component.Body, sw *component.Switch) {
		if s == e || sw.Activated || !sb.Active || !reach.Overlaps(sb.Rect()) {
			return
		}
		sw.Activated = true
		queue(w, s, sw.OnActivate)
		fired = true
	})
	return fired
}

func queue(w *ecs.World, src ecs.Entity, cmds []component.Command) {
	for _, cmd := range cmds {
		w.Events().Push(ecs.Event{Source: src, Command: cmd})
	}
}

// CommandDispatcher applies queued trigger commands after the simulation
// pass.
type CommandDispatcher struct {
	handlers map[component.CommandOp]func(w *ecs.World, target string)
	observer Observer
}

func NewCommandDispatcher(observer Observer) *CommandDispatcher {
	return &CommandDispatcher{
		handlers: map[component.CommandOp]func(w *ecs.World, target string){
			component.CommandOpenDoor:  func(w *ecs.World, target string) { setDoor(w, target, false) },
			component.CommandCloseDoor: func(w *ecs.World, target string) { setDoor(w, target, true) },
			component.CommandSetFlag:   func(w *ecs.World, target string) { w.SetFlag(target, true) },
			component.CommandClearFlag: func(w *ecs.World, target string) { w.SetFlag(target, false) },
		},
		observer: observer,
	}
}

func (d *CommandDispatcher) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		h, ok := d.handlers[evt.Command.Op]
		if !ok {
			continue
		}
		h(w, evt.Command.Target)
		if d.observer != nil {
			d.observer.CommandDispatched(evt.Command)
		}
	}
}

func setDoor(w *ecs.World, name string, closed bool) {
	e, ok := w.ByName(name)
	if !ok {
		return
	}
	if b, ok := w.Body(e); ok {
		b.Solid = closed
	}
}
