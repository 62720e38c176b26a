package ecs

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// World owns every entity of a level, their components and the system order.
//
// Entities are kept in insertion order and every pass walks that order.
// While a tick is running, new entities wait in a pending queue and destroyed
// ones are only marked dead; both are settled once the tick completes.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore

	order     []Entity
	pending   []Entity
	dead      int
	ticking   bool
	iterating int
	tick      uint64

	scheduler Scheduler
	events    EventQueue
	flags     map[string]bool
	bounds    common.Rect
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]componentStore),
		flags:  make(map[string]bool),
	}
}

// CreateEntity allocates a new entity. Entities created during a tick join
// the iteration order after the tick.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	if w.ticking {
		w.pending = append(w.pending, e)
	} else {
		w.order = append(w.order, e)
	}
	return e
}

// DestroyEntity marks e dead. It disappears from queries and iteration at
// once; its slot and components are reclaimed after the current tick.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.kill(e) {
		return false
	}
	w.dead++
	if !w.ticking && w.iterating == 0 {
		w.compact()
	}
	return true
}

// IsAlive reports whether e refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in iteration order. Pending entities are
// not included until the tick that created them completes.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.order))
	for _, e := range w.order {
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live entities in the iteration order.
func (w *World) Len() int {
	n := 0
	for _, e := range w.order {
		if w.entities.isAlive(e) {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity in insertion order. Entities destroyed
// by fn are skipped if not yet visited; entities created by fn during a tick
// are not visited.
func (w *World) Each(fn func(e Entity)) {
	w.iterating++
	n := len(w.order)
	for i := 0; i < n; i++ {
		e := w.order[i]
		if !w.entities.isAlive(e) {
			continue
		}
		fn(e)
	}
	w.iterating--
	if w.iterating == 0 && !w.ticking && w.dead > 0 {
		w.compact()
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	w.scheduler.Add(s)
}

// SystemStats reports how long each system has spent in Update.
func (w *World) SystemStats() []SystemStat {
	return w.scheduler.Stats()
}

// Update runs one tick: all systems in order, then pending adds and removals.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.ticking = true
	w.scheduler.Update(w)
	w.ticking = false
	w.events.flush()
	w.flush()
	w.tick++
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Ticking reports whether a tick pass is in progress.
func (w *World) Ticking() bool {
	return w.ticking
}

// Events returns the world command queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Bounds returns the level extent used by the activity zone.
func (w *World) Bounds() common.Rect {
	return w.bounds
}

func (w *World) SetBounds(r common.Rect) {
	w.bounds = r
}

// Flag reads a level flag set by triggers.
func (w *World) Flag(name string) bool {
	return w.flags[name]
}

func (w *World) SetFlag(name string, v bool) {
	if v {
		w.flags[name] = true
		return
	}
	delete(w.flags, name)
}

func (w *World) flush() {
	if len(w.pending) > 0 {
		w.order = append(w.order, w.pending...)
		w.pending = w.pending[:0]
	}
	if w.dead > 0 {
		w.compact()
	}
}

// compact drops dead entities from the order, keeping survivors in place.
func (w *World) compact() {
	kept := w.order[:0]
	for _, e := range w.order {
		if w.entities.isAlive(e) {
			kept = append(kept, e)
			continue
		}
		for _, s := range w.stores {
			s.remove(e.id())
		}
		w.entities.release(e)
	}
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = 0
	}
	w.order = kept
	w.dead = 0
}

// Clear removes every entity, e.g. before loading another level.
func (w *World) Clear() {
	for _, e := range w.order {
		w.entities.kill(e)
	}
	for _, e := range w.pending {
		w.entities.kill(e)
		w.order = append(w.order, e)
	}
	w.pending = w.pending[:0]
	w.compact()
	w.flags = make(map[string]bool)
}
