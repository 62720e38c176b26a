package ecs

import (
	"fmt"

	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil {
		return nil
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := &SparseSet[T]{}
		w.stores[kind.ID()] = set
		return set
	}
	set, _ := s.(*SparseSet[T])
	return set
}

// Add attaches or replaces a component.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s on %v", component.ErrEntityNotAlive, kind, e)
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := storeFor(w, kind, false)
	if !s.has(e.id()) {
		return false
	}
	s.remove(e.id())
	return true
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return storeFor(w, kind, false).has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	return storeFor(w, kind, false).get(e.id())
}

// ForEach visits every live entity holding kind, in insertion order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, a *T)) {
	s := storeFor(w, kind, false)
	if s.len() == 0 {
		return
	}
	w.Each(func(e Entity) {
		if a, ok := s.get(e.id()); ok {
			fn(e, a)
		}
	})
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa.len() == 0 || sb.len() == 0 {
		return
	}
	w.Each(func(e Entity) {
		a, ok := sa.get(e.id())
		if !ok {
			return
		}
		b, ok := sb.get(e.id())
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s.len() == 0 {
		return 0, false
	}
	for _, e := range w.order {
		if w.entities.isAlive(e) && s.has(e.id()) {
			return e, true
		}
	}
	return 0, false
}
