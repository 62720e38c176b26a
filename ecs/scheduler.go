package ecs

import (
	"fmt"
	"time"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// SystemStat is the accumulated run time of one scheduled system.
type SystemStat struct {
	Name  string
	Calls uint64
	Total time.Duration
}

// Mean returns the average time per call.
func (s SystemStat) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

// Scheduler runs systems in the order they were added and times each one.
type Scheduler struct {
	systems []System
	stats   []SystemStat
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, SystemStat{Name: fmt.Sprintf("%T", system)})
}

func (s *Scheduler) Update(w *World) {
	for i, system := range s.systems {
		start := time.Now()
		system.Update(w)
		s.stats[i].Calls++
		s.stats[i].Total += time.Since(start)
	}
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}

// Stats returns a copy of the per-system timings in run order.
func (s *Scheduler) Stats() []SystemStat {
	return append([]SystemStat(nil), s.stats...)
}
