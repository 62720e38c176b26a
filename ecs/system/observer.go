package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Observer receives simulation events. Implementations must not mutate the
// world.
type Observer interface {
	Stepped(e ecs.Entity, b *component.Body, res Resolution)
	PlatformWaiting(e ecs.Entity)
	CommandDispatched(cmd component.Command)
	TickDone(w *ecs.World)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) Stepped(ecs.Entity, *component.Body, Resolution) {}
func (NopObserver) PlatformWaiting(ecs.Entity)                      {}
func (NopObserver) CommandDispatched(component.Command)             {}
func (NopObserver) TickDone(*ecs.World)                             {}
