package system

import (
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// controlContext answers a controller's questions about its own entity.
type controlContext struct {
	w *ecs.World
	e ecs.Entity
	b *component.Body
}

var _ component.ControlContext = (*controlContext)(nil)

func (c *controlContext) Tick() uint64 { return c.w.Tick() }

func (c *controlContext) SolidAbove() bool { return SolidAbove(c.w, c.e, c.b.X, c.b.Y) }
func (c *controlContext) SolidBelow() bool { return SolidBelow(c.w, c.e, c.b.X, c.b.Y) }
func (c *controlContext) SolidLeft() bool  { return SolidLeft(c.w, c.e, c.b.X, c.b.Y) }
func (c *controlContext) SolidRight() bool { return SolidRight(c.w, c.e, c.b.X, c.b.Y) }

func (c *controlContext) Touching(g component.Group) (*component.Body, bool) {
	hits := Overlapping(c.w, c.e, g)
	if len(hits) == 0 {
		return nil, false
	}
	return c.w.Body(hits[0])
}

func (c *controlContext) DropThrough() bool { return DropThrough(c.w, c.e) }

func (c *controlContext) Interact() bool { return ActivateSwitches(c.w, c.e) }

func (c *controlContext) Input() *component.Input {
	in, _ := ecs.Get(c.w, c.e, component.InputComponent.Kind())
	return in
}
