package system

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// ActivityZone pauses everything outside a window around the player,
// refreshed every few ticks.
type ActivityZone struct {
	Width, Height float64
	Every         int
}

func NewActivityZone(p Physics) *ActivityZone {
	return &ActivityZone{Width: p.ZoneWidth, Height: p.ZoneHeight, Every: p.ZoneRefreshTicks}
}

func (s *ActivityZone) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if s.Every > 1 && w.Tick()%uint64(s.Every) != 0 {
		return
	}
	zone, ok := s.Zone(w)
	if !ok {
		return
	}
	w.UpdateActiveZone(zone)
}

// Zone returns the window centred on the player and clamped to the level.
func (s *ActivityZone) Zone(w *ecs.World) (common.Rect, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	pb, _ := w.Body(player)
	if pb == nil {
		return common.Rect{}, false
	}
	zone := common.Rect{
		X: pb.CenterX() - s.Width/2,
		Y: pb.CenterY() - s.Height/2,
		W: s.Width,
		H: s.Height,
	}
	if bounds := w.Bounds(); bounds.W > 0 && bounds.H > 0 {
		zone = zone.ClampInside(bounds)
	}
	return zone, true
}
