package render

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// Camera is the world-space window drawn to the screen.
type Camera struct {
	X, Y float64
	W, H float64
	// Smoothing is the fraction of the distance to the target covered each
	// frame. Zero snaps.
	Smoothing float64
}

func NewCamera(w, h float64) *Camera {
	return &Camera{W: w, H: h, Smoothing: 0.2}
}

// Follow moves the camera toward the player, keeping it inside the level.
func (c *Camera) Follow(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pb, ok := w.Body(player)
	if !ok {
		return
	}
	tx := pb.CenterX() - c.W/2
	ty := pb.CenterY() - c.H/2
	if c.Smoothing > 0 && c.Smoothing < 1 {
		tx = common.Lerp(c.X, tx, c.Smoothing)
		ty = common.Lerp(c.Y, ty, c.Smoothing)
	}
	r := common.Rect{X: tx, Y: ty, W: c.W, H: c.H}
	if bounds := w.Bounds(); bounds.W >= c.W && bounds.H >= c.H {
		r = r.ClampInside(bounds)
	}
	c.X, c.Y = r.X, r.Y
}

// ToScreen converts a world position to screen space.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

func (c *Camera) View() common.Rect {
	return common.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}
