package component

import "github.com/shelsoloa/OverYonder--2016/common"

// Body is the spatial part of every simulated entity.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	// Solid bodies block others. Active bodies are updated and collided.
	Solid  bool
	Active bool

	Group Group
	Name  string
}

var BodyComponent = NewComponent[Body]()

// NewBody returns an active, non-solid body. Negative sizes clamp to zero.
func NewBody(group Group, x, y, w, h float64) *Body {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Body{X: x, Y: y, W: w, H: h, Active: true, Group: group}
}

// Rect returns the body's box at its current position.
func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// RectAt returns the body's box moved to (x, y).
func (b *Body) RectAt(x, y float64) common.Rect {
	return common.Rect{X: x, Y: y, W: b.W, H: b.H}
}

func (b *Body) Bottom() float64 { return b.Y + b.H }
func (b *Body) Right() float64  { return b.X + b.W }

func (b *Body) CenterX() float64 { return b.X + b.W/2 }
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }
