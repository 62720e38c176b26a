package system

import (
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

const (
	playerWalkAccel    = 0.5
	playerWalkMax      = 2.5
	playerJumpSpeed    = 3.75
	playerClimbSpeed   = 2
	playerSwimSpeed    = 2
	playerDashSpeed    = 4
	playerDashDuration = 20
)

// PlayerController turns the body's Input into a desired velocity and a
// movement mode. One controller drives one body.
type PlayerController struct {
	facing float64

	dashActive    bool
	dashAvailable bool
	dashTimer     int
}

func NewPlayerController() *PlayerController {
	return &PlayerController{facing: 1}
}

func (p *PlayerController) Control(ctx component.ControlContext, b *component.Body, k *component.Kinematic) {
	in := ctx.Input()
	if in == nil {
		in = &component.Input{}
	}
	if p.dashActive && k.Collided {
		p.endDash()
	}
	if in.InteractPressed {
		ctx.Interact()
	}

	water, inWater := ctx.Touching(component.GroupWater)

	switch k.Mode {
	case component.MoveClimbing:
		if p.climb(ctx, b, k, in) {
			return
		}
	case component.MoveSwimming:
		if inWater {
			p.walk(b, in.MoveX, playerSwimSpeed)
			if in.JumpPressed {
				b.VY = -playerJumpSpeed
			}
			k.SurfaceY = water.Y
			return
		}
		k.Mode = component.MoveStandard
	}

	if in.Up {
		if _, ok := ctx.Touching(component.GroupClimbable); ok {
			p.endDash()
			k.Mode = component.MoveClimbing
			b.VX, b.VY = 0, 0
			return
		}
	}

	below := ctx.SolidBelow()
	p.walk(b, in.MoveX, playerWalkMax)
	p.dash(b, below, in.DashPressed)

	switch {
	case in.Down && in.JumpPressed:
		if !ctx.DropThrough() && below {
			p.jump(b)
		}
	case in.JumpPressed:
		if below {
			p.jump(b)
		}
	case in.JumpReleased:
		if b.VY < 0 {
			b.VY /= 2
		}
	}

	k.Mode = component.MoveStandard
	if p.dashActive {
		k.Mode = component.MoveDashing
	}
	if inWater {
		p.endDash()
		k.Mode = component.MoveSwimming
		k.SurfaceY = water.Y
	}
}

// climb handles a tick on a ladder. It returns false when the body let go.
func (p *PlayerController) climb(ctx component.ControlContext, b *component.Body, k *component.Kinematic, in *component.Input) bool {
	ladder, ok := ctx.Touching(component.GroupClimbable)
	if !ok || in.JumpPressed {
		k.Mode = component.MoveStandard
		if in.JumpPressed {
			b.VY = -playerJumpSpeed
		}
		return false
	}
	b.VX, b.VY = 0, 0
	if in.Up {
		b.VY = -playerClimbSpeed
		if b.Y+b.VY < ladder.Y {
			b.VY = ladder.Y - b.Y
		}
	}
	if in.Down {
		b.VY = playerClimbSpeed
	}
	return true
}

func (p *PlayerController) walk(b *component.Body, move, limit float64) {
	switch {
	case b.VX > limit:
		b.VX -= playerWalkAccel * 2
	case b.VX < -limit:
		b.VX += playerWalkAccel * 2
	}
	if move == 0 {
		b.VX = common.Approach(b.VX, 0, playerWalkAccel)
		return
	}
	p.facing = common.Sign(move)
	if move < 0 && b.VX > -limit {
		b.VX -= playerWalkAccel
	}
	if move > 0 && b.VX < limit {
		b.VX += playerWalkAccel
	}
}

func (p *PlayerController) dash(b *component.Body, below, pressed bool) {
	if !p.dashAvailable && !p.dashActive {
		if p.dashTimer > 0 {
			p.dashTimer--
		} else {
			p.dashAvailable = below
		}
	}
	if pressed && p.dashAvailable && !p.dashActive {
		p.dashActive = true
		p.dashTimer = playerDashDuration
	}
	if !p.dashActive {
		return
	}
	b.VX = playerDashSpeed * p.facing
	p.dashTimer--
	if p.dashTimer <= 0 {
		p.endDash()
	}
}

func (p *PlayerController) endDash() {
	if !p.dashActive {
		return
	}
	p.dashActive = false
	p.dashAvailable = false
	p.dashTimer = playerDashDuration / 4
}

func (p *PlayerController) jump(b *component.Body) {
	b.VY = -playerJumpSpeed
	p.dashAvailable = true
}
