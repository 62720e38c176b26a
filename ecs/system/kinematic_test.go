package system

import (
	"testing"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/prefabs"
)

func TestGravityClamp(t *testing.T) {
	p := DefaultPhysics()
	cases := []struct {
		name  string
		start float64
	}{
		{"from_rest", 0},
		{"just_under_max", p.MaxGravity - 0.05},
		{"rising", -5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addMover(t, w, 0, 0, 4, 4, 0, c.start)
			for i := 0; i < 500; i++ {
				KinematicStep(w, e, p)
				if vy := body(t, w, e).VY; vy > p.MaxGravity {
					t.Fatalf("tick %d: vy %v exceeds max %v", i, vy, p.MaxGravity)
				}
			}
			if vy := body(t, w, e).VY; vy != p.MaxGravity {
				t.Fatalf("expected terminal velocity %v, got %v", p.MaxGravity, vy)
			}
		})
	}
}

func TestMoveModes(t *testing.T) {
	p := DefaultPhysics()
	cases := []struct {
		name   string
		mode   component.MoveMode
		vx, vy float64
		wantVY float64
	}{
		{"standard_applies_gravity", component.MoveStandard, 0, 0, p.Gravity},
		{"dashing_cancels_vertical", component.MoveDashing, 4, 3, 0},
		{"climbing_keeps_velocity", component.MoveClimbing, 0, -2, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addMover(t, w, 0, 0, 4, 4, c.vx, c.vy)
			k, _ := ecs.Get(w, e, component.KinematicComponent.Kind())
			k.Mode = c.mode

			KinematicStep(w, e, p)
			b := body(t, w, e)
			if b.VY != c.wantVY {
				t.Fatalf("vy = %v, want %v", b.VY, c.wantVY)
			}
			if b.X != c.vx || b.Y != c.wantVY {
				t.Fatalf("position (%v,%v), want (%v,%v)", b.X, b.Y, c.vx, c.wantVY)
			}
		})
	}
}

func TestSwimmingFloatsToSurface(t *testing.T) {
	p := DefaultPhysics()
	w := ecs.NewWorld()
	e := addMover(t, w, 0, 40, 10, 10, 0, 0)
	k, _ := ecs.Get(w, e, component.KinematicComponent.Kind())
	k.Mode = component.MoveSwimming
	k.SurfaceY = 20

	for i := 0; i < 200; i++ {
		KinematicStep(w, e, p)
	}
	b := body(t, w, e)
	if b.CenterY() != k.SurfaceY || b.VY != 0 {
		t.Fatalf("expected swimmer centred on the surface, y=%v vy=%v", b.Y, b.VY)
	}
}

func TestKinematicReportsCollision(t *testing.T) {
	w := ecs.NewWorld()
	e := addMover(t, w, 0, 0, 10, 10, 5, 0)
	addSolid(t, w, 12, -10, 10, 40)

	res := KinematicStep(w, e, DefaultPhysics())
	k, _ := ecs.Get(w, e, component.KinematicComponent.Kind())
	if !res.Occurred || !k.Collided {
		t.Fatalf("expected collision flag")
	}
	if b := body(t, w, e); b.X != 2 || b.VX != 0 {
		t.Fatalf("expected stop at x=2, got x=%v vx=%v", b.X, b.VX)
	}
}

func TestPhysicsFromSpec(t *testing.T) {
	spec := &prefabs.PhysicsSpec{Gravity: 0.5}
	spec.MovingPlatform.WaitTicks = 10
	spec.Boulder.Size = 20
	spec.Knockback.Force = 6
	spec.Knockback.InvulnerableTicks = 15
	p := PhysicsFromSpec(spec)
	if p.Gravity != 0.5 || p.PlatformWaitTicks != 10 {
		t.Fatalf("spec values not applied: %+v", p)
	}
	if p.BoulderSize != 20 || p.KnockbackForce != 6 || p.HurtInvulnerableTicks != 15 {
		t.Fatalf("boulder and knockback values not applied: %+v", p)
	}
	if p.MaxGravity != DefaultPhysics().MaxGravity {
		t.Fatalf("unset values should keep defaults")
	}
	if got := PhysicsFromSpec(nil); got != DefaultPhysics() {
		t.Fatalf("nil spec should give defaults")
	}
}
