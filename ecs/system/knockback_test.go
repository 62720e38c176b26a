package system

import (
	"testing"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

func TestKnockback(t *testing.T) {
	cases := []struct {
		name           string
		ax, ay         float64
		wall           bool
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"pushed_right_and_down", 0, 0, false, 56, 53, 3, 1.5},
		{"pushed_left_and_up", 100, 100, false, 44, 47, -3, -1.5},
		{"wall_cancels_horizontal", 0, 50, true, 50, 50, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addMover(t, w, 50, 50, 10, 10, 0, 0)
			if c.wall {
				addSolid(t, w, 62, 0, 10, 200)
			}
			res := Knockback(w, e, c.ax, c.ay, 3)
			b := body(t, w, e)
			if b.X != c.wantX || b.Y != c.wantY || b.VX != c.wantVX || b.VY != c.wantVY {
				t.Fatalf("got (%v,%v) v(%v,%v), want (%v,%v) v(%v,%v)",
					b.X, b.Y, b.VX, b.VY, c.wantX, c.wantY, c.wantVX, c.wantVY)
			}
			if res.X != b.X || res.Y != b.Y {
				t.Fatalf("resolution not committed")
			}
		})
	}
}

func addHurtable(t *testing.T, w *ecs.World, x, y float64) (ecs.Entity, *component.Hurtable) {
	t.Helper()
	e := addRider(t, w, x, y, 10, 10)
	h := &component.Hurtable{}
	mustAdd(t, w, e, component.HurtableComponent.Kind(), h)
	return e, h
}

func addEnemy(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.BodyComponent.Kind(), component.NewBody(component.GroupEnemy, x, y, 10, 10))
	return e
}

func TestHurtStep(t *testing.T) {
	p := DefaultPhysics()
	p.KnockbackForce = 4
	p.HurtInvulnerableTicks = 3

	t.Run("enemy_pushes_away_then_grace", func(t *testing.T) {
		w := ecs.NewWorld()
		e, h := addHurtable(t, w, 50, 50)
		addEnemy(t, w, 55, 50)

		if !HurtStep(w, e, p) {
			t.Fatalf("overlapping enemy should hit")
		}
		b := body(t, w, e)
		if b.X != 42 || b.Y != 50 || b.VX != -4 {
			t.Fatalf("expected push to x=42 with vx=-4, got (%v,%v) vx=%v", b.X, b.Y, b.VX)
		}
		if h.Invulnerable != 3 {
			t.Fatalf("expected 3 invulnerable ticks, got %d", h.Invulnerable)
		}

		b.X = 50
		for i := 0; i < 3; i++ {
			if HurtStep(w, e, p) {
				t.Fatalf("hit during invulnerability at step %d", i)
			}
		}
		if b.X != 50 || !HurtStep(w, e, p) {
			t.Fatalf("expected a new hit once invulnerability ran out")
		}
	})

	t.Run("no_attacker", func(t *testing.T) {
		w := ecs.NewWorld()
		e, h := addHurtable(t, w, 50, 50)
		addEnemy(t, w, 80, 50)
		if HurtStep(w, e, p) || h.Invulnerable != 0 {
			t.Fatalf("distant enemy should not hit")
		}
	})

	t.Run("not_hurtable", func(t *testing.T) {
		w := ecs.NewWorld()
		e := addRider(t, w, 50, 50, 10, 10)
		addEnemy(t, w, 55, 50)
		if HurtStep(w, e, p) {
			t.Fatalf("body without Hurtable should be ignored")
		}
	})

	t.Run("simulation_applies_configured_force", func(t *testing.T) {
		w := ecs.NewWorld()
		addSolid(t, w, 0, 60, 200, 10)
		e, h := addHurtable(t, w, 50, 50)
		addEnemy(t, w, 56, 50)
		w.AddSystem(NewSimulation(p, nil))

		w.Update()
		if h.Invulnerable != 3 {
			t.Fatalf("simulation should run the hurt step, invulnerable=%d", h.Invulnerable)
		}
		if b := body(t, w, e); b.VX != -p.KnockbackForce {
			t.Fatalf("expected vx=%v, got %v", -p.KnockbackForce, b.VX)
		}
	})
}
