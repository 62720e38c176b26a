package system

import (
	"testing"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

func TestScriptControllerPatrol(t *testing.T) {
	w := ecs.NewWorld()
	e := addMover(t, w, 0, 0, 10, 10, 0, 0)
	addSolid(t, w, 10, -10, 10, 40)

	ctrl, err := NewScriptController("patrol")
	if err != nil {
		t.Fatalf("load patrol: %v", err)
	}
	b := body(t, w, e)
	ctx := &controlContext{w: w, e: e, b: b}

	// Wall on the right turns the walker around.
	ctrl.Control(ctx, b, component.NewKinematic())
	if b.VX != -1 {
		t.Fatalf("expected to turn left, vx=%v", b.VX)
	}
	ctrl.Control(ctx, b, component.NewKinematic())
	if b.VX != -1 {
		t.Fatalf("expected to keep walking left, vx=%v", b.VX)
	}
}

func TestScriptControllerErrors(t *testing.T) {
	if _, err := CompileScriptController("broken", []byte("vx = (")); err == nil {
		t.Fatalf("expected compile error")
	}

	w := ecs.NewWorld()
	e := addMover(t, w, 0, 0, 10, 10, 2, 0)
	ctrl, err := CompileScriptController("runtime", []byte(`vx = tick / (tick - tick)`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b := body(t, w, e)
	ctrl.Control(&controlContext{w: w, e: e, b: b}, b, component.NewKinematic())
	if b.VX != 2 {
		t.Fatalf("failed script should leave velocity alone, vx=%v", b.VX)
	}
	if !ctrl.failed {
		t.Fatalf("controller should be disabled after a runtime error")
	}
}

func TestScriptControllerDrop(t *testing.T) {
	w := ecs.NewWorld()
	e := addMover(t, w, 0, 10, 10, 10, 0, 0)
	p := addPlatform(t, w, -10, 20, 40)

	ctrl, err := CompileScriptController("drop", []byte(`drop = below`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b := body(t, w, e)
	ctrl.Control(&controlContext{w: w, e: e, b: b}, b, component.NewKinematic())
	if body(t, w, p).Solid {
		t.Fatalf("script drop should release the platform")
	}
}
