package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/prefabs"
)

// ScriptController runs a tengo script every tick to pick a body's desired
// velocity. The script sees the body state and contact probes as globals and
// writes back vx, vy and optionally drop.
//
//	vx = below && !right ? 1 : -1
type ScriptController struct {
	path     string
	compiled *tengo.Compiled
	failed   bool
}

// NewScriptController compiles the named script from prefabs/scripts.
func NewScriptController(path string) (*ScriptController, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("system: load script %s: %w", path, err)
	}
	return CompileScriptController(path, src)
}

// CompileScriptController compiles src under the given name.
func CompileScriptController(name string, src []byte) (*ScriptController, error) {
	script := tengo.NewScript(src)
	for _, g := range scriptInputs {
		_ = script.Add(g, 0)
	}
	_ = script.Add("below", false)
	_ = script.Add("above", false)
	_ = script.Add("left", false)
	_ = script.Add("right", false)
	_ = script.Add("drop", false)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("system: compile script %s: %w", name, err)
	}
	return &ScriptController{path: name, compiled: compiled}, nil
}

var scriptInputs = []string{"tick", "x", "y", "vx", "vy"}

// Path returns the script name the controller was built from.
func (s *ScriptController) Path() string {
	return s.path
}

func (s *ScriptController) Control(ctx component.ControlContext, b *component.Body, k *component.Kinematic) {
	if s == nil || s.compiled == nil || s.failed {
		return
	}
	inputs := map[string]any{
		"tick":  int64(ctx.Tick()),
		"x":     b.X,
		"y":     b.Y,
		"vx":    b.VX,
		"vy":    b.VY,
		"below": ctx.SolidBelow(),
		"above": ctx.SolidAbove(),
		"left":  ctx.SolidLeft(),
		"right": ctx.SolidRight(),
		"drop":  false,
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			s.fail(err)
			return
		}
	}
	if err := s.compiled.Run(); err != nil {
		s.fail(err)
		return
	}

	b.VX = s.compiled.Get("vx").Float()
	b.VY = s.compiled.Get("vy").Float()
	if s.compiled.Get("drop").Bool() {
		ctx.DropThrough()
	}
}

// fail disables the script after its first runtime error; the body keeps
// its current velocity from then on.
func (s *ScriptController) fail(err error) {
	s.failed = true
	log.Printf("system: script %s: %v", s.path, err)
}
