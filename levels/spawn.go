package levels

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
)

// Options tune how a level is instantiated.
type Options struct {
	Physics system.Physics
	// Player drives the player body. Nil leaves the player idle.
	Player component.Controller
}

// Spawn clears w and instantiates lvl in file order.
func Spawn(w *ecs.World, lvl *Level, opts Options) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("%w: nil world or level", ErrInvalidLevel)
	}
	w.Clear()
	w.SetBounds(common.Rect{W: lvl.Width, H: lvl.Height})
	for i, spec := range lvl.Entities {
		if _, err := SpawnEntity(w, spec, opts); err != nil {
			return fmt.Errorf("levels: %s entity %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}

// SpawnEntity adds one entity described by spec.
func SpawnEntity(w *ecs.World, spec Entity, opts Options) (ecs.Entity, error) {
	kind := spec.Type
	if kind == "boulder_spawner" {
		kind = "boulder"
	}
	group, err := component.ParseGroup(kind)
	if err != nil {
		return 0, err
	}

	e := w.CreateEntity()
	b := component.NewBody(group, spec.X, spec.Y, spec.W, spec.H)
	b.Name = spec.Name
	p := props(spec.Props)
	add := func(err error) {
		if err != nil {
			log.Printf("levels: add component to %s: %v", spec.Type, err)
		}
	}

	switch group {
	case component.GroupSolid, component.GroupBreakable:
		b.Solid = true
		if p.bool("slanted") {
			add(ecs.Add(w, e, component.SlopeComponent.Kind(), &component.Slope{
				FlipX: p.bool("flip_x"),
				FlipY: p.bool("flip_y"),
			}))
		}
	case component.GroupDoor:
		b.Solid = !p.bool("open")
	case component.GroupPlatform:
		b.Solid = true
		b.H = p.float("height", 2)
		add(ecs.Add(w, e, component.OneWayComponent.Kind(), &component.OneWay{}))
	case component.GroupMovingPlatform:
		b.Solid = true
		b.W = p.float("width", 16)
		b.H = p.float("height", 2)
		add(ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{
			Start:     cp.Vector{X: spec.X, Y: spec.Y},
			End:       cp.Vector{X: p.float("end_x", spec.X), Y: p.float("end_y", spec.Y)},
			Speed:     opts.Physics.PlatformSpeed,
			ZoneSize:  opts.Physics.PlatformZone,
			WaitTicks: opts.Physics.PlatformWaitTicks,
		}))
	case component.GroupPlayer:
		if b.Name == "" {
			b.Name = "player"
		}
		add(ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
		add(ecs.Add(w, e, component.RiderTagComponent.Kind(), &component.RiderTag{}))
		add(ecs.Add(w, e, component.KinematicComponent.Kind(), component.NewKinematic()))
		add(ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
		add(ecs.Add(w, e, component.HurtableComponent.Kind(), &component.Hurtable{}))
		if opts.Player != nil {
			add(ecs.Add(w, e, component.BehaviorComponent.Kind(), &component.Behavior{Controller: opts.Player}))
		}
	case component.GroupEnemy:
		add(ecs.Add(w, e, component.KinematicComponent.Kind(), component.NewKinematic()))
		if path := p.string("script"); path != "" {
			ctrl, err := system.NewScriptController(path)
			if err != nil {
				w.DestroyEntity(e)
				return 0, err
			}
			add(ecs.Add(w, e, component.BehaviorComponent.Kind(), &component.Behavior{Controller: ctrl}))
		}
	case component.GroupWeight:
		b.Solid = true
		k := component.NewKinematic()
		add(ecs.Add(w, e, component.KinematicComponent.Kind(), k))
	case component.GroupBoulder:
		if spec.Type == "boulder_spawner" {
			b.Solid = true
			add(ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
				Delay: int(p.float("delay", float64(opts.Physics.BoulderSpawnDelay))),
				Timer: int(p.float("delay", float64(opts.Physics.BoulderSpawnDelay))),
				Dir:   direction(p.string("direction")),
				Speed: opts.Physics.BoulderSpeed,
				Size:  p.float("size", opts.Physics.BoulderSize),
			}))
			break
		}
		dir := direction(p.string("direction"))
		b.VX = opts.Physics.BoulderSpeed * dir
		add(ecs.Add(w, e, component.KinematicComponent.Kind(), component.NewKinematic()))
		add(ecs.Add(w, e, component.RollerComponent.Kind(), &component.Roller{Speed: opts.Physics.BoulderSpeed, Dir: dir}))
	case component.GroupSwitch:
		b.Solid = true
		cmds, err := p.commands("on_activate")
		if err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
		add(ecs.Add(w, e, component.SwitchComponent.Kind(), &component.Switch{OnActivate: cmds}))
	case component.GroupPressurePlate:
		on, err := p.commands("on_activate")
		if err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
		off, err := p.commands("on_deactivate")
		if err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
		add(ecs.Add(w, e, component.PressurePlateComponent.Kind(), &component.PressurePlate{OnActivate: on, OnDeactivate: off}))
	case component.GroupProjectile:
		b.VX = p.float("vx", 0)
		b.VY = p.float("vy", 0)
		k := component.NewKinematic()
		k.GravityScale = 0
		add(ecs.Add(w, e, component.KinematicComponent.Kind(), k))
		if ttl := int(p.float("ttl", 0)); ttl > 0 {
			add(ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: ttl}))
		}
	case component.GroupNone, component.GroupClimbable, component.GroupWater,
		component.GroupInteractable, component.GroupEvent:
	}

	if err := ecs.Add(w, e, component.BodyComponent.Kind(), b); err != nil {
		w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

func direction(s string) float64 {
	switch s {
	case "left", "LEFT":
		return -1
	case "right", "RIGHT":
		return 1
	}
	return 0
}

type props map[string]interface{}

func (p props) float(key string, def float64) float64 {
	if v, ok := p[key].(float64); ok {
		return v
	}
	return def
}

func (p props) bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

func (p props) string(key string) string {
	v, _ := p[key].(string)
	return v
}

func (p props) commands(key string) ([]component.Command, error) {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil, nil
	}
	out := make([]component.Command, 0, len(raw))
	for _, r := range raw {
		s, _ := r.(string)
		cmd, err := component.ParseCommand(s)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}
