package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/shelsoloa/OverYonder--2016/common"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/render"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
	"github.com/shelsoloa/OverYonder--2016/levels"
	"github.com/shelsoloa/OverYonder--2016/prefabs"
)

type Game struct {
	levelName string
	debug     bool

	world   *ecs.World
	sim     *system.Simulation
	zone    *system.ActivityZone
	camera  *render.Camera
	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
}

func NewGame(levelName string, debug, hot bool) (*Game, error) {
	physics, err := loadPhysics()
	if err != nil {
		return nil, err
	}

	g := &Game{
		levelName: levelName,
		debug:     debug,
		world:     ecs.NewWorld(),
		sim:       system.NewSimulation(physics, nil),
		zone:      system.NewActivityZone(physics),
		camera:    render.NewCamera(common.BaseWidth, common.BaseHeight),
	}
	g.world.AddSystem(NewInputSystem())
	g.world.AddSystem(g.sim)
	g.world.AddSystem(system.NewCommandDispatcher(nil))
	g.world.AddSystem(g.zone)

	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if hot {
		watcher, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func loadPhysics() (system.Physics, error) {
	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return system.Physics{}, err
	}
	if spec.TPS > 0 {
		ebiten.SetTPS(spec.TPS)
	}
	return system.PhysicsFromSpec(spec), nil
}

func (g *Game) loadLevel() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	opts := levels.Options{Physics: g.sim.Physics, Player: system.NewPlayerController()}
	if err := levels.Spawn(g.world, lvl, opts); err != nil {
		return err
	}
	g.zone.Update(g.world)
	return nil
}

// Restart reloads the current level from scratch.
func (g *Game) Restart() {
	if err := g.loadLevel(); err != nil {
		log.Printf("restart %s: %v", g.levelName, err)
	}
	g.paused = false
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// applyChanges runs between ticks so a reload never lands mid-pass.
func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefab watcher: %v", err)
	default:
	}
	reload := false
	for _, change := range g.watcher.Pending() {
		switch change.Kind {
		case prefabs.ChangeSpec:
			physics, err := loadPhysics()
			if err != nil {
				log.Printf("reload %s: %v", change.Name, err)
				continue
			}
			g.sim.Physics = physics
			*g.zone = *system.NewActivityZone(physics)
			log.Printf("reloaded %s", change.Name)
		case prefabs.ChangeScript:
			// Script controllers are built at spawn time.
			reload = true
		case prefabs.ChangeLevel:
			if levels.SameLevel(change.Name, g.levelName) {
				reload = true
			}
		}
	}
	if reload {
		if err := g.loadLevel(); err != nil {
			log.Printf("reload %s: %v", g.levelName, err)
			return
		}
		log.Printf("reloaded level %s", g.levelName)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}

	g.applyChanges()
	g.world.Update()
	g.camera.Follow(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff})
	render.DrawBodies(g.world, screen, g.camera)
	if g.debug {
		render.DrawPlatformPaths(g.world, screen, g.camera)
		render.DrawStats(g.world, screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
