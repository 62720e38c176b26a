package levels

import (
	"errors"
	"testing"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
)

func TestLoadEmbedded(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			w := ecs.NewWorld()
			if err := Spawn(w, lvl, Options{Physics: system.DefaultPhysics()}); err != nil {
				t.Fatalf("spawn: %v", err)
			}
			if w.Len() != len(lvl.Entities) {
				t.Fatalf("spawned %d of %d entities", w.Len(), len(lvl.Entities))
			}
			if _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); !ok {
				t.Fatalf("level has no player")
			}
		})
	}
}

func TestLoadNames(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"demo", false},
		{"demo.json", false},
		{"levels/demo", false},
		{" flat ", false},
		{"missing", true},
		{"", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := Load(c.name)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(lvl.Entities) == 0 {
				t.Fatalf("level %q has no entities", c.name)
			}
		})
	}
	if _, err := Load(""); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for empty name, got %v", err)
	}
}

func TestSameLevel(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"demo.json", "demo", true},
		{"levels/demo.json", "demo", true},
		{"demo", "flat", false},
		{"", "", false},
	}
	for _, c := range cases {
		t.Run(c.a+"_"+c.b, func(t *testing.T) {
			if got := SameLevel(c.a, c.b); got != c.want {
				t.Fatalf("SameLevel(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad_json", `{`},
		{"no_size", `{"width": 0, "height": 10}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := Parse([]byte(`{"width": -1, "height": 1}`)); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestSpawnEntity(t *testing.T) {
	opts := Options{Physics: system.DefaultPhysics()}
	w := ecs.NewWorld()

	slope, err := SpawnEntity(w, Entity{Type: "solid", X: 0, Y: 0, W: 16, H: 16, Props: map[string]interface{}{"slanted": true, "flip_x": true}}, opts)
	if err != nil {
		t.Fatalf("spawn slope: %v", err)
	}
	if s, ok := ecs.Get(w, slope, component.SlopeComponent.Kind()); !ok || !s.FlipX {
		t.Fatalf("slope flags not applied")
	}

	mp, err := SpawnEntity(w, Entity{Type: "moving_platform", X: 10, Y: 20, Props: map[string]interface{}{"end_x": 50.0}}, opts)
	if err != nil {
		t.Fatalf("spawn moving platform: %v", err)
	}
	m, _ := ecs.Get(w, mp, component.MovingPlatformComponent.Kind())
	if m.End.X != 50 || m.End.Y != 20 || m.WaitTicks != 60 {
		t.Fatalf("unexpected platform %+v", m)
	}
	if b, _ := w.Body(mp); b.W != 16 || b.H != 2 || !b.Solid {
		t.Fatalf("unexpected platform body %+v", b)
	}

	plate, err := SpawnEntity(w, Entity{Type: "pressure_plate", W: 16, H: 4, Props: map[string]interface{}{"on_activate": []interface{}{"set_flag:a"}}}, opts)
	if err != nil {
		t.Fatalf("spawn plate: %v", err)
	}
	if pp, _ := ecs.Get(w, plate, component.PressurePlateComponent.Kind()); len(pp.OnActivate) != 1 || pp.OnActivate[0].Op != component.CommandSetFlag {
		t.Fatalf("plate commands not parsed")
	}

	opts.Physics.BoulderSize = 24
	spawner, err := SpawnEntity(w, Entity{Type: "boulder_spawner", W: 16, H: 16, Props: map[string]interface{}{"direction": "left"}}, opts)
	if err != nil {
		t.Fatalf("spawn boulder spawner: %v", err)
	}
	if sp, _ := ecs.Get(w, spawner, component.SpawnerComponent.Kind()); sp.Size != 24 || sp.Dir != -1 {
		t.Fatalf("spawner should take the configured boulder size, got %+v", sp)
	}
	sized, err := SpawnEntity(w, Entity{Type: "boulder_spawner", W: 16, H: 16, Props: map[string]interface{}{"size": 8.0}}, opts)
	if err != nil {
		t.Fatalf("spawn sized spawner: %v", err)
	}
	if sp, _ := ecs.Get(w, sized, component.SpawnerComponent.Kind()); sp.Size != 8 {
		t.Fatalf("size prop should win over the default, got %v", sp.Size)
	}

	before := w.Len()
	if _, err := SpawnEntity(w, Entity{Type: "switch", Props: map[string]interface{}{"on_activate": []interface{}{"explode:now"}}}, opts); !errors.Is(err, component.ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand, got %v", err)
	}
	if _, err := SpawnEntity(w, Entity{Type: "dragon"}, opts); !errors.Is(err, component.ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
	if w.Len() != before {
		t.Fatalf("failed spawns should not leave entities behind")
	}
}

func TestFlatLevelSettles(t *testing.T) {
	lvl, err := Load("flat.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	w := ecs.NewWorld()
	p := system.DefaultPhysics()
	if err := Spawn(w, lvl, Options{Physics: p}); err != nil {
		t.Fatalf("spawn: %v", err)
	}
	w.AddSystem(system.NewSimulation(p, nil))
	for i := 0; i < 300; i++ {
		w.Update()
	}
	player, _ := w.ByName("player")
	b, _ := w.Body(player)
	if b.Y != 188 || b.VY != 0 {
		t.Fatalf("player should rest on the floor, y=%v vy=%v", b.Y, b.VY)
	}
}
