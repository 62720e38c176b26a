package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
)

func counterValue(t *testing.T, c *Collector, name string) float64 {
	t.Helper()
	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				total += m.GetCounter().GetValue()
			} else if m.GetGauge() != nil {
				total += m.GetGauge().GetValue()
			}
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestCollectorCounts(t *testing.T) {
	c := NewCollector("test-run")
	w := ecs.NewWorld()
	e := w.CreateEntity()
	b := component.NewBody(component.GroupPlayer, 0, 0, 8, 8)

	c.Stepped(e, b, system.Resolution{})
	c.Stepped(e, b, system.Resolution{Occurred: true})
	c.Stepped(e, b, system.Resolution{Occurred: true, Reverted: true})
	c.PlatformWaiting(e)
	c.CommandDispatched(component.OpenDoor("gate"))
	c.CommandDispatched(component.SetFlag("lever"))
	c.TickDone(w)

	tests := []struct {
		name string
		want float64
	}{
		{"sim_kinematic_steps_total", 3},
		{"sim_collisions_total", 2},
		{"sim_corner_reverts_total", 1},
		{"sim_platform_waits_total", 1},
		{"sim_commands_total", 2},
		{"sim_ticks_total", 1},
		{"sim_entities", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := counterValue(t, c, tt.name); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	totals := c.Totals()
	if totals.Steps != 3 || totals.Collisions != 2 || totals.Commands != 2 || totals.Entities != 1 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestCollectorDrivesSimulation(t *testing.T) {
	c := NewCollector("sim")
	w := ecs.NewWorld()
	floor := w.CreateEntity()
	fb := component.NewBody(component.GroupSolid, 0, 20, 100, 10)
	fb.Solid = true
	if err := ecs.Add(w, floor, component.BodyComponent.Kind(), fb); err != nil {
		t.Fatalf("add floor: %v", err)
	}
	box := w.CreateEntity()
	if err := ecs.Add(w, box, component.BodyComponent.Kind(), component.NewBody(component.GroupWeight, 0, 11, 8, 8)); err != nil {
		t.Fatalf("add box: %v", err)
	}
	if err := ecs.Add(w, box, component.KinematicComponent.Kind(), component.NewKinematic()); err != nil {
		t.Fatalf("add kinematic: %v", err)
	}
	w.AddSystem(system.NewSimulation(system.DefaultPhysics(), c))

	for i := 0; i < 20; i++ {
		w.Update()
	}
	totals := c.Totals()
	if totals.Ticks != 20 || totals.Steps != 20 {
		t.Fatalf("expected 20 ticks and steps, got %+v", totals)
	}
	if totals.Collisions == 0 {
		t.Fatalf("expected the falling box to land, got %+v", totals)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector("http")
	c.TickDone(ecs.NewWorld())

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `sim_ticks_total{run="http"} 1`) {
		t.Fatalf("metrics output missing tick counter:\n%s", body)
	}
}
