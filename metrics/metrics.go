// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
)

// Totals is a plain copy of the counters, for log summaries.
type Totals struct {
	Ticks        uint64
	Steps        uint64
	Collisions   uint64
	Reverts      uint64
	PlatformWait uint64
	Commands     uint64
	Entities     int
}

// Collector observes a simulation and keeps Prometheus metrics for it. Every
// metric carries the run id as a const label.
type Collector struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	steps        prometheus.Counter
	collisions   prometheus.Counter
	reverts      prometheus.Counter
	platformWait prometheus.Counter
	commands     *prometheus.CounterVec
	entities     prometheus.Gauge

	mu     sync.Mutex
	totals Totals
}

var _ system.Observer = (*Collector)(nil)

func NewCollector(runID string) *Collector {
	labels := prometheus.Labels{"run": runID}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "sim",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}
	c := &Collector{
		registry:     prometheus.NewRegistry(),
		ticks:        counter("ticks_total", "Completed simulation ticks."),
		steps:        counter("kinematic_steps_total", "Kinematic steps run."),
		collisions:   counter("collisions_total", "Kinematic steps whose move hit at least one solid."),
		reverts:      counter("corner_reverts_total", "Steps that fell back to the previous position in a corner."),
		platformWait: counter("platform_waits_total", "Times a moving platform entered its wait state."),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "sim",
			Name:        "commands_total",
			Help:        "Trigger commands dispatched, by op.",
			ConstLabels: labels,
		}, []string{"op"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "sim",
			Name:        "entities",
			Help:        "Live entities after the last tick.",
			ConstLabels: labels,
		}),
	}
	c.registry.MustRegister(c.ticks, c.steps, c.collisions, c.reverts, c.platformWait, c.commands, c.entities)
	return c
}

func (c *Collector) Stepped(e ecs.Entity, b *component.Body, res system.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps.Inc()
	c.totals.Steps++
	if res.Occurred {
		c.collisions.Inc()
		c.totals.Collisions++
	}
	if res.Reverted {
		c.reverts.Inc()
		c.totals.Reverts++
	}
}

func (c *Collector) PlatformWaiting(e ecs.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.platformWait.Inc()
	c.totals.PlatformWait++
}

func (c *Collector) CommandDispatched(cmd component.Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands.WithLabelValues(cmd.Op.String()).Inc()
	c.totals.Commands++
}

func (c *Collector) TickDone(w *ecs.World) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks.Inc()
	c.totals.Ticks++
	c.totals.Entities = w.Len()
	c.entities.Set(float64(c.totals.Entities))
}

func (c *Collector) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
