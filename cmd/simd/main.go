// Command simd runs a level headless for a fixed number of ticks and logs a
// summary. With -metrics it also serves Prometheus metrics for the run.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
	"github.com/shelsoloa/OverYonder--2016/ecs/system"
	"github.com/shelsoloa/OverYonder--2016/levels"
	"github.com/shelsoloa/OverYonder--2016/metrics"
	"github.com/shelsoloa/OverYonder--2016/prefabs"
)

func main() {
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	metricsAddr := flag.String("metrics", "", "serve /metrics on this address, e.g. :2112")
	hold := flag.Bool("hold", false, "keep serving metrics after the run finishes")
	script := flag.String("player-script", "", "tengo script that drives the player (prefabs/scripts)")
	flag.Parse()

	runID := uuid.NewString()
	log.SetPrefix("simd: ")
	log.Printf("run %s: level=%s ticks=%d", runID, *levelName, *ticks)

	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		log.Fatal(err)
	}
	physics := system.PhysicsFromSpec(spec)

	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}

	collector := metrics.NewCollector(runID)
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		go func() {
			log.Printf("metrics on %s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	opts := levels.Options{Physics: physics}
	if *script != "" {
		ctrl, err := system.NewScriptController(*script)
		if err != nil {
			log.Fatal(err)
		}
		opts.Player = ctrl
	}

	w := ecs.NewWorld()
	w.AddSystem(system.NewSimulation(physics, collector))
	w.AddSystem(system.NewCommandDispatcher(collector))
	w.AddSystem(system.NewActivityZone(physics))
	if err := levels.Spawn(w, lvl, opts); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		w.Update()
	}
	elapsed := time.Since(start)

	t := collector.Totals()
	log.Printf("run %s: %d ticks in %s (%.1fµs/tick)", runID, t.Ticks, elapsed, float64(elapsed.Microseconds())/float64(max(t.Ticks, 1)))
	log.Printf("run %s: steps=%d collisions=%d reverts=%d platform_waits=%d commands=%d entities=%d",
		runID, t.Steps, t.Collisions, t.Reverts, t.PlatformWait, t.Commands, t.Entities)
	for _, st := range w.SystemStats() {
		log.Printf("run %s: %-28s calls=%d mean=%s total=%s", runID, st.Name, st.Calls, st.Mean(), st.Total)
	}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if b, ok := w.Body(player); ok {
			log.Printf("run %s: player at (%.2f, %.2f) v=(%.2f, %.2f)", runID, b.X, b.Y, b.VX, b.VY)
		}
	}

	if *metricsAddr != "" && *hold {
		select {}
	}
}
