package component

// Roller keeps a constant horizontal speed and removes itself once it stops.
type Roller struct {
	Speed float64
	Dir   float64
}

var RollerComponent = NewComponent[Roller]()

// Spawner periodically emits a roller beside itself.
type Spawner struct {
	Delay int
	Timer int
	Dir   float64
	Speed float64
	Size  float64
}

var SpawnerComponent = NewComponent[Spawner]()
