package component

import "github.com/jakecoffman/cp"

// OneWay is a platform that only blocks bodies landing on it from above.
type OneWay struct {
	// PassThrough disables the platform until Passer no longer overlaps it.
	PassThrough bool
	Passer      uint64
}

var OneWayComponent = NewComponent[OneWay]()

// MovingPlatform carries a rider between Start and End.
type MovingPlatform struct {
	Start, End cp.Vector

	Speed     float64 // distance per tick
	ZoneSize  float64 // height of the rider detection strip
	WaitTicks int

	Reverse   bool
	Waiting   bool
	WaitTimer int
	Riding    bool
	Rider     uint64
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()

// Wait pauses the platform for WaitTicks ticks.
func (m *MovingPlatform) Wait() {
	m.Waiting = true
	m.WaitTimer = m.WaitTicks
}
