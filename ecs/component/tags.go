package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// RiderTag marks bodies that moving platforms carry.
type RiderTag struct{}

var RiderTagComponent = NewComponent[RiderTag]()
