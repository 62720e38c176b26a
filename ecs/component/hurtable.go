package component

// Hurtable marks a body that enemies and projectiles knock back. While
// Invulnerable is above zero further hits are ignored.
type Hurtable struct {
	Invulnerable int
}

var HurtableComponent = NewComponent[Hurtable]()
