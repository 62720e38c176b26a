package system

import (
	"github.com/shelsoloa/OverYonder--2016/prefabs"
)

// Physics holds the tunables shared by every stage of the simulation.
type Physics struct {
	Gravity    float64
	MaxGravity float64

	// SwimBuoyancy is the upward acceleration applied in water and
	// SwimFloatLimit the rise speed under which a swimmer settles on the
	// surface.
	SwimBuoyancy   float64
	SwimFloatLimit float64

	PlatformSpeed     float64
	PlatformZone      float64
	PlatformWaitTicks int

	ZoneWidth, ZoneHeight float64
	ZoneRefreshTicks      int

	BoulderSpeed      float64
	BoulderSpawnDelay int
	BoulderSize       float64

	// KnockbackForce is the push a hurtable body gets from an enemy or
	// projectile; HurtInvulnerableTicks is how long it is then left alone.
	KnockbackForce        float64
	HurtInvulnerableTicks int
}

// DefaultPhysics mirrors prefabs/physics.yaml.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:           0.2,
		MaxGravity:        6,
		SwimBuoyancy:      0.5,
		SwimFloatLimit:    2,
		PlatformSpeed:     1,
		PlatformZone:      2,
		PlatformWaitTicks: 60,
		ZoneWidth:         384,
		ZoneHeight:        240,
		ZoneRefreshTicks:  24,
		BoulderSpeed:      2.5,
		BoulderSpawnDelay: 80,
		BoulderSize:       32,

		KnockbackForce:        4,
		HurtInvulnerableTicks: 60,
	}
}

// PhysicsFromSpec fills unset spec fields from DefaultPhysics.
func PhysicsFromSpec(spec *prefabs.PhysicsSpec) Physics {
	p := DefaultPhysics()
	if spec == nil {
		return p
	}
	setFloat(&p.Gravity, spec.Gravity)
	setFloat(&p.MaxGravity, spec.MaxGravity)
	setFloat(&p.SwimBuoyancy, spec.Swim.Buoyancy)
	setFloat(&p.SwimFloatLimit, spec.Swim.FloatLimit)
	setFloat(&p.PlatformSpeed, spec.MovingPlatform.Speed)
	setFloat(&p.PlatformZone, spec.MovingPlatform.ZoneSize)
	setInt(&p.PlatformWaitTicks, spec.MovingPlatform.WaitTicks)
	setFloat(&p.ZoneWidth, spec.ActivityZone.Width)
	setFloat(&p.ZoneHeight, spec.ActivityZone.Height)
	setInt(&p.ZoneRefreshTicks, spec.ActivityZone.RefreshTicks)
	setFloat(&p.BoulderSpeed, spec.Boulder.Speed)
	setInt(&p.BoulderSpawnDelay, spec.Boulder.SpawnDelay)
	setFloat(&p.BoulderSize, spec.Boulder.Size)
	setFloat(&p.KnockbackForce, spec.Knockback.Force)
	setInt(&p.HurtInvulnerableTicks, spec.Knockback.InvulnerableTicks)
	return p
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
