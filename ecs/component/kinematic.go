package component

// MoveMode selects how velocity is composed before integration.
type MoveMode uint8

const (
	MoveStandard MoveMode = iota
	MoveDashing
	MoveSwimming
	MoveClimbing
)

func (m MoveMode) String() string {
	switch m {
	case MoveStandard:
		return "standard"
	case MoveDashing:
		return "dashing"
	case MoveSwimming:
		return "swimming"
	case MoveClimbing:
		return "climbing"
	}
	return "unknown"
}

// Kinematic marks a body as moved by the kinematic step each tick.
type Kinematic struct {
	Mode MoveMode
	// GravityScale multiplies world gravity. 1.0 = normal gravity, 0.0 = none.
	GravityScale float64
	// SurfaceY is the water surface while swimming.
	SurfaceY float64

	// Results of the last step.
	Collided bool
	Reverted bool
}

var KinematicComponent = NewComponent[Kinematic]()

// NewKinematic returns a standard-gravity kinematic component.
func NewKinematic() *Kinematic {
	return &Kinematic{GravityScale: 1}
}
