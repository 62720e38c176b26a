package component

// ControlContext is what a Controller may ask of the world while deciding
// its intent for the tick.
type ControlContext interface {
	Tick() uint64
	SolidAbove() bool
	SolidBelow() bool
	SolidLeft() bool
	SolidRight() bool
	// Touching returns the first active body of group g overlapping the
	// controlled body, if any.
	Touching(g Group) (*Body, bool)
	// DropThrough lets the body fall through any platform directly below it.
	// It reports whether a platform was released.
	DropThrough() bool
	// Interact activates switches next to the body. It reports whether any
	// switch fired.
	Interact() bool
	// Input returns the body's input component, or nil.
	Input() *Input
}

// Controller produces an entity's desired velocity before the kinematic step.
// Player input, AI patterns and scripts all implement it.
type Controller interface {
	Control(ctx ControlContext, b *Body, k *Kinematic)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx ControlContext, b *Body, k *Kinematic)

func (f ControllerFunc) Control(ctx ControlContext, b *Body, k *Kinematic) {
	f(ctx, b, k)
}

// Behavior holds an entity's controller handle.
type Behavior struct {
	Controller Controller
}

var BehaviorComponent = NewComponent[Behavior]()
