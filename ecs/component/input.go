package component

// Input is one frame of player intent, filled by the game loop before the
// tick runs.
type Input struct {
	MoveX float64
	Up    bool
	Down  bool

	Jump         bool
	JumpPressed  bool
	JumpReleased bool

	DashPressed     bool
	InteractPressed bool
}

var InputComponent = NewComponent[Input]()
