package component

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadCommand = errors.New("component: bad command")

// CommandOp is an action a trigger can request. Commands are resolved by a
// dispatch table after the tick pass.
type CommandOp uint8

const (
	CommandNone CommandOp = iota
	CommandOpenDoor
	CommandCloseDoor
	CommandSetFlag
	CommandClearFlag
)

var commandNames = map[string]CommandOp{
	"open_door":  CommandOpenDoor,
	"close_door": CommandCloseDoor,
	"set_flag":   CommandSetFlag,
	"clear_flag": CommandClearFlag,
}

func (op CommandOp) String() string {
	for name, v := range commandNames {
		if v == op {
			return name
		}
	}
	return "none"
}

// Command is a single trigger action, e.g. OpenDoor("gate_a").
type Command struct {
	Op     CommandOp
	Target string
}

func OpenDoor(name string) Command  { return Command{Op: CommandOpenDoor, Target: name} }
func CloseDoor(name string) Command { return Command{Op: CommandCloseDoor, Target: name} }
func SetFlag(name string) Command   { return Command{Op: CommandSetFlag, Target: name} }
func ClearFlag(name string) Command { return Command{Op: CommandClearFlag, Target: name} }

func (c Command) String() string {
	return c.Op.String() + ":" + c.Target
}

// ParseCommand reads the "op:target" form used in level files.
func ParseCommand(s string) (Command, error) {
	op, target, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || target == "" {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, s)
	}
	v, ok := commandNames[strings.ToLower(op)]
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown op %q", ErrBadCommand, op)
	}
	return Command{Op: v, Target: target}, nil
}

// Switch fires its commands once when activated.
type Switch struct {
	OnActivate []Command
	Activated  bool
}

var SwitchComponent = NewComponent[Switch]()

// PressurePlate fires OnActivate when something lands on it and
// OnDeactivate when it is released.
type PressurePlate struct {
	OnActivate   []Command
	OnDeactivate []Command
	Pressed      bool
}

var PressurePlateComponent = NewComponent[PressurePlate]()
