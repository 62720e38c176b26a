package common

// Logical screen size of the debug viewer. The window scales it up.
const (
	BaseWidth  = 384
	BaseHeight = 240
	Scale      = 3
)
