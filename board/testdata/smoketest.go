package main

import (
	"bubblelevel/board"
)

func main() {
	// Verify board name constant.
	var _ string = board.Name

	// Assert that board.Display hands out a matrix.
	var _ board.Matrix = board.Display.Configure()

	// Assert that board.Sensors uses the usual interface.
	var _ interface {
		Configure() error
		Update() error
		Acceleration() (x, y, z int32)
	} = board.Sensors

	// Assert that board.Buttons uses the usual interface.
	var _ interface {
		Configure(onPress func(board.Key))
	} = board.Buttons
}
