// Package board abstracts the hardware the bubble level runs on. Each
// build target provides the same three peripherals as package-level
// variables:
//
//	Display — the 5x5 LED matrix
//	Sensors — the 3-axis accelerometer
//	Buttons — the A/B push-buttons, delivered as asynchronous events
//
// The real hardware backend is selected with a build tag (currently only
// the BBC micro:bit v2). Without a baremetal tag the simulator backend is
// compiled instead, which runs the exact same application in a terminal
// window. This avoids potentially long edit-flash-test cycles.
package board

import "errors"

// ErrSensorUnavailable is returned by Sensors.Update when the bus
// transaction does not complete (NACK, timeout, simulated fault). The
// previous sample stays valid; the next Update is the retry.
var ErrSensorUnavailable = errors.New("board: sensor unavailable")

// The matrix interface shared by all supported LED matrices.
type Matrix interface {
	// The matrix size in LEDs, rows then columns.
	Size() (rows, cols int16)

	// Turn a single LED on or off. Row 0 is the top edge of the board,
	// column 0 the left edge, as seen with the board's logo up.
	SetPixel(row, col int16, on bool)

	// Turn all LEDs off.
	Clear()

	// Push the current LED state to the hardware. Cheap; call it after
	// every batch of SetPixel/Clear calls.
	Display() error
}

// Key is a single hardware button.
type Key uint8

// List of all supported keys.
const (
	NoKey Key = iota
	KeyA
	KeyB
)

// Settings for the simulator. These can be modified at any time, but it
// is recommended to modify them before configuring any of the board
// peripherals. They have no effect on real hardware.
var Simulator = struct {
	// Gravity is the magnitude of the simulated gravity vector in mG.
	Gravity int32

	// TiltStep is how many mG of tilt one arrow key press adds.
	TiltStep int32

	// NoiseAmplitude is the peak fake sensor noise in mG, so programs
	// can be seen to deal with a wobbling reading. 0 disables it.
	NoiseAmplitude int32
}{
	Gravity:        1000,
	TiltStep:       50,
	NoiseAmplitude: 4,
}
