// Package level implements the control core of a digital bubble level: a
// 3-axis acceleration sample is quantized into a single cell of a 5x5 LED
// grid, with two push-buttons switching between a coarse and a fine
// quantization scale.
//
// The package is pure Go with no hardware imports, so it runs (and is
// tested) on the host as well as on a microcontroller. Hardware access
// goes through the Accelerometer and Renderer interfaces, which the board
// package implements per build target.
package level

// GridSize is the width and height of the LED matrix.
const GridSize = 5

// center is the grid index a zero-tilt reading maps to.
const center = GridSize / 2

// Sample is one accelerometer reading in milli-g (1000 mG ~ 9.8 m/s²).
// A board lying flat reads roughly (0, 0, +1000).
type Sample struct {
	X, Y, Z int32
}

// Mode selects the quantization scale: how many mG of tilt move the
// bubble by one LED.
type Mode uint8

const (
	// Coarse is the power-up mode: one LED per 250 mG.
	Coarse Mode = iota
	// Fine resolves small tilts: one LED per 25 mG.
	Fine
)

// BinWidth returns the acceleration range represented by one LED step.
func (m Mode) BinWidth() int32 {
	if m == Fine {
		return fineBinWidth
	}
	return coarseBinWidth
}

func (m Mode) String() string {
	if m == Fine {
		return "fine"
	}
	return "coarse"
}

const (
	coarseBinWidth = 250 // mG per LED
	fineBinWidth   = 25  // mG per LED
)

// Orientation says which way the LED face of the board is pointing.
type Orientation uint8

const (
	Upright Orientation = iota
	Inverted
)

// Button identifies one of the two mode-select push-buttons.
type Button uint8

const (
	ButtonA Button = iota // selects Coarse
	ButtonB               // selects Fine
	numButtons
)

// Position is a single lit cell of the grid, or Blank for no lit cell.
// Row and Col are in [0, GridSize-1] for any non-blank position.
type Position struct {
	Row, Col int
}

// Blank is the "no LED lit" sentinel, rendered as an all-off matrix.
var Blank = Position{-1, -1}

// IsBlank reports whether p is the blank sentinel.
func (p Position) IsBlank() bool {
	return p.Row < 0 || p.Col < 0
}

// Accelerometer is the acceleration source consumed by the control loop.
// Update performs one bus transaction and may fail (NACK, timeout), in
// which case the loop skips the tick and retries naturally on the next
// one. Acceleration returns the sample captured by the last successful
// Update, in mG.
type Accelerometer interface {
	Update() error
	Acceleration() (x, y, z int32)
}

// Renderer drives the physical LED matrix. It is called at most once per
// tick, with either one lit cell or Blank, and is assumed to be
// idempotent when called with the same value repeatedly.
type Renderer interface {
	Render(Position)
}

// Config carries the hardware mounting conventions. The zero value is
// the neutral convention: positive X tilts the bubble toward higher
// columns, positive Y toward higher rows, and positive Z means the LED
// face points up.
type Config struct {
	// InvertX and InvertY flip the tilt direction per axis so that
	// tilting the board toward an edge lights the LED nearest that edge.
	// Which flips are needed depends on how the sensor is mounted; the
	// direction is validated empirically against the physical device.
	InvertX bool
	InvertY bool

	// InvertZ flips the face-up reference for boards whose sensor Z axis
	// points out of the back.
	InvertZ bool

	// ZDeadZone is the band (in mG) around zero in which the Z reading
	// is not trusted to decide orientation, so a board held vertically
	// does not flicker between upright and inverted. 0 means
	// DefaultZDeadZone.
	ZDeadZone int32
}

// DefaultZDeadZone is one coarse bin worth of acceleration.
const DefaultZDeadZone = 250
