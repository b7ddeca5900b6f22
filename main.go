// A digital bubble level: the tilt of the board is shown as a single lit
// LED on the 5x5 matrix, with button A selecting coarse resolution
// (250 mG per LED) and button B fine resolution (25 mG per LED). Turning
// the board face down blanks the display.
//
// The same source runs on the BBC micro:bit v2 and, without a target
// flag, in the terminal simulator:
//
//	tinygo flash -target=microbit-v2 .
//	go run .
package main

import (
	"time"

	"bubblelevel/board"
	"bubblelevel/level"
)

func main() {
	matrix := board.Display.Configure()

	// A persistently absent sensor leaves the display blank, it never
	// crashes the program.
	for board.Sensors.Configure() != nil {
		println("level: accelerometer not responding, retrying")
		time.Sleep(time.Second)
	}

	loop := level.NewLoop(board.Sensors, &matrixRenderer{matrix: matrix}, configFor(board.Name))
	board.Buttons.Configure(func(k board.Key) {
		switch k {
		case board.KeyA:
			loop.Press(level.ButtonA)
		case board.KeyB:
			loop.Press(level.ButtonB)
		}
	})

	loop.Run(nil)
}

// configFor returns the mounting convention for a board. The zero config
// is the neutral convention, which is what the simulator reports.
func configFor(name string) level.Config {
	var cfg level.Config
	if name == "microbit-v2" {
		// The LSM303AGR on this board has its X axis pointing against
		// the matrix column direction and its Z axis out of the back, so
		// a face-up board reads z ≈ -1000 mG. Both flips validated
		// against the physical unit.
		cfg.InvertX = true
		cfg.InvertZ = true
	}
	return cfg
}

// matrixRenderer drives a board matrix from bubble positions: all LEDs
// off except the bubble cell, or everything off for Blank.
type matrixRenderer struct {
	matrix board.Matrix
}

func (r *matrixRenderer) Render(p level.Position) {
	r.matrix.Clear()
	if !p.IsBlank() {
		r.matrix.SetPixel(int16(p.Row), int16(p.Col), true)
	}
	// Render has no error channel; a failed refresh is retried by the
	// next tick's frame.
	_ = r.matrix.Display()
}
