//go:build !baremetal

package board

// The simulated board exists for testing locally without flashing real
// hardware. It draws the 5x5 matrix in the terminal and turns the
// keyboard into the missing physics:
//
//	arrow keys  tilt the virtual board (TiltStep mG per press)
//	0           recenter
//	i           flip the board upside down
//	a, b        the two push-buttons (key repeat makes a decent bounce)
//	x           toggle a sensor fault
//	q, Esc      quit
//
// Button events are delivered from the terminal event goroutine, so they
// arrive asynchronously to the control loop just like pin interrupts do
// on hardware.

import (
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	// This is the special name "simulator" for the simulator.
	Name = "simulator"
)

var (
	Display = mainDisplay{}
	Sensors = &simSensors{}
	Buttons = &buttonsConfig{}
)

// maxTilt matches the ±2g range the hardware accelerometer is configured
// for.
const maxTilt = 2000

var sim = &simState{zSign: 1}

type simState struct {
	mu           sync.Mutex
	screen       tcell.Screen
	tiltX, tiltY int32
	zSign        int32
	faulty       bool
	grid         [5][5]bool
	onPress      func(Key)
}

var simStart sync.Once

// Ensure the terminal UI is running, starting it if necessary. Every
// peripheral Configure calls this, so the application doesn't have to
// care which peripheral it configures first.
func startScreen() {
	simStart.Do(func() {
		screen, err := tcell.NewScreen()
		if err == nil {
			err = screen.Init()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not start simulator screen:", err)
			os.Exit(1)
		}
		screen.HideCursor()
		sim.screen = screen
		go simListenEvents()
		sim.draw()
	})
}

// Goroutine that listens for keyboard events and translates them to
// tilt changes and button presses.
func simListenEvents() {
	for {
		switch ev := sim.screen.PollEvent().(type) {
		case *tcell.EventResize:
			sim.screen.Sync()
			sim.draw()
		case *tcell.EventKey:
			var press Key
			sim.mu.Lock()
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				sim.quitLocked()
			case tcell.KeyUp:
				sim.tiltY = clampTilt(sim.tiltY - Simulator.TiltStep)
			case tcell.KeyDown:
				sim.tiltY = clampTilt(sim.tiltY + Simulator.TiltStep)
			case tcell.KeyLeft:
				sim.tiltX = clampTilt(sim.tiltX - Simulator.TiltStep)
			case tcell.KeyRight:
				sim.tiltX = clampTilt(sim.tiltX + Simulator.TiltStep)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					sim.quitLocked()
				case '0':
					sim.tiltX, sim.tiltY = 0, 0
				case 'i':
					sim.zSign = -sim.zSign
				case 'x':
					sim.faulty = !sim.faulty
				case 'a':
					press = KeyA
				case 'b':
					press = KeyB
				}
			}
			onPress := sim.onPress
			sim.mu.Unlock()
			if press != NoKey && onPress != nil {
				onPress(press)
			}
			sim.draw()
		}
	}
}

// quitLocked restores the terminal and exits the process, like closing
// the window of a graphical simulator would.
func (s *simState) quitLocked() {
	s.screen.Fini()
	os.Exit(0)
}

func clampTilt(v int32) int32 {
	if v < -maxTilt {
		return -maxTilt
	}
	if v > maxTilt {
		return maxTilt
	}
	return v
}

var (
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLEDOn  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLEDOff = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFault  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// draw repaints the whole simulator screen from the current state.
func (s *simState) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	writeText(1, 0, styleStatus, "bubble level simulator")

	writeText(1, 1, styleFrame, "┌───────────┐")
	for row := 0; row < 5; row++ {
		writeText(1, 2+row, styleFrame, "│")
		writeText(13, 2+row, styleFrame, "│")
		for col := 0; col < 5; col++ {
			r, style := '·', styleLEDOff
			if s.grid[row][col] {
				r, style = '●', styleLEDOn
			}
			s.screen.SetContent(3+col*2, 2+row, r, nil, style)
		}
	}
	writeText(1, 7, styleFrame, "└───────────┘")

	face := "face up"
	if s.zSign < 0 {
		face = "face down"
	}
	writeText(1, 8, styleStatus, fmt.Sprintf("tilt x %+5d mG  y %+5d mG  %s", s.tiltX, s.tiltY, face))
	if s.faulty {
		writeText(1, 9, styleFault, "sensor fault (press x to clear)")
	} else {
		writeText(1, 9, styleStatus, "sensor ok")
	}
	writeText(1, 11, styleStatus, "arrows tilt  0 recenter  i flip  a/b buttons  x fault  q quit")

	s.screen.Show()
}

func writeText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		sim.screen.SetContent(x+i, y, r, nil, style)
	}
}

type mainDisplay struct{}

// Configure returns the simulated 5x5 matrix ready to draw on.
func (d mainDisplay) Configure() Matrix {
	startScreen()
	return simMatrix{}
}

type simMatrix struct{}

func (m simMatrix) Size() (rows, cols int16) {
	return 5, 5
}

func (m simMatrix) SetPixel(row, col int16, on bool) {
	sim.mu.Lock()
	sim.grid[row][col] = on
	sim.mu.Unlock()
}

func (m simMatrix) Clear() {
	sim.mu.Lock()
	sim.grid = [5][5]bool{}
	sim.mu.Unlock()
}

func (m simMatrix) Display() error {
	sim.draw()
	return nil
}

// The simulated accelerometer: gravity plus the keyboard-controlled tilt
// vector, with a little fake noise so programs can be seen to deal with
// a wobbling reading.
type simSensors struct {
	x, y, z int32
}

func (s *simSensors) Configure() error {
	startScreen()
	return nil
}

func (s *simSensors) Update() error {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	if sim.faulty {
		return ErrSensorUnavailable
	}
	s.x = sim.tiltX + noise()
	s.y = sim.tiltY + noise()
	s.z = sim.zSign*Simulator.Gravity + noise()
	return nil
}

func (s *simSensors) Acceleration() (x, y, z int32) {
	return s.x, s.y, s.z
}

func noise() int32 {
	amp := Simulator.NoiseAmplitude
	if amp <= 0 {
		return 0
	}
	return rand.Int31n(2*amp+1) - amp
}

type buttonsConfig struct{}

// Configure registers the handler that receives button events. The
// handler runs on the terminal event goroutine.
func (b *buttonsConfig) Configure(onPress func(Key)) {
	startScreen()
	sim.mu.Lock()
	sim.onPress = onPress
	sim.mu.Unlock()
}
