//go:build microbit_v2

package board

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/lsm303agr"
	"tinygo.org/x/drivers/microbitmatrix"
)

const (
	// The board name, as passed to TinyGo in the "-target" flag.
	Name = "microbit-v2"
)

var (
	Display = mainDisplay{}
	Sensors = &accelSensors{}
	Buttons = &buttonsConfig{}
)

type mainDisplay struct{}

// Configure sets up the on-board 5x5 LED matrix.
//
// The matrix is row-multiplexed: the driver lights one row at a time, so
// it has to be rescanned continuously for the image to appear steady. A
// background goroutine does the scanning; SetPixel and Clear only touch
// the driver's frame buffer.
func (d mainDisplay) Configure() Matrix {
	m := &matrixDevice{dev: microbitmatrix.New()}
	m.dev.Configure(microbitmatrix.Config{})
	m.dev.ClearDisplay()
	go func() {
		for {
			m.dev.Display()
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return m
}

type matrixDevice struct {
	dev microbitmatrix.Device
}

var ledOn = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (m *matrixDevice) Size() (rows, cols int16) {
	return 5, 5
}

func (m *matrixDevice) SetPixel(row, col int16, on bool) {
	c := color.RGBA{}
	if on {
		c = ledOn
	}
	m.dev.SetPixel(col, row, c)
}

func (m *matrixDevice) Clear() {
	m.dev.ClearDisplay()
}

func (m *matrixDevice) Display() error {
	// Nothing to do here: the scan goroutine pushes the frame buffer out
	// continuously.
	return nil
}

// State for the on-board LSM303AGR accelerometer.
type accelSensors struct {
	dev     lsm303agr.Device
	x, y, z int32
}

// Configure initializes the internal I2C bus and the accelerometer:
// 50Hz output data rate, ±2g range. Returns ErrSensorUnavailable if the
// sensor does not answer on the bus.
func (s *accelSensors) Configure() error {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return err
	}

	s.dev = lsm303agr.New(i2c)
	if !s.dev.Connected() {
		return ErrSensorUnavailable
	}
	return s.dev.Configure(lsm303agr.Configuration{
		AccelPowerMode: lsm303agr.ACCEL_POWER_NORMAL,
		AccelRange:     lsm303agr.ACCEL_RANGE_2G,
		AccelDataRate:  lsm303agr.ACCEL_DATARATE_50HZ,
	})
}

// Update reads a fresh sample from the accelerometer over I2C.
func (s *accelSensors) Update() error {
	x, y, z, err := s.dev.ReadAcceleration()
	if err != nil {
		return err
	}
	// The driver reports µg, the control core works in mG.
	s.x = x / 1000
	s.y = y / 1000
	s.z = z / 1000
	return nil
}

// Acceleration returns the sample captured by the last successful
// Update, in mG.
func (s *accelSensors) Acceleration() (x, y, z int32) {
	return s.x, s.y, s.z
}

// State for the A and B push-buttons.
type buttonsConfig struct {
	onPress func(Key)
}

// Configure wires the two buttons to pin-change interrupts. onPress runs
// in interrupt context on every falling edge, bounces included, so it
// must be short and bounded; debouncing is the caller's job.
func (b *buttonsConfig) Configure(onPress func(Key)) {
	b.onPress = onPress

	// The board has external pull-ups; a press pulls the pin low.
	machine.BUTTONA.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.BUTTONB.Configure(machine.PinConfig{Mode: machine.PinInput})
	machine.BUTTONA.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		b.onPress(KeyA)
	})
	machine.BUTTONB.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		b.onPress(KeyB)
	})
}
