package level

import "sync/atomic"

// ModeSetting holds the active resolution mode. It is the only state
// shared between the tick loop and the button interrupt path, so it is
// stored as a single atomic word: the interrupt side does one atomic
// store, the tick side one atomic load, and no tearing is possible.
//
// The zero value is ready to use and reads as Coarse, the power-up mode.
type ModeSetting struct {
	v atomic.Uint32
}

// Current returns the active mode.
func (m *ModeSetting) Current() Mode {
	return Mode(m.v.Load())
}

// SetCoarse selects coarse resolution. Idempotent.
func (m *ModeSetting) SetCoarse() {
	m.v.Store(uint32(Coarse))
}

// SetFine selects fine resolution. Idempotent.
func (m *ModeSetting) SetFine() {
	m.v.Store(uint32(Fine))
}
