package level

import "time"

// TickInterval is the fixed control loop cadence: 5 readings per second.
const TickInterval = 200 * time.Millisecond

// Loop ties the whole system together: once per tick it reads the
// accelerometer, gates on orientation, maps the sample to a grid cell in
// the active mode and hands the result to the renderer. Button presses
// arrive asynchronously through Press, typically from an interrupt
// handler, and take effect on the next tick.
type Loop struct {
	accel    Accelerometer
	out      Renderer
	cfg      Config
	mode     ModeSetting
	debounce *Debouncer
	interval time.Duration
}

// NewLoop returns a loop reading from accel and drawing to out, starting
// in Coarse mode.
func NewLoop(accel Accelerometer, out Renderer, cfg Config) *Loop {
	return &Loop{
		accel:    accel,
		out:      out,
		cfg:      cfg,
		debounce: NewDebouncer(DebounceWindow),
		interval: TickInterval,
	}
}

// Mode returns the current resolution mode.
func (l *Loop) Mode() Mode {
	return l.mode.Current()
}

// Press is the entry point for a raw button edge. It is short and
// bounded so it may be called from an interrupt handler: one debounce
// check and, if the edge is accepted, one atomic mode store. Button A
// selects Coarse, button B selects Fine; both are idempotent sets, not
// toggles, so holding or mashing a button is harmless.
func (l *Loop) Press(b Button) {
	if !l.debounce.Accept(b) {
		return
	}
	switch b {
	case ButtonA:
		l.mode.SetCoarse()
	case ButtonB:
		l.mode.SetFine()
	}
}

// Tick runs one read → gate → map → render pass. When the sensor read
// fails the tick is a no-op: the previous display state stays on screen
// and the next tick is the retry.
func (l *Loop) Tick() {
	if err := l.accel.Update(); err != nil {
		return
	}
	x, y, z := l.accel.Acceleration()
	s := Sample{X: x, Y: y, Z: z}
	if l.cfg.Orientation(s) == Inverted {
		l.out.Render(Blank)
		return
	}
	l.out.Render(l.cfg.Position(s, l.mode.Current()))
}

// Run ticks at the fixed cadence until stop is closed. A nil stop
// channel runs forever, which is the normal shape on a microcontroller.
// The cadence is deadline-based: a slow tick eats into its own sleep
// instead of delaying every following tick.
func (l *Loop) Run(stop <-chan struct{}) {
	next := time.Now()
	for {
		l.Tick()
		next = next.Add(l.interval)
		wait := time.Until(next)
		if wait <= 0 {
			// The tick overran the whole interval. Start a fresh
			// deadline instead of trying to catch up with back-to-back
			// ticks.
			next = time.Now()
			continue
		}
		if stop == nil {
			time.Sleep(wait)
			continue
		}
		select {
		case <-stop:
			return
		case <-time.After(wait):
		}
	}
}
