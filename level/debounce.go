package level

import "time"

// DebounceWindow is how long a button stays in cooldown after an
// accepted press. Mechanical bounce arrives well inside this window.
const DebounceWindow = 100 * time.Millisecond

// Debouncer converts bouncy, possibly-repeated press edges into at most
// one accepted event per window per button. There is no timer behind it:
// cooldown expiry is evaluated lazily when the next edge arrives, so no
// extra concurrent actor exists.
//
// Each button has independent state; a burst on one button does not
// disturb the other's cooldown. A Debouncer is not safe for concurrent
// calls with the same button, which matches the hardware contract that a
// button's interrupt handler is not re-entered while it is running.
type Debouncer struct {
	window time.Duration
	now    func() time.Time
	last   [numButtons]time.Time
}

// NewDebouncer returns a debouncer with the given cooldown window.
// A zero window means DebounceWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DebounceWindow
	}
	return &Debouncer{window: window, now: time.Now}
}

// Accept reports whether a press edge on b should take effect. The first
// edge ever seen for a button is always accepted; later edges are
// accepted only when at least the window has elapsed since the last
// accepted one. Rejected edges leave no trace: no queue, no counter.
func (d *Debouncer) Accept(b Button) bool {
	now := d.now()
	if !d.last[b].IsZero() && now.Sub(d.last[b]) < d.window {
		return false
	}
	d.last[b] = now
	return true
}
