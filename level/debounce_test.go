package level

import (
	"testing"
	"time"
)

// fakeClock drives a Debouncer without sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestDebouncer() (*Debouncer, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	d := NewDebouncer(0)
	d.now = func() time.Time { return clock.now }
	return d, clock
}

func TestDebouncerFirstPress(t *testing.T) {
	d, _ := newTestDebouncer()
	if !d.Accept(ButtonA) {
		t.Error("first press ever was not accepted")
	}
}

func TestDebouncerWindow(t *testing.T) {
	for _, tc := range []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"immediate bounce", 0, false},
		{"inside window", 50 * time.Millisecond, false},
		{"just inside window", 99 * time.Millisecond, false},
		{"exactly at window", 100 * time.Millisecond, true},
		{"past window", 150 * time.Millisecond, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, clock := newTestDebouncer()
			if !d.Accept(ButtonB) {
				t.Fatal("first press was not accepted")
			}
			clock.advance(tc.elapsed)
			if got := d.Accept(ButtonB); got != tc.want {
				t.Errorf("second press after %v: accepted=%v, expected %v", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestDebouncerDiscardsSilently(t *testing.T) {
	// Rejected edges must not extend the cooldown: a bounce at 50ms does
	// not push the next accept past 100ms.
	d, clock := newTestDebouncer()
	d.Accept(ButtonA)
	clock.advance(50 * time.Millisecond)
	if d.Accept(ButtonA) {
		t.Fatal("press inside cooldown was accepted")
	}
	clock.advance(50 * time.Millisecond)
	if !d.Accept(ButtonA) {
		t.Error("press at 100ms after the last accepted one was rejected")
	}
}

func TestDebouncerIndependentButtons(t *testing.T) {
	d, clock := newTestDebouncer()
	if !d.Accept(ButtonB) {
		t.Fatal("first B press was not accepted")
	}

	// A rapid burst on button A during B's cooldown.
	for i := 0; i < 5; i++ {
		clock.advance(10 * time.Millisecond)
		d.Accept(ButtonA)
	}

	// B is still in cooldown at 50ms...
	if d.Accept(ButtonB) {
		t.Error("B press inside cooldown was accepted despite A burst")
	}
	// ...and out of it at 100ms, unaffected by A.
	clock.advance(50 * time.Millisecond)
	if !d.Accept(ButtonB) {
		t.Error("B press after cooldown was rejected, A burst leaked into B's state")
	}
}
