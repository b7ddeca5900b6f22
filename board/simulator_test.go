package board

import "testing"

func TestClampTilt(t *testing.T) {
	for _, tc := range []struct {
		in, want int32
	}{
		{0, 0},
		{1999, 1999},
		{2000, 2000},
		{2001, 2000},
		{5000, 2000},
		{-1999, -1999},
		{-2000, -2000},
		{-2001, -2000},
	} {
		if got := clampTilt(tc.in); got != tc.want {
			t.Errorf("clampTilt(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestNoiseAmplitude(t *testing.T) {
	amp := Simulator.NoiseAmplitude
	if amp <= 0 {
		t.Skip("noise disabled")
	}
	for i := 0; i < 1000; i++ {
		n := noise()
		if n < -amp || n > amp {
			t.Fatalf("noise sample %d outside ±%d", n, amp)
		}
	}
}

func TestSimMatrixGrid(t *testing.T) {
	// The grid state can be exercised without a terminal: SetPixel and
	// Clear only touch the frame buffer, drawing happens in Display.
	var m simMatrix
	m.SetPixel(2, 3, true)
	if !sim.grid[2][3] {
		t.Error("SetPixel did not set the cell")
	}
	m.SetPixel(2, 3, false)
	if sim.grid[2][3] {
		t.Error("SetPixel did not clear the cell")
	}
	m.SetPixel(0, 0, true)
	m.SetPixel(4, 4, true)
	m.Clear()
	if sim.grid != ([5][5]bool{}) {
		t.Error("Clear left cells set")
	}
}
