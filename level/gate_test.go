package level

import "testing"

func TestOrientation(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		s    Sample
		want Orientation
	}{
		{"flat", Config{}, Sample{0, 0, 1000}, Upright},
		{"face down", Config{}, Sample{0, 0, -1000}, Inverted},
		{"face down while tilted", Config{}, Sample{700, -300, -900}, Inverted},
		{"vertical", Config{}, Sample{1000, 0, 0}, Upright},
		{"inside dead zone", Config{}, Sample{0, 0, -250}, Upright},
		{"just past dead zone", Config{}, Sample{0, 0, -251}, Inverted},
		{"custom dead zone", Config{ZDeadZone: 500}, Sample{0, 0, -400}, Upright},
		{"inverted z mounting", Config{InvertZ: true}, Sample{0, 0, 1000}, Inverted},
		{"inverted z mounting face down", Config{InvertZ: true}, Sample{0, 0, -1000}, Upright},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Orientation(tc.s); got != tc.want {
				t.Errorf("for %+v, expected orientation %d but got %d", tc.s, tc.want, got)
			}
		})
	}
}
