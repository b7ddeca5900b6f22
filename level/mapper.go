package level

// Position quantizes the horizontal-plane acceleration of a sample into
// a single grid cell. The mapping is pure: it never fails and never
// returns Blank. Tilts past the outer bins clamp to the edge cell, which
// simply stays lit for any larger tilt in that direction.
func (c Config) Position(s Sample, m Mode) Position {
	x, y := s.X, s.Y
	if c.InvertX {
		x = -x
	}
	if c.InvertY {
		y = -y
	}
	bin := m.BinWidth()
	return Position{
		Row: clampIndex(quantize(y, bin) + center),
		Col: clampIndex(quantize(x, bin) + center),
	}
}

// quantize rounds v/bin to the nearest integer, with halves rounding
// away from zero so a reading exactly on a bin boundary moves outward
// symmetrically in both directions.
func quantize(v, bin int32) int {
	half := bin / 2
	if v < 0 {
		return -int((-v + half) / bin)
	}
	return int((v + half) / bin)
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > GridSize-1 {
		return GridSize - 1
	}
	return i
}
