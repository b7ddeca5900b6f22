package level

// Orientation classifies a sample as Upright or Inverted from the sign
// of its Z component. Readings inside the dead zone count as Upright: a
// board held vertically keeps showing the bubble instead of flickering
// between blank and lit. No extra hysteresis is needed on top of this,
// the 200ms tick cadence already smooths rapid flips.
func (c Config) Orientation(s Sample) Orientation {
	z := s.Z
	if c.InvertZ {
		z = -z
	}
	dead := c.ZDeadZone
	if dead == 0 {
		dead = DefaultZDeadZone
	}
	if z < -dead {
		return Inverted
	}
	return Upright
}
