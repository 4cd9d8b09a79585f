package color

// ClampToSRGBGamut maps an out-of-gamut Oklab coordinate to the nearest
// representable color with the same lightness and hue. The achromatic
// point (L, 0, 0) is in gamut for any L in [0, 1], so the mapping
// bisects the chroma scale t over (L, t·A, t·B) and keeps the largest t
// that still converts to a valid linear sRGB triple. Coordinates that
// are already in gamut are returned unchanged; lightness at or beyond
// the ends of the scale saturates to white or black.
func (c Lab) ClampToSRGBGamut() Lab {
	// Resolution of the bisection in t. One part in 10⁵ of the chroma
	// range is well below a single 8-bit channel step.
	const epsilon = 1e-5

	if c.L >= 1 {
		return Lab{L: 1, Alpha: c.Alpha}
	}
	if c.L <= 0 {
		return Lab{L: 0, Alpha: c.Alpha}
	}
	if c.scaledInGamut(1) {
		return c
	}

	lo, hi := 0.0, 1.0
	for hi-lo > epsilon {
		t := (lo + hi) / 2
		if c.scaledInGamut(t) {
			lo = t
		} else {
			hi = t
		}
	}
	return Lab{
		L:     c.L,
		A:     float32(lo * float64(c.A)),
		B:     float32(lo * float64(c.B)),
		Alpha: c.Alpha,
	}
}

// scaledInGamut reports whether the coordinate with chroma scaled by t
// converts to linear sRGB channels within [0, 1].
func (c Lab) scaledInGamut(t float64) bool {
	s := Lab{
		L:     c.L,
		A:     float32(t * float64(c.A)),
		B:     float32(t * float64(c.B)),
		Alpha: c.Alpha,
	}.LinearRGB()
	return s.R >= 0 && s.R <= 1 &&
		s.G >= 0 && s.G <= 1 &&
		s.B >= 0 && s.B <= 1
}
