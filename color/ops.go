package color

import "honnef.co/go/stuff/math/mathutil"

// Blend interpolates from c to other in the polar Oklab form. t maps 0
// to c and 1 to other; lightness, chroma, hue, and alpha interpolate
// independently. t is not restricted to [0, 1]: values outside it
// extrapolate along the same line. Results that leave the sRGB gamut
// clamp per channel.
func (c Color) Blend(other Color, t float64) Color {
	c1 := c.Oklab().LCh()
	c2 := other.Oklab().LCh()
	return LCh{
		L:     mathutil.Lerp(c1.L, c2.L, t),
		C:     mathutil.Lerp(c1.C, c2.C, t),
		H:     mathutil.Lerp(c1.H, c2.H, t),
		Alpha: mathutil.Lerp(c1.Alpha, c2.Alpha, t),
	}.Lab().Color()
}

// Mix returns the halfway blend of c and other.
func (c Color) Mix(other Color) Color {
	return c.Blend(other, 0.5)
}

// Lighten shifts the perceived lightness of the color by amount, which
// may be negative. The shifted coordinate is gamut-clipped, so large
// amounts saturate at pure white or black rather than failing.
func (c Color) Lighten(amount float64) Color {
	lab := c.Oklab()
	lab.L = float32(float64(lab.L) + amount)
	return lab.ClampToSRGBGamut().Color()
}

// Darken is Lighten with the sign of amount flipped.
func (c Color) Darken(amount float64) Color {
	return c.Lighten(-amount)
}

// Shade sets the perceived lightness to an absolute value, keeping the
// hue and as much of the chroma as the gamut allows at that lightness.
// The result does not depend on the original lightness.
func (c Color) Shade(lightness float64) Color {
	lab := c.Oklab()
	lab.L = float32(lightness)
	return lab.ClampToSRGBGamut().Color()
}

// WithAlpha returns the color with its alpha channel replaced by alpha,
// clamped to [0, 1]. The RGB channels are untouched; alpha is
// orthogonal to the color space and this skips the Oklab round trip.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = float32(clamp(alpha, 0, 1))
	return c
}
