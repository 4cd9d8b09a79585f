package color

import "math"

// Lab is a color in the Oklab color space. L is perceived lightness, A
// and B are the two opponent-color axes centered at 0. Alpha is carried
// through every conversion unchanged; it never participates in the
// color-space math.
type Lab struct {
	L     float32
	A     float32
	B     float32
	Alpha float32
}

// LCh is the polar form of Lab. C is chroma and H is the hue angle in
// degrees in (-180, 180], as returned by Atan2. H is deliberately not
// wrapped into [0, 360): blending interpolates H linearly, and the
// signed range keeps interpolation continuous across the +a axis.
type LCh struct {
	L     float32
	C     float32
	H     float32
	Alpha float32
}

// LinearRGB is a linear-light sRGB color, before gamma encoding.
// Channel values outside [0, 1] denote colors outside the sRGB gamut.
type LinearRGB struct {
	R float32
	G float32
	B float32
	A float32
}

// Oklab converts the color to Oklab coordinates.
func (c Color) Oklab() Lab {
	return c.Linear().Oklab()
}

// Linear undoes the sRGB gamma encoding of the R, G, and B channels.
// Alpha is linear already and passes through.
func (c Color) Linear() LinearRGB {
	return LinearRGB{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B), c.A}
}

// Color applies sRGB gamma encoding. Each channel is clamped to [0, 1]
// first, so out-of-gamut values collapse onto the gamut surface.
func (c LinearRGB) Color() Color {
	return Color{linearToSRGB(c.R), linearToSRGB(c.G), linearToSRGB(c.B), clamp(c.A, 0, 1)}
}

// Oklab converts linear sRGB to Oklab: LMS cone response via a fixed
// 3×3 matrix, a cube root per component, then the Oklab matrix.
func (c LinearRGB) Oklab() Lab {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l_ := math.Cbrt(l)
	m_ := math.Cbrt(m)
	s_ := math.Cbrt(s)

	return Lab{
		L:     float32(0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_),
		A:     float32(1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_),
		B:     float32(0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_),
		Alpha: c.A,
	}
}

// LinearRGB converts from Oklab to linear sRGB, without gamut mapping.
// That is, if the color falls outside the sRGB gamut, the resulting R,
// G, and B channels may have values larger than 1 or less than 0. Use
// Lab.ClampToSRGBGamut to prevent this from happening.
func (c Lab) LinearRGB() LinearRGB {
	l_ := float64(c.L) + 0.3963377774*float64(c.A) + 0.2158037573*float64(c.B)
	m_ := float64(c.L) - 0.1055613458*float64(c.A) - 0.0638541728*float64(c.B)
	s_ := float64(c.L) - 0.0894841775*float64(c.A) - 1.2914855480*float64(c.B)

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	return LinearRGB{
		R: float32(+4.0767416621*l - 3.3077115913*m + 0.2309699292*s),
		G: float32(-1.2684380046*l + 2.6097574011*m - 0.3413193965*s),
		B: float32(-0.0041960863*l - 0.7034186147*m + 1.7076147010*s),
		A: c.Alpha,
	}
}

// Color converts the Oklab coordinate back to an sRGB color, clamping
// each channel to the displayable range.
func (c Lab) Color() Color {
	return c.LinearRGB().Color()
}

// LCh converts to the polar form.
func (c Lab) LCh() LCh {
	return LCh{
		L:     c.L,
		C:     float32(math.Hypot(float64(c.A), float64(c.B))),
		H:     float32(math.Atan2(float64(c.B), float64(c.A)) * (180 / math.Pi)),
		Alpha: c.Alpha,
	}
}

// Lab converts back to rectangular coordinates.
func (c LCh) Lab() Lab {
	h := float64(c.H) * (math.Pi / 180)
	return Lab{
		L:     c.L,
		A:     float32(float64(c.C) * math.Cos(h)),
		B:     float32(float64(c.C) * math.Sin(h)),
		Alpha: c.Alpha,
	}
}

// Difference returns the Euclidean distance ΔEOK between two Oklab
// coordinates. Alpha does not contribute.
func Difference(reference, sample Lab) (deltaEOK float32) {
	deltaL := float64(reference.L - sample.L)
	deltaA := float64(reference.A - sample.A)
	deltaB := float64(reference.B - sample.B)
	return float32(math.Hypot(math.Hypot(deltaL, deltaA), deltaB))
}

func srgbToLinear(c float32) float32 {
	cp := float64(c)
	if cp <= 0.04045 {
		return float32(cp / 12.92)
	}
	return float32(math.Pow((cp+0.055)/1.055, 2.4))
}

func linearToSRGB(c float32) float32 {
	cp := clamp(float64(c), 0, 1)
	if cp <= 0.0031308 {
		return float32(cp * 12.92)
	}
	return float32(1.055*math.Pow(cp, 1/2.4) - 0.055)
}
