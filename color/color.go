// Package color implements color manipulation in the Oklab color
// space. Colors are parsed from and rendered to #RRGGBB[AA] hex
// notation; all operations (blending, lightening, shading) happen on
// Oklab coordinates so that they behave uniformly across hues, and
// results are mapped back into the sRGB gamut.
package color

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// A Color is an sRGB color with an alpha channel. R, G, and B are
// gamma-encoded sRGB values in [0, 1]; A is linear opacity in [0, 1].
// Colors are immutable values: every operation returns a new Color.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// A FormatError reports a string that does not match the #RRGGBB or
// #RRGGBBAA hex color notation.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

// Parse parses a color in #RRGGBB or #RRGGBBAA notation. Hex digits may
// be upper or lower case; the leading '#' is mandatory. When the alpha
// pair is absent the color is fully opaque. The only error returned is
// *FormatError.
func Parse(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, &FormatError{s, "missing '#' prefix"}
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, &FormatError{s, "want 6 or 8 hex digits"}
	}
	var b [4]uint8
	b[3] = 0xff
	for i := 0; i < len(digits); i += 2 {
		hi, ok1 := unhex(digits[i])
		lo, ok2 := unhex(digits[i+1])
		if !ok1 || !ok2 {
			return Color{}, &FormatError{s, "not a hex digit"}
		}
		b[i/2] = hi<<4 | lo
	}
	return Color{
		R: float32(b[0]) / 255,
		G: float32(b[1]) / 255,
		B: float32(b[2]) / 255,
		A: float32(b[3]) / 255,
	}, nil
}

// MustParse is like Parse but panics on malformed input. It simplifies
// initialization of color constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as a lowercase #rrggbbaa string. The alpha pair
// is always included. Channels round half-up to the nearest of 256
// levels, the same grid Parse reads from, so Parse(c.Hex()) == c for
// any c produced by Parse.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", quantize(c.R), quantize(c.G), quantize(c.B), quantize(c.A))
}

func (c Color) String() string {
	return c.Hex()
}

func unhex(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func quantize(f float32) uint8 {
	return uint8(clamp(math.Floor(float64(f)*255+0.5), 0, 255))
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
