package color

import (
	"image/color"
	"math"
)

// NRGBA returns the color as non-premultiplied 8-bit RGBA, rounding
// each channel to the nearest level.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{quantize(c.R), quantize(c.G), quantize(c.B), quantize(c.A)}
}

// FromNRGBA converts a non-premultiplied stdlib color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// RGBA implements the color.Color interface: alpha-premultiplied,
// 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math.Round(float64(c.R * c.A * 0xFFFF)))
	g = uint32(math.Round(float64(c.G * c.A * 0xFFFF)))
	b = uint32(math.Round(float64(c.B * c.A * 0xFFFF)))
	a = uint32(math.Round(float64(c.A * 0xFFFF)))
	return
}
