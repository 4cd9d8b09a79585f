package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestOklabRoundTrip(t *testing.T) {
	// Color → Oklab → Color must reproduce the original within
	// floating-point tolerance for any in-gamut input.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
				got := c.Oklab().Color()
				if !closeColor(got, c, 1e-5) {
					t.Fatalf("Oklab round trip of %v = %v", c, got)
				}
			}
		}
	}
}

func TestOklabKnownValues(t *testing.T) {
	// Reference coordinates for the sRGB primaries and white, from the
	// published Oklab tables.
	tests := []struct {
		in      string
		l, a, b float64
	}{
		{"#ffffff", 1.0000, 0.0000, 0.0000},
		{"#ff0000", 0.6280, 0.2249, 0.1258},
		{"#00ff00", 0.8664, -0.2339, 0.1795},
		{"#0000ff", 0.4520, -0.0325, -0.3115},
	}
	for _, tt := range tests {
		lab := MustParse(tt.in).Oklab()
		if math.Abs(float64(lab.L)-tt.l) > 1e-3 ||
			math.Abs(float64(lab.A)-tt.a) > 1e-3 ||
			math.Abs(float64(lab.B)-tt.b) > 1e-3 {
			t.Errorf("Oklab(%s) = (%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)",
				tt.in, lab.L, lab.A, lab.B, tt.l, tt.a, tt.b)
		}
	}
}

func TestAlphaPassesThroughConversions(t *testing.T) {
	c := MustParse("#ab38a380")
	if got := c.Oklab().Alpha; got != c.A {
		t.Errorf("Oklab alpha = %v, want %v", got, c.A)
	}
	if got := c.Oklab().LCh().Alpha; got != c.A {
		t.Errorf("LCh alpha = %v, want %v", got, c.A)
	}
	if got := c.Oklab().Color().A; got != c.A {
		t.Errorf("round-trip alpha = %v, want %v", got, c.A)
	}
}

func TestLChRoundTrip(t *testing.T) {
	for _, s := range []string{"#ab38a3", "#123faa", "#cb9174", "#00ff00", "#808080"} {
		lab := MustParse(s).Oklab()
		got := lab.LCh().Lab()
		if math.Abs(float64(got.L-lab.L)) > 1e-6 ||
			math.Abs(float64(got.A-lab.A)) > 1e-6 ||
			math.Abs(float64(got.B-lab.B)) > 1e-6 {
			t.Errorf("LCh round trip of %s: %v != %v", s, got, lab)
		}
	}
}

func TestDifference(t *testing.T) {
	red := MustParse("#ff0000").Oklab()
	green := MustParse("#00ff00").Oklab()
	if d := Difference(red, red); d != 0 {
		t.Errorf("Difference(red, red) = %v", d)
	}
	if d1, d2 := Difference(red, green), Difference(green, red); d1 != d2 {
		t.Errorf("Difference is asymmetric: %v != %v", d1, d2)
	}
	if d := float64(Difference(red, green)); math.Abs(d-0.520) > 0.01 {
		t.Errorf("Difference(red, green) = %v, want ≈0.520", d)
	}
}

// TestAgainstColorful cross-checks the sRGB transfer function and the
// hex renderer against go-colorful.
func TestAgainstColorful(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#ab38a3", "#123faa", "#c670f9", "#cb9174", "#0a0a0a"} {
		c := MustParse(s)
		ref, err := colorful.Hex(s)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", s, err)
		}

		lin := c.Linear()
		lr, lg, lb := ref.LinearRgb()
		if math.Abs(float64(lin.R)-lr) > 1e-5 ||
			math.Abs(float64(lin.G)-lg) > 1e-5 ||
			math.Abs(float64(lin.B)-lb) > 1e-5 {
			t.Errorf("Linear(%s) = (%v, %v, %v), colorful says (%v, %v, %v)",
				s, lin.R, lin.G, lin.B, lr, lg, lb)
		}

		if got, want := c.Hex()[:7], ref.Hex(); got != want {
			t.Errorf("Hex(%s) = %q, colorful says %q", s, got, want)
		}
	}
}

func closeColor(a, b Color, tol float64) bool {
	return math.Abs(float64(a.R-b.R)) <= tol &&
		math.Abs(float64(a.G-b.G)) <= tol &&
		math.Abs(float64(a.B-b.B)) <= tol &&
		math.Abs(float64(a.A-b.A)) <= tol
}
