package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func absDiffUint8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRGBToLab_KnownColors(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  Lab
	}{
		{"black", Color{0, 0, 0}, Lab{0, 0, 0}},
		{"white", Color{255, 255, 255}, Lab{100, 0, 0}},
		{"red", Color{255, 0, 0}, Lab{53.2408, 80.0925, 67.2032}},
		{"green", Color{0, 255, 0}, Lab{87.7347, -86.1827, 83.1793}},
		{"blue", Color{0, 0, 255}, Lab{32.2970, 79.1875, -107.8602}},
		{"mid gray", Color{119, 119, 119}, Lab{50.0344, 0.0026, -0.0052}},
	}

	const tol = 0.05
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToLab(tt.color)
			if math.Abs(got.L-tt.want.L) > tol ||
				math.Abs(got.A-tt.want.A) > tol ||
				math.Abs(got.B-tt.want.B) > tol {
				t.Errorf("RGBToLab(%v) = %+v, want %+v", tt.color, got, tt.want)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	hexes := []string{
		"000000", "FFFFFF", "EB6F92", "36393F", "99AAB5",
		"F8C300", "FD0061", "123456", "00C09A", "7A2F8F",
	}
	for _, hex := range hexes {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", hex, err)
		}
		back := LabToRGB(RGBToLab(c))
		if absDiffUint8(back.R, c.R) > 1 ||
			absDiffUint8(back.G, c.G) > 1 ||
			absDiffUint8(back.B, c.B) > 1 {
			t.Errorf("round trip %s = %v, want within 1 of %v", hex, back, c)
		}
	}
}

func TestLabToRGB_ClampsOutOfGamut(t *testing.T) {
	// Saturated Lab points outside sRGB must clamp instead of wrapping.
	c := LabToRGB(Lab{L: 50, A: 200, B: 0})
	if c.R != 255 {
		t.Errorf("expected red channel clamped to 255, got %d", c.R)
	}
	c = LabToRGB(Lab{L: -10, A: 0, B: 0})
	if (c != Color{0, 0, 0}) {
		t.Errorf("expected black for negative lightness, got %v", c)
	}
}

func TestRGBToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		h, s, v float64
	}{
		{"red", Color{255, 0, 0}, 0, 1, 1},
		{"yellow", Color{255, 255, 0}, 60, 1, 1},
		{"green", Color{0, 255, 0}, 120, 1, 1},
		{"cyan", Color{0, 255, 255}, 180, 1, 1},
		{"blue", Color{0, 0, 255}, 240, 1, 1},
		{"magenta", Color{255, 0, 255}, 300, 1, 1},
		{"black", Color{0, 0, 0}, 0, 0, 0},
		{"gray", Color{128, 128, 128}, 0, 0, 128.0 / 255.0},
		{"dark green", Color{0, 128, 0}, 120, 1, 128.0 / 255.0},
	}

	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.color)
			if math.Abs(h-tt.h) > tol || math.Abs(s-tt.s) > tol || math.Abs(v-tt.v) > tol {
				t.Errorf("RGBToHSV(%v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.color, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVHueRange(t *testing.T) {
	// Hue must land in [0, 360) for every corner and a spread of interior points.
	for _, c := range []Color{
		{255, 0, 128}, {12, 250, 77}, {200, 10, 255}, {1, 2, 3},
		{255, 254, 253}, {0, 255, 1},
	} {
		h, _, _ := RGBToHSV(c)
		if h < 0 || h >= 360 {
			t.Errorf("RGBToHSV(%v) hue = %v, want [0, 360)", c, h)
		}
	}
}

// Cross-check against go-colorful, which implements the same D65 pipeline
// independently. Its L is scaled to [0, 1].
func TestLabMatchesColorful(t *testing.T) {
	hexes := []string{"EB6F92", "36393F", "F8C300", "00C09A", "FD0061", "808080"}
	for _, hex := range hexes {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", hex, err)
		}
		ref, err := colorful.Hex(c.Hex())
		if err != nil {
			t.Fatalf("colorful.Hex(%q) error = %v", c.Hex(), err)
		}

		wantL, wantA, wantB := ref.Lab()
		got := RGBToLab(c)
		if math.Abs(got.L-wantL*100) > 0.1 ||
			math.Abs(got.A-wantA*100) > 0.1 ||
			math.Abs(got.B-wantB*100) > 0.1 {
			t.Errorf("RGBToLab(%s) = %+v, colorful says (%v, %v, %v)",
				hex, got, wantL*100, wantA*100, wantB*100)
		}

		wantH, wantS, wantV := ref.Hsv()
		h, s, v := RGBToHSV(c)
		if math.Abs(h-wantH) > 1e-3 || math.Abs(s-wantS) > 1e-3 || math.Abs(v-wantV) > 1e-3 {
			t.Errorf("RGBToHSV(%s) = (%v, %v, %v), colorful says (%v, %v, %v)",
				hex, h, s, v, wantH, wantS, wantV)
		}
	}
}
