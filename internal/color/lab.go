package color

import "math"

// Lab is a point in CIE L*a*b* space relative to the D65 reference white.
// L is lightness [0, 100]; a and b are the opponent axes, roughly [-128, 127].
type Lab struct {
	L, A, B float64
}

// D65 reference white in XYZ, normalized to Y = 1.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

// CIE constants: epsilon = (6/29)^3, kappa = (29/3)^3.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// RGBToLab converts an sRGB Color to CIE Lab under D65.
func RGBToLab(c Color) Lab {
	// sRGB → linear RGB
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	// linear RGB → XYZ (sRGB D65 matrix)
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	// XYZ → Lab
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToRGB converts a Lab point back to sRGB. Out-of-gamut values are
// clamped channel-wise rather than rejected, so round-trip error from
// RGBToLab stays within one step per channel.
func LabToRGB(lab Lab) Color {
	// Lab → XYZ
	fy := (lab.L + 16.0) / 116.0
	fx := fy + lab.A/500.0
	fz := fy - lab.B/200.0

	x := refX * labFInv(fx)
	z := refZ * labFInv(fz)
	var y float64
	if lab.L > cieKappa*cieEpsilon {
		y = refY * fy * fy * fy
	} else {
		y = refY * lab.L / cieKappa
	}

	// XYZ → linear RGB (inverse sRGB D65 matrix)
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	// linear RGB → sRGB, clamped
	return Color{
		R: uint8(math.Round(linearToSRGB(clamp01(r)) * 255.0)),
		G: uint8(math.Round(linearToSRGB(clamp01(g)) * 255.0)),
		B: uint8(math.Round(linearToSRGB(clamp01(b)) * 255.0)),
	}
}

// RGBToHSV converts an sRGB Color to HSV. Hue is in degrees [0, 360),
// saturation and value in [0, 1]. Hue is 0 for achromatic colors.
func RGBToHSV(c Color) (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	v = maxC
	if maxC > 0 {
		s = delta / maxC
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxC {
	case r:
		h = 60.0 * math.Mod((g-b)/delta, 6.0)
	case g:
		h = 60.0 * ((b-r)/delta + 2.0)
	default:
		h = 60.0 * ((r-g)/delta + 4.0)
	}
	if h < 0 {
		h += 360.0
	}
	return h, s, v
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// labF is the CIE 1976 transfer function.
func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16.0) / 116.0
}

// labFInv inverts labF.
func labFInv(t float64) float64 {
	if t*t*t > cieEpsilon {
		return t * t * t
	}
	return (116.0*t - 16.0) / cieKappa
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
