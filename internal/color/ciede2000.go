package color

import "math"

// DeltaE2000 computes the CIEDE2000 color difference between two Lab
// points with the parametric factors kL, kC, kH all set to 1. The result
// is symmetric, non-negative, and zero for identical inputs. Roughly,
// values below 1 are imperceptible and 100 separates opposites like black
// and white.
func DeltaE2000(p1, p2 Lab) float64 {
	c1 := math.Hypot(p1.A, p1.B)
	c2 := math.Hypot(p2.A, p2.B)
	cMean := (c1 + c2) / 2.0

	// Chroma correction: shrink a* for low-chroma pairs before
	// recomputing chroma and hue. Skipping this degrades the metric to
	// CIE94 territory.
	g := 0.5 * (1.0 - math.Sqrt(pow7(cMean)/(pow7(cMean)+pow7(25.0))))
	a1p := (1.0 + g) * p1.A
	a2p := (1.0 + g) * p2.A

	c1p := math.Hypot(a1p, p1.B)
	c2p := math.Hypot(a2p, p2.B)
	h1p := hueAngle(p1.B, a1p)
	h2p := hueAngle(p2.B, a2p)

	dL := p2.L - p1.L
	dC := c2p - c1p

	// Hue difference, short way around the circle. Undefined when either
	// point is achromatic; the hue term vanishes there anyway.
	var dh float64
	if c1p*c2p != 0 {
		dh = h2p - h1p
		if dh > 180.0 {
			dh -= 360.0
		} else if dh < -180.0 {
			dh += 360.0
		}
	}
	dH := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(rad(dh)/2.0)

	lMean := (p1.L + p2.L) / 2.0
	cMeanP := (c1p + c2p) / 2.0

	// Mean hue: for an achromatic point the sum collapses to the other
	// point's hue (hueAngle returns 0 at zero chroma).
	var hMean float64
	switch {
	case c1p*c2p == 0:
		hMean = h1p + h2p
	case math.Abs(h1p-h2p) <= 180.0:
		hMean = (h1p + h2p) / 2.0
	case h1p+h2p < 360.0:
		hMean = (h1p + h2p + 360.0) / 2.0
	default:
		hMean = (h1p + h2p - 360.0) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos(rad(hMean-30.0)) +
		0.24*math.Cos(rad(2.0*hMean)) +
		0.32*math.Cos(rad(3.0*hMean+6.0)) -
		0.20*math.Cos(rad(4.0*hMean-63.0))

	lTerm := (lMean - 50.0) * (lMean - 50.0)
	sL := 1.0 + 0.015*lTerm/math.Sqrt(20.0+lTerm)
	sC := 1.0 + 0.045*cMeanP
	sH := 1.0 + 0.015*cMeanP*t

	// Rotation term coupling chroma and hue near the blue region.
	dTheta := 30.0 * math.Exp(-((hMean-275.0)/25.0)*((hMean-275.0)/25.0))
	rC := 2.0 * math.Sqrt(pow7(cMeanP)/(pow7(cMeanP)+pow7(25.0)))
	rT := -math.Sin(rad(2.0*dTheta)) * rC

	dLs := dL / sL
	dCs := dC / sC
	dHs := dH / sH

	return math.Sqrt(dLs*dLs + dCs*dCs + dHs*dHs + rT*dCs*dHs)
}

// hueAngle returns the hue of (a, b) in degrees [0, 360), or 0 when both
// components are zero.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * (180.0 / math.Pi)
	if h < 0 {
		h += 360.0
	}
	return h
}

func rad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func pow7(v float64) float64 {
	v3 := v * v * v
	return v3 * v3 * v
}
