package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// FromSRGB converts sRGB components in [0,1] to Oklab.
// Out-of-range input is clamped first.
func FromSRGB(r, g, b float64) Lab {
	return LinearToOklab(
		SRGBToLinear(clamp01(r)),
		SRGBToLinear(clamp01(g)),
		SRGBToLinear(clamp01(b)),
	)
}

// FromRGB8 converts 8-bit sRGB channels to Oklab.
func FromRGB8(r, g, b uint8) Lab {
	return LinearToOklab(SRGB8ToLinear(r), SRGB8ToLinear(g), SRGB8ToLinear(b))
}

// clamp01 clamps v to [0,1]; NaN becomes 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
