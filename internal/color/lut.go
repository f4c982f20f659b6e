package color

// sRGB8ToLinearLUT provides O(1) sRGB to linear conversion for 8-bit input.
// Pre-computed 256 entries from SRGBToLinear.
var sRGB8ToLinearLUT [256]float64

func init() {
	for i := range sRGB8ToLinearLUT {
		sRGB8ToLinearLUT[i] = SRGBToLinear(float64(i) / 255.0)
	}
}

// SRGB8ToLinear converts an sRGB byte to a linear component using the lookup table.
//
// Example:
//
//	l := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float64 {
	return sRGB8ToLinearLUT[s]
}
