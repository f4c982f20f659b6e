// Package color converts sRGB colors to the Oklab perceptual color space.
//
// Loss evaluation compares colors in Oklab, where Euclidean distance tracks
// perceived difference. All arithmetic is written so that no expression can
// be contracted into a fused multiply-add: an explicit float64 conversion
// rounds every product, which keeps results identical across GOARCH values.
package color

// Lab is a color in Oklab coordinates.
// L is lightness in [0, 1]; A and B are the green-red and blue-yellow axes.
type Lab struct {
	L, A, B float64
}

// DistanceSquared returns the squared Euclidean distance between c and o.
func (c Lab) DistanceSquared(o Lab) float64 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return float64(dl*dl) + float64(da*da) + float64(db*db)
}
