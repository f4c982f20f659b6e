package filter

import "github.com/gogpu/cssfilter/internal/fixed"

// Color is an RGB color with fixed-point channels in [0, 1].
//
// Every transform saturates intermediate products and clamps the final
// channels, so a Color never leaves the unit cube.
type Color struct {
	R, G, B fixed.Fixed
}

// Black returns the color every filter chain starts from.
func Black() Color {
	return Color{}
}

// FromRGB8 converts 8-bit channels to a Color.
func FromRGB8(r, g, b uint8) Color {
	return Color{
		R: fixed.FromRatio(int64(r), 255),
		G: fixed.FromRatio(int64(g), 255),
		B: fixed.FromRatio(int64(b), 255),
	}
}

// Set stores the channels clamped to [0, 1].
func (c *Color) Set(r, g, b fixed.Fixed) {
	c.R = r.Clamp01()
	c.G = g.Clamp01()
	c.B = b.Clamp01()
}

// SetFloat stores float channels. Non-finite values become 0 before clamping.
func (c *Color) SetFloat(r, g, b float64) {
	c.Set(fixed.FromFloat(r), fixed.FromFloat(g), fixed.FromFloat(b))
}

// Float64 returns the channels as float64 values in [0, 1].
func (c Color) Float64() (r, g, b float64) {
	return c.R.Float64(), c.G.Float64(), c.B.Float64()
}

// RGB8 returns the channels rounded to 8 bits.
func (c Color) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v fixed.Fixed) uint8 {
	return uint8(v.Clamp01().MulInt(255).Add(fixed.Half) >> fixed.Shift)
}

// Matrix is a row-major 3x3 color matrix.
type Matrix [9]fixed.Fixed

// Multiply replaces the color with m*c:
//
//	[R']   [m0 m1 m2]   [R]
//	[G'] = [m3 m4 m5] * [G]
//	[B']   [m6 m7 m8]   [B]
func (c *Color) Multiply(m *Matrix) {
	row := func(i int) fixed.Fixed {
		return c.R.Mul(m[3*i]).Add(c.G.Mul(m[3*i+1])).Add(c.B.Mul(m[3*i+2]))
	}
	c.Set(row(0), row(1), row(2))
}

// linear applies ch*slope + intercept to every channel.
func (c *Color) linear(slope, intercept fixed.Fixed) {
	c.Set(
		c.R.Mul(slope).Add(intercept),
		c.G.Mul(slope).Add(intercept),
		c.B.Mul(slope).Add(intercept),
	)
}

// Invert blends the color toward its inverse: ch*(1-2v) + v.
// v = 0 leaves the color unchanged, v = 1 fully inverts it.
func (c *Color) Invert(v fixed.Fixed) {
	c.linear(fixed.One.Sub(v.MulInt(2)), v)
}

// Sepia blends the color toward the sepia tone matrix by v in [0, 1].
func (c *Color) Sepia(v fixed.Fixed) {
	m := affine2(&sepiaCoeffs, fixed.One.Sub(v))
	c.Multiply(&m)
}

// Saturate scales saturation by v around Rec. 709 luminance.
// v = 0 is grayscale, 1 is unchanged, values above 1 oversaturate.
func (c *Color) Saturate(v fixed.Fixed) {
	m := affine2(&saturateCoeffs, v)
	c.Multiply(&m)
}

// HueRotate rotates hue by deg degrees.
func (c *Color) HueRotate(deg fixed.Fixed) {
	sin, cos := fixed.SinCos(fixed.Radians(deg))
	var m Matrix
	for i, k := range &hueCoeffs {
		m[i] = k[0].Add(cos.Mul(k[1])).Add(sin.Mul(k[2]))
	}
	c.Multiply(&m)
}

// Brightness scales every channel by v.
func (c *Color) Brightness(v fixed.Fixed) {
	c.linear(v, 0)
}

// Contrast scales every channel by v around mid-gray.
func (c *Color) Contrast(v fixed.Fixed) {
	c.linear(v, fixed.Half.Sub(v.Mul(fixed.Half)))
}

// affine2 evaluates m[i] = k[i][0] + k[i][1]*x.
func affine2(coeffs *[9][2]fixed.Fixed, x fixed.Fixed) Matrix {
	var m Matrix
	for i, k := range coeffs {
		m[i] = k[0].Add(k[1].Mul(x))
	}
	return m
}

// Matrix coefficients as exact decimal ratios, converted once at init.
var (
	// sepia: m = a + b*(1-v)
	sepiaCoeffs = ratios2(1000, [9][2]int64{
		{393, 607}, {769, -769}, {189, -189},
		{349, -349}, {686, 314}, {168, -168},
		{272, -272}, {534, -534}, {131, 869},
	})

	// saturate: m = a + b*v, Rec. 709 luma
	saturateCoeffs = ratios2(10000, [9][2]int64{
		{2126, 7874}, {7152, -7152}, {722, -722},
		{2126, -2126}, {7152, 2848}, {722, -722},
		{2126, -2126}, {7152, -7152}, {722, 9278},
	})

	// hue-rotate: m = a + b*cos + c*sin
	hueCoeffs = ratios3(1000, [9][3]int64{
		{213, 787, -213}, {715, -715, -715}, {72, -72, 928},
		{213, -213, 143}, {715, 285, 140}, {72, -72, -283},
		{213, -213, -787}, {715, -715, 715}, {72, 928, 72},
	})
)

func ratios2(den int64, in [9][2]int64) [9][2]fixed.Fixed {
	var out [9][2]fixed.Fixed
	for i, row := range in {
		for j, n := range row {
			out[i][j] = fixed.FromRatio(n, den)
		}
	}
	return out
}

func ratios3(den int64, in [9][3]int64) [9][3]fixed.Fixed {
	var out [9][3]fixed.Fixed
	for i, row := range in {
		for j, n := range row {
			out[i][j] = fixed.FromRatio(n, den)
		}
	}
	return out
}
