package cssfilter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit sRGB color. RGB implements image/color.Color as an
// opaque color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// String returns the color in #rrggbb form.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Result is the best filter chain found for a target color.
type Result struct {
	// Values are quantized to 0.1 and lie within bounds.
	Values Params
	// Loss is the perceptual error of Values; lower is better.
	Loss float64
}

// CSS returns the filter chain as a CSS filter property value.
func (r Result) CSS() string {
	return r.Values.CSS()
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return r.CSS()
}

// RGB returns the color the filter chain actually produces.
func (r Result) RGB() RGB {
	return r.Values.Render()
}

// CSS formats p as
//
//	invert(I%) sepia(S%) saturate(T%) hue-rotate(Hdeg) brightness(B%) contrast(C%)
//
// Each value is rounded to the nearest integer; hue-rotate is converted to
// degrees (×3.6) before rounding. Out-of-range values are clamped first.
func (p Params) CSS() string {
	var sb strings.Builder
	sb.Grow(96)
	for i, v := range p.Clamp() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		param := Param(i)
		unit := "%"
		if param == HueRotate {
			v *= 3.6
			unit = "deg"
		}
		sb.WriteString(param.String())
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatInt(int64(math.Round(v)), 10))
		sb.WriteString(unit)
		sb.WriteByte(')')
	}
	return sb.String()
}
