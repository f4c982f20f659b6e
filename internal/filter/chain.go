package filter

import "github.com/gogpu/cssfilter/internal/fixed"

// Chain is the CSS filter sequence
//
//	invert → sepia → saturate → hue-rotate → brightness → contrast
//
// with every amount in transform units: fractions (1 = 100%) for all but
// HueRotate, which is in degrees.
type Chain struct {
	Invert     fixed.Fixed
	Sepia      fixed.Fixed
	Saturate   fixed.Fixed
	HueRotate  fixed.Fixed
	Brightness fixed.Fixed
	Contrast   fixed.Fixed
}

// Apply runs the chain on c in place, in the fixed filter order.
func (ch Chain) Apply(c *Color) {
	c.Invert(ch.Invert)
	c.Sepia(ch.Sepia)
	c.Saturate(ch.Saturate)
	c.HueRotate(ch.HueRotate)
	c.Brightness(ch.Brightness)
	c.Contrast(ch.Contrast)
}

// Render returns the color the chain produces from black.
func (ch Chain) Render() Color {
	c := Black()
	ch.Apply(&c)
	return c
}
