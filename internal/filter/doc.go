// Package filter implements the CSS filter functions that can recolor black:
// invert, sepia, saturate, hue-rotate, brightness and contrast.
//
// The transforms follow the Filter Effects Module matrices and operate on
// fixed-point colors, so a given Chain renders to the same bits on every
// platform. Hue rotation uses CORDIC sine and cosine from package fixed
// rather than the math package.
package filter
