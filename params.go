package cssfilter

import (
	"math"

	"github.com/gogpu/cssfilter/internal/filter"
	"github.com/gogpu/cssfilter/internal/fixed"
)

// Param identifies one filter function in the chain.
type Param int

// Filter functions in the order they are applied.
const (
	Invert Param = iota
	Sepia
	Saturate
	HueRotate
	Brightness
	Contrast

	numParams = 6
)

var paramNames = [numParams]string{"invert", "sepia", "saturate", "hue-rotate", "brightness", "contrast"}

// paramUpper holds the upper bound of every parameter; all lower bounds are 0.
var paramUpper = [numParams]float64{100, 100, 7500, 100, 200, 200}

// String returns the CSS function name.
func (p Param) String() string {
	if p < 0 || p >= numParams {
		return "unknown"
	}
	return paramNames[p]
}

// Bounds returns the closed search range of the parameter in external units:
// percent for every function except hue-rotate, whose unit is 1/100 of a
// full turn (3.6 degrees).
func (p Param) Bounds() (lo, hi float64) {
	return 0, paramUpper[p]
}

// Params is a point in the search space, indexed by Param.
type Params [numParams]float64

// Clamp returns p with every value moved into its bounds.
// Non-finite values become the lower bound.
func (p Params) Clamp() Params {
	for i, v := range p {
		lo, hi := Param(i).Bounds()
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			p[i] = lo
		case v < lo:
			p[i] = lo
		case v > hi:
			p[i] = hi
		}
	}
	return p
}

// InBounds reports whether every value lies within its bounds.
func (p Params) InBounds() bool {
	for i, v := range p {
		lo, hi := Param(i).Bounds()
		if !(v >= lo && v <= hi) {
			return false
		}
	}
	return true
}

// Quantize clamps p and rounds every value to the nearest 0.1.
func (p Params) Quantize() Params {
	var q Params
	for i, k := range p.tenths() {
		q[i] = float64(k) / 10
	}
	return q
}

// tenths returns the clamped values as integer counts of 0.1.
func (p Params) tenths() [numParams]int64 {
	var k [numParams]int64
	for i, v := range p.Clamp() {
		k[i] = int64(math.Round(v * 10))
	}
	return k
}

// chain converts p to transform units: percentages become fractions and the
// hue unit becomes degrees. Only integer ratios are used, so equal quantized
// parameters always produce bit-identical chains.
func (p Params) chain() filter.Chain {
	k := p.tenths()
	pct := func(n int64) fixed.Fixed { return fixed.FromRatio(n, 1000) }
	return filter.Chain{
		Invert:     pct(k[Invert]),
		Sepia:      pct(k[Sepia]),
		Saturate:   pct(k[Saturate]),
		HueRotate:  fixed.FromRatio(k[HueRotate]*36, 100),
		Brightness: pct(k[Brightness]),
		Contrast:   pct(k[Contrast]),
	}
}

// Render applies the filter chain described by p to black and returns the
// resulting color.
func (p Params) Render() RGB {
	r, g, b := p.chain().Render().RGB8()
	return RGB{R: r, G: g, B: b}
}

// bounds returns the lower and upper bounds as slices for the optimizer.
func bounds() (lower, upper []float64) {
	lower = make([]float64, numParams)
	upper = make([]float64, numParams)
	for i := range numParams {
		lower[i], upper[i] = Param(i).Bounds()
	}
	return lower, upper
}
