// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fixed provides a saturating 32.32 fixed-point number type.
//
// Every operation is defined on integers only, so results are identical on
// every GOARCH. Overflow saturates toward the nearest representable bound
// instead of wrapping, and conversions from non-finite floats yield zero.
package fixed

import (
	"math"
	"math/bits"
)

// Fixed is a signed 32.32 fixed-point value.
type Fixed int64

// Fixed-point constants.
const (
	// Shift is the number of fractional bits.
	Shift = 32
	// One represents 1.0.
	One Fixed = 1 << Shift
	// Half represents 0.5.
	Half Fixed = One / 2

	// Max and Min are the saturation bounds.
	Max Fixed = math.MaxInt64
	Min Fixed = math.MinInt64

	maxInt = int64(1)<<(63-Shift) - 1
	minInt = -int64(1) << (63 - Shift)
)

// FromInt converts an integer, saturating outside the representable range.
func FromInt(i int64) Fixed {
	switch {
	case i > maxInt:
		return Max
	case i < minInt:
		return Min
	}
	return Fixed(i << Shift)
}

// FromRatio returns num/den rounded to the nearest representable value
// (halves away from zero). den must be non-zero.
func FromRatio(num, den int64) Fixed {
	if den < 0 {
		num, den = -num, -den
	}
	if num > maxInt || num < minInt {
		if num < 0 {
			return Min
		}
		return Max
	}
	n := num << Shift
	q := n / den
	r := n % den
	if r < 0 {
		r = -r
	}
	if r >= den-r {
		if n < 0 {
			q--
		} else {
			q++
		}
	}
	return Fixed(q)
}

// FromFloat converts a float64. NaN and infinities become zero; finite
// values beyond the range saturate.
func FromFloat(f float64) Fixed {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	v := math.Round(f * float64(One))
	switch {
	case v >= float64(Max):
		return Max
	case v <= float64(Min):
		return Min
	}
	return Fixed(v)
}

// Float64 converts a to a float64.
func (a Fixed) Float64() float64 {
	return float64(a) / float64(One)
}

// Add returns a+b, saturating.
func (a Fixed) Add(b Fixed) Fixed {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return Max
	}
	if a < 0 && b < 0 && s >= 0 {
		return Min
	}
	return s
}

// Sub returns a-b, saturating.
func (a Fixed) Sub(b Fixed) Fixed {
	return a.Add(b.Neg())
}

// Neg returns -a. Negating Min saturates to Max.
func (a Fixed) Neg() Fixed {
	if a == Min {
		return Max
	}
	return -a
}

// Mul returns a*b rounded to nearest, saturating.
func (a Fixed) Mul(b Fixed) Fixed {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))

	// The 128-bit product has 64 fractional bits; keep 32 of them.
	if hi>>(63-Shift) != 0 {
		return saturate(neg)
	}
	r := hi<<(64-Shift) | lo>>Shift
	if lo&(1<<(Shift-1)) != 0 {
		r++
	}
	if neg {
		if r > 1<<63 {
			return Min
		}
		return Fixed(-int64(r))
	}
	if r > math.MaxInt64 {
		return Max
	}
	return Fixed(r)
}

// MulInt returns a*i, saturating.
func (a Fixed) MulInt(i int64) Fixed {
	return a.Mul(FromInt(i))
}

// Clamp limits a to [lo, hi].
func (a Fixed) Clamp(lo, hi Fixed) Fixed {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Clamp01 limits a to [0, 1].
func (a Fixed) Clamp01() Fixed {
	return a.Clamp(0, One)
}

// abs64 returns |a| as an unsigned value; Min maps to 1<<63.
func abs64(a Fixed) uint64 {
	u := uint64(a)
	if a < 0 {
		u = -u
	}
	return u
}

func saturate(neg bool) Fixed {
	if neg {
		return Min
	}
	return Max
}
