// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixed

// Angle constants in radians.
const (
	Pi     Fixed = 13493037705
	HalfPi Fixed = 6746518852
	TwoPi  Fixed = 26986075409

	// degToRad is pi/180.
	degToRad Fixed = 74961321
)

// cordicIterations is the number of CORDIC rotations; one per fractional bit.
const cordicIterations = Shift

// cordicGain is the product of 1/sqrt(1+2^-2i) for i < cordicIterations.
const cordicGain Fixed = 2608131496

// atanTable holds atan(2^-i) in 32.32 radians.
var atanTable = [cordicIterations]Fixed{
	3373259426, 1991351318, 1052175346, 534100635,
	268086748, 134174063, 67103403, 33553749,
	16777131, 8388597, 4194303, 2097152,
	1048576, 524288, 262144, 131072,
	65536, 32768, 16384, 8192,
	4096, 2048, 1024, 512,
	256, 128, 64, 32,
	16, 8, 4, 2,
}

// Radians converts an angle in degrees to radians.
func Radians(deg Fixed) Fixed {
	return deg.Mul(degToRad)
}

// NormalizeAngle maps theta (radians) into [-Pi, Pi].
func NormalizeAngle(theta Fixed) Fixed {
	t := theta % TwoPi
	if t > Pi {
		t -= TwoPi
	} else if t < -Pi {
		t += TwoPi
	}
	return t
}

// SinCos returns the sine and cosine of theta (radians) using shift-add
// CORDIC rotation. The result is within a few 1e-9 of the exact value.
func SinCos(theta Fixed) (sin, cos Fixed) {
	z := NormalizeAngle(theta)

	// Rotation mode converges for |z| <= ~1.74; fold the outer half turn.
	flip := false
	if z > HalfPi {
		z -= Pi
		flip = true
	} else if z < -HalfPi {
		z += Pi
		flip = true
	}

	x, y := cordicGain, Fixed(0)
	for i := 0; i < cordicIterations; i++ {
		dx, dy := y>>i, x>>i
		if z >= 0 {
			x, y = x-dx, y+dy
			z -= atanTable[i]
		} else {
			x, y = x+dx, y-dy
			z += atanTable[i]
		}
	}

	if flip {
		x, y = -x, -y
	}
	return y.Clamp(-One, One), x.Clamp(-One, One)
}
