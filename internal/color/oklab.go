package color

import "math"

// Oklab matrices (Björn Ottosson, 2020).
var (
	// linear sRGB → LMS
	m1 = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	// LMS' → Lab
	m2 = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
)

// dot3 returns row·(x, y, z) with every product rounded separately.
func dot3(row *[3]float64, x, y, z float64) float64 {
	return float64(row[0]*x) + float64(row[1]*y) + float64(row[2]*z)
}

// LinearToOklab converts linear sRGB to Oklab.
func LinearToOklab(r, g, b float64) Lab {
	l := math.Cbrt(dot3(&m1[0], r, g, b))
	m := math.Cbrt(dot3(&m1[1], r, g, b))
	s := math.Cbrt(dot3(&m1[2], r, g, b))
	return Lab{
		L: dot3(&m2[0], l, m, s),
		A: dot3(&m2[1], l, m, s),
		B: dot3(&m2[2], l, m, s),
	}
}
