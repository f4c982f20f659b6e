// Package cssfilter finds CSS filter chains that recolor black.
//
// # Overview
//
// Monochrome icons and masks can often be restyled only through the CSS
// filter property. Applied to a black element, the chain
//
//	invert(I%) sepia(S%) saturate(T%) hue-rotate(Hdeg) brightness(B%) contrast(C%)
//
// can reach most sRGB colors. cssfilter searches the six parameters so that
// the result matches a target color as closely as possible.
//
// # Quick Start
//
//	import "github.com/gogpu/cssfilter"
//
//	css := cssfilter.FilterRGB(210, 15, 57)
//	// invert(...) sepia(...) ... contrast(...)
//
//	css, err := cssfilter.FilterString("crimson")
//
// # Determinism
//
// The same target produces the same string on every platform. The filter
// chain is evaluated in Q32.32 fixed point with CORDIC trigonometry, every
// parameter is quantized to 0.1 before evaluation, and the Oklab loss is
// computed without fused multiply-add.
//
// # Search
//
// The loss is 5000 times the squared Oklab distance between the produced
// color and the target. A Solver runs a bounded Nelder-Mead search from a
// table of seeds (see DefaultSeeds) and stops as soon as the loss falls
// below 0.01. Only a good local optimum is guaranteed.
//
// # Caching
//
// FilterRGB, Filter and FilterString memoize results in a process-wide
// table. Solve and Solver.Solve never use it.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Solve, Solver, FilterRGB, Params, Result
//   - Internal: fixed (Q32.32 and CORDIC), filter (color matrices),
//     color (Oklab), optim (bounded Nelder-Mead), cache (memo table)
package cssfilter
