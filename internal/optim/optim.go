// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package optim minimizes derivative-free objectives inside a box.
//
// The search runs gonum's Nelder-Mead simplex in the unit hypercube: every
// coordinate is mapped from [Lower, Upper] to [0, 1] so that one simplex
// size fits every dimension. The objective is always evaluated at the point
// clamped into the box, and a quadratic penalty on the distance outside the
// box pushes vertices back toward the walls.
package optim

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Errors returned by Minimize for malformed problems.
var (
	ErrDimension = errors.New("optim: start point and bounds differ in length")
	ErrBounds    = errors.New("optim: invalid bounds")
	ErrNoFunc    = errors.New("optim: nil objective")
)

// Problem is a box-constrained minimization problem.
type Problem struct {
	// Func is the objective. It is only ever called with x inside the box
	// and must not retain x.
	Func func(x []float64) float64

	// Lower and Upper bound every coordinate. Lower[i] == Upper[i] pins
	// coordinate i.
	Lower, Upper []float64
}

// Settings control a single local search.
type Settings struct {
	// MaxIterations caps major iterations. Reaching the cap is not an
	// error; the best point so far is returned.
	MaxIterations int

	// SimplexSize is the initial simplex edge in normalized coordinates.
	SimplexSize float64

	// FuncRelative and FuncAbsolute define a meaningful decrease of the
	// objective: best-f > FuncAbsolute + FuncRelative*|best|.
	FuncRelative float64
	FuncAbsolute float64

	// StepTolerance is the relative move below which an improvement still
	// counts as a stall.
	StepTolerance float64

	// StallIterations is how many consecutive stalled iterations end the
	// search.
	StallIterations int

	// WallPenalty scales the squared distance outside the box.
	WallPenalty float64
}

// DefaultSettings returns the settings used by the filter solver.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations:   3000,
		SimplexSize:     0.2,
		FuncRelative:    1e-8,
		FuncAbsolute:    1e-10,
		StepTolerance:   1e-10,
		StallIterations: 100,
		WallPenalty:     1e3,
	}
}

// Result is the outcome of Minimize.
type Result struct {
	// X is the best point found, inside the box.
	X []float64
	// F is Func(X), without any wall penalty.
	F float64

	Iterations  int
	Evaluations int
	Status      optimize.Status
}

// Converged reports whether the search stopped on a tolerance rather than
// a limit.
func (r *Result) Converged() bool {
	return r.Status == optimize.FunctionConvergence || r.Status == optimize.StepConvergence
}

// Minimize searches for a local minimum of p starting from x0.
// x0 is clamped into the box before the search begins. The clamped x0 is
// returned unchanged unless the search finds a strictly lower value.
func Minimize(p Problem, x0 []float64, s Settings) (Result, error) {
	if p.Func == nil {
		return Result{}, ErrNoFunc
	}
	n := len(x0)
	if len(p.Lower) != n || len(p.Upper) != n {
		return Result{}, ErrDimension
	}
	for i := range n {
		lo, hi := p.Lower[i], p.Upper[i]
		if !finite(lo) || !finite(hi) || lo > hi {
			return Result{}, ErrBounds
		}
	}

	b := box{lower: p.Lower, upper: p.Upper}
	scratch := make([]float64, n)
	objective := func(u []float64) float64 {
		pen := b.denormalize(scratch, u)
		f := p.Func(scratch)
		if math.IsNaN(f) {
			f = math.MaxFloat64
		}
		return f + s.WallPenalty*pen
	}

	settings := &optimize.Settings{
		MajorIterations: s.MaxIterations,
		Converger: &stallConverger{
			relative: s.FuncRelative,
			absolute: s.FuncAbsolute,
			step:     s.StepTolerance,
			window:   s.StallIterations,
		},
	}
	method := &optimize.NelderMead{SimplexSize: s.SimplexSize}

	u0 := b.normalize(x0)
	res, err := optimize.Minimize(optimize.Problem{Func: objective}, u0, settings, method)
	if res == nil {
		return Result{}, err
	}

	x := make([]float64, n)
	b.denormalize(x, res.X)
	f := p.Func(x)

	// Nelder-Mead accepts ties, so on a flat region it can wander off a
	// start point that was already optimal. Keep the start unless the
	// search strictly improved on it.
	start := make([]float64, n)
	b.denormalize(start, u0)
	if f0 := p.Func(start); !(f < f0) {
		x, f = start, f0
	}

	return Result{
		X:           x,
		F:           f,
		Iterations:  res.MajorIterations,
		Evaluations: res.FuncEvaluations + 2,
		Status:      res.Status,
	}, err
}

// box maps between the problem bounds and the unit hypercube.
type box struct {
	lower, upper []float64
}

func (b box) normalize(x []float64) []float64 {
	u := make([]float64, len(x))
	for i, v := range x {
		span := b.upper[i] - b.lower[i]
		if span == 0 || !finite(v) {
			continue
		}
		u[i] = clamp01((v - b.lower[i]) / span)
	}
	return u
}

// denormalize writes the clamped image of u into dst and returns the
// squared distance of u outside the unit box.
func (b box) denormalize(dst, u []float64) (penalty float64) {
	for i, v := range u {
		c := clamp01(v)
		d := v - c
		penalty += d * d
		dst[i] = b.lower[i] + c*(b.upper[i]-b.lower[i])
	}
	return penalty
}

// stallConverger stops once StallIterations consecutive major iterations
// fail to decrease the objective meaningfully or move the best point.
type stallConverger struct {
	relative, absolute float64
	step               float64
	window             int

	best      float64
	bestX     []float64
	seeded    bool
	stall     int
	stepStall bool
}

func (c *stallConverger) Init(dim int) {
	c.best = math.Inf(1)
	c.bestX = make([]float64, dim)
	c.seeded = false
	c.stall = 0
	c.stepStall = false
}

func (c *stallConverger) Converged(loc *optimize.Location) optimize.Status {
	if !c.seeded {
		c.seeded = true
		c.best = loc.F
		copy(c.bestX, loc.X)
		return optimize.NotTerminated
	}

	if c.best-loc.F > c.absolute+c.relative*math.Abs(c.best) {
		c.stepStall = relativeStep(loc.X, c.bestX) < c.step
		c.best = loc.F
		copy(c.bestX, loc.X)
		if !c.stepStall {
			c.stall = 0
			return optimize.NotTerminated
		}
	} else {
		c.stepStall = false
	}

	c.stall++
	if c.stall < c.window {
		return optimize.NotTerminated
	}
	if c.stepStall {
		return optimize.StepConvergence
	}
	return optimize.FunctionConvergence
}

// relativeStep returns ||x-y|| / (1 + ||y||).
func relativeStep(x, y []float64) float64 {
	var d, n float64
	for i := range x {
		t := x[i] - y[i]
		d += t * t
		n += y[i] * y[i]
	}
	return math.Sqrt(d) / (1 + math.Sqrt(n))
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
