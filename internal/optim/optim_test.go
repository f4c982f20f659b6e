// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package optim

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/optimize"
)

func bowl(center []float64) func([]float64) float64 {
	return func(x []float64) float64 {
		var s float64
		for i, c := range center {
			d := x[i] - c
			s += d * d
		}
		return s
	}
}

func TestMinimizeBowl(t *testing.T) {
	center := []float64{1, -2, 0.5}
	p := Problem{
		Func:  bowl(center),
		Lower: []float64{-5, -5, -5},
		Upper: []float64{5, 5, 5},
	}
	res, err := Minimize(p, []float64{0, 0, 0}, DefaultSettings())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if !res.Converged() {
		t.Errorf("status = %v, want convergence", res.Status)
	}
	for i, c := range center {
		if math.Abs(res.X[i]-c) > 1e-3 {
			t.Errorf("X[%d] = %v, want %v", i, res.X[i], c)
		}
	}
	if res.F > 1e-6 {
		t.Errorf("F = %v, want ~0", res.F)
	}
	if res.Evaluations <= res.Iterations {
		t.Errorf("evaluations %d should exceed iterations %d", res.Evaluations, res.Iterations)
	}
}

func TestMinimizeStopsAtWall(t *testing.T) {
	p := Problem{
		Func:  bowl([]float64{3}),
		Lower: []float64{0},
		Upper: []float64{1},
	}
	res, err := Minimize(p, []float64{0.2}, DefaultSettings())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if res.X[0] < 0 || res.X[0] > 1 {
		t.Fatalf("X = %v escaped the box", res.X[0])
	}
	if math.Abs(res.X[0]-1) > 1e-3 {
		t.Errorf("X = %v, want 1", res.X[0])
	}
	if math.Abs(res.F-4) > 1e-2 {
		t.Errorf("F = %v, want 4 (no penalty)", res.F)
	}
}

func TestMinimizePinnedCoordinate(t *testing.T) {
	p := Problem{
		Func:  func(x []float64) float64 { return x[0] + x[1]*x[1] },
		Lower: []float64{2, -1},
		Upper: []float64{2, 1},
	}
	res, err := Minimize(p, []float64{7, 0.8}, DefaultSettings())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if res.X[0] != 2 {
		t.Errorf("pinned X[0] = %v, want 2", res.X[0])
	}
	if math.Abs(res.X[1]) > 1e-3 {
		t.Errorf("X[1] = %v, want 0", res.X[1])
	}
}

func TestMinimizeKeepsOptimalStart(t *testing.T) {
	// Zero everywhere inside x[0] <= 0.5: every point ties with the start.
	plateau := func(x []float64) float64 {
		if x[0] <= 0.5 {
			return 0
		}
		return x[0] - 0.5
	}
	tests := []struct {
		name string
		x0   []float64
		want []float64
	}{
		{"interior", []float64{0.2, 0.7}, []float64{0.2, 0.7}},
		{"corner", []float64{0, 1}, []float64{0, 1}},
		{"clamped", []float64{-3, 0.4}, []float64{0, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Problem{Func: plateau, Lower: []float64{0, 0}, Upper: []float64{1, 1}}
			res, err := Minimize(p, tt.x0, DefaultSettings())
			if err != nil {
				t.Fatalf("Minimize: %v", err)
			}
			if res.F != 0 {
				t.Errorf("F = %v, want 0", res.F)
			}
			if res.X[0] != tt.want[0] || res.X[1] != tt.want[1] {
				t.Errorf("X = %v, want start %v", res.X, tt.want)
			}
		})
	}
}

func TestMinimizeIterationLimit(t *testing.T) {
	rosenbrock := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	}
	s := DefaultSettings()
	s.MaxIterations = 5
	p := Problem{Func: rosenbrock, Lower: []float64{-2, -2}, Upper: []float64{2, 2}}

	res, err := Minimize(p, []float64{-1.5, 1.5}, s)
	if err != nil {
		t.Fatalf("iteration limit should not be an error, got %v", err)
	}
	if res.Status != optimize.IterationLimit {
		t.Errorf("status = %v, want IterationLimit", res.Status)
	}
	if res.Converged() {
		t.Error("Converged() = true at iteration limit")
	}
	if res.Iterations > 5 {
		t.Errorf("iterations = %d, want <= 5", res.Iterations)
	}
	for i, v := range res.X {
		if v < -2 || v > 2 {
			t.Errorf("X[%d] = %v escaped the box", i, v)
		}
	}
}

func TestMinimizeDeterministic(t *testing.T) {
	p := Problem{
		Func:  bowl([]float64{0.3, 0.7}),
		Lower: []float64{0, 0},
		Upper: []float64{1, 1},
	}
	a, errA := Minimize(p, []float64{0.9, 0.1}, DefaultSettings())
	b, errB := Minimize(p, []float64{0.9, 0.1}, DefaultSettings())
	if errA != nil || errB != nil {
		t.Fatalf("Minimize: %v, %v", errA, errB)
	}
	if a.F != b.F || a.X[0] != b.X[0] || a.X[1] != b.X[1] || a.Iterations != b.Iterations {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestMinimizeErrors(t *testing.T) {
	f := bowl([]float64{0})
	tests := []struct {
		name string
		p    Problem
		x0   []float64
		want error
	}{
		{"nil func", Problem{Lower: []float64{0}, Upper: []float64{1}}, []float64{0}, ErrNoFunc},
		{"short bounds", Problem{Func: f, Lower: []float64{0}, Upper: []float64{1}}, []float64{0, 0}, ErrDimension},
		{"inverted", Problem{Func: f, Lower: []float64{1}, Upper: []float64{0}}, []float64{0}, ErrBounds},
		{"infinite", Problem{Func: f, Lower: []float64{0}, Upper: []float64{math.Inf(1)}}, []float64{0}, ErrBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Minimize(tt.p, tt.x0, DefaultSettings()); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStallConverger(t *testing.T) {
	t.Run("flat objective", func(t *testing.T) {
		c := &stallConverger{relative: 1e-8, absolute: 1e-10, step: 1e-10, window: 3}
		c.Init(1)
		loc := &optimize.Location{X: []float64{0.5}, F: 1}
		for i := 0; i < 3; i++ {
			if s := c.Converged(loc); s != optimize.NotTerminated {
				t.Fatalf("call %d: status %v, want NotTerminated", i, s)
			}
		}
		if s := c.Converged(loc); s != optimize.FunctionConvergence {
			t.Errorf("status = %v, want FunctionConvergence", s)
		}
	})

	t.Run("improving without moving", func(t *testing.T) {
		c := &stallConverger{relative: 1e-8, absolute: 1e-10, step: 1e-10, window: 2}
		c.Init(1)
		loc := &optimize.Location{X: []float64{0.5}, F: 10}
		c.Converged(loc)
		loc.F = 9
		if s := c.Converged(loc); s != optimize.NotTerminated {
			t.Fatalf("status %v, want NotTerminated", s)
		}
		loc.F = 8
		if s := c.Converged(loc); s != optimize.StepConvergence {
			t.Errorf("status = %v, want StepConvergence", s)
		}
	})

	t.Run("progress resets", func(t *testing.T) {
		c := &stallConverger{relative: 1e-8, absolute: 1e-10, step: 1e-10, window: 2}
		c.Init(1)
		loc := &optimize.Location{X: []float64{0}, F: 10}
		for i := 1; i <= 10; i++ {
			loc.F = 10 - float64(i)
			loc.X[0] = float64(i) / 10
			if s := c.Converged(loc); s != optimize.NotTerminated {
				t.Fatalf("iteration %d: status %v while improving", i, s)
			}
		}
	})
}
