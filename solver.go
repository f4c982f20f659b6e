package cssfilter

import (
	"math"

	"github.com/gogpu/cssfilter/internal/color"
	"github.com/gogpu/cssfilter/internal/optim"
)

const (
	// goodEnough ends the multi-start search early. A loss this small is
	// well below a visible difference.
	goodEnough = 0.01

	// maxIterations is the default cap for one local search.
	maxIterations = 3000
)

// Solver finds filter chains for target colors.
//
// A Solver runs one bounded Nelder-Mead search per seed and keeps the best
// result, stopping early once the loss drops below 0.01. Solving is
// deterministic: the same target and options always give the same Result.
//
// Solver holds no mutable state and is safe for concurrent use.
type Solver struct {
	seeds    []Seed
	settings optim.Settings
}

// NewSolver creates a solver with the given options.
func NewSolver(opts ...Option) *Solver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	settings := optim.DefaultSettings()
	settings.MaxIterations = o.maxIterations
	return &Solver{seeds: o.seeds, settings: settings}
}

// Solve is a convenience wrapper for NewSolver(opts...).Solve(target).
// It does not use the process cache; see FilterRGB.
func Solve(target RGB, opts ...Option) Result {
	return NewSolver(opts...).Solve(target)
}

// Solve searches for the filter chain that turns black into target.
// Non-convergence is not an error; the best point found is returned.
func (s *Solver) Solve(target RGB) Result {
	want := color.FromRGB8(target.R, target.G, target.B)
	lower, upper := bounds()
	problem := optim.Problem{
		Func: func(x []float64) float64 {
			var p Params
			copy(p[:], x)
			return loss(p, want)
		},
		Lower: lower,
		Upper: upper,
	}

	log := Logger()

	// A seed that already matches needs no search; searching could only
	// move it along a flat region of equal loss.
	if seed, l, ok := s.exactSeed(want); ok {
		log.Debug("cssfilter: seed matches", "target", target, "seed", seed.Region, "loss", l)
		return Result{Values: seed.Params.Quantize(), Loss: l}
	}

	best := Result{Loss: math.Inf(1)}
	for i, seed := range s.seeds {
		res, err := optim.Minimize(problem, seed.Params[:], s.settings)
		if err != nil {
			log.Warn("cssfilter: local search failed", "seed", seed.Region, "err", err)
			continue
		}

		var p Params
		copy(p[:], res.X)
		log.Debug("cssfilter: local search",
			"target", target,
			"seed", seed.Region,
			"loss", res.F,
			"iterations", res.Iterations,
			"converged", res.Converged())

		if res.F < best.Loss {
			best = Result{Values: p.Quantize(), Loss: res.F}
		}
		if best.Loss < goodEnough {
			log.Debug("cssfilter: early exit", "target", target, "starts", i+1, "loss", best.Loss)
			break
		}
	}
	return best
}

// exactSeed returns the lowest-loss seed whose own loss is already below
// goodEnough. Ties go to the earlier seed.
func (s *Solver) exactSeed(want color.Lab) (Seed, float64, bool) {
	var (
		found Seed
		best  = math.Inf(1)
	)
	for _, seed := range s.seeds {
		if l := loss(seed.Params, want); l < goodEnough && l < best {
			found, best = seed, l
		}
	}
	return found, best, !math.IsInf(best, 1)
}
