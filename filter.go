package cssfilter

import (
	"image/color"
	"sync"

	"github.com/gogpu/cssfilter/internal/cache"
)

// Stats contains process cache statistics.
type Stats = cache.Stats

// processCache maps target colors to CSS strings for the life of the
// process. It is created on first use and never shrinks.
var processCache = sync.OnceValue(cache.New[RGB, string])

// FilterRGB returns the CSS filter chain that turns black into the color
// (r, g, b).
//
// Results are cached for the life of the process; each color is solved at
// most once. The solve runs while the cache lock is held, so concurrent
// callers wait for each other on a miss. If a solve panics, the cache is
// poisoned and every later call panics with cache.ErrPoisoned.
func FilterRGB(r, g, b uint8) string {
	target := RGB{R: r, G: g, B: b}
	return processCache().GetOrCompute(target, func() string {
		res := Solve(target)
		Logger().Debug("cssfilter: cache miss", "target", target, "loss", res.Loss)
		return res.CSS()
	})
}

// Filter is FilterRGB for any image/color value. Alpha is ignored: the
// color is un-premultiplied first, and fully transparent colors map to
// black.
func Filter(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FilterRGB(n.R, n.G, n.B)
}

// CacheStats returns a snapshot of the process cache counters.
func CacheStats() Stats {
	return processCache().Stats()
}
