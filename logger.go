package cssfilter

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so disabled
// Debug calls in the solver loop cost one atomic load and a branch.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var (
	silent    = slog.New(discardHandler{})
	activeLog atomic.Pointer[slog.Logger]
)

func init() {
	activeLog.Store(silent)
}

// SetLogger routes cssfilter diagnostics to l; nil silences them again.
// The package is silent until SetLogger is called.
//
// Records are emitted at two levels. Debug carries one record per local
// search with its seed, loss, iteration count and convergence, plus matching
// seeds, early exits and cache misses. Warn reports a local search that
// could not start.
//
//	cssfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLog.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
// It may be called from any goroutine.
func Logger() *slog.Logger {
	return activeLog.Load()
}
