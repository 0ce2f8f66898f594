package polyline

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog never
// builds the record in the first place.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current is swapped by SetLogger while Simplify and the plotting code may
// be reading it.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes diagnostics from this package, wave and render to l.
// A nil l turns logging off again, which is also the initial state.
//
// Records are emitted at:
//   - [slog.LevelDebug]: one record per Simplify or Samples call with the
//     point counts and epsilon
//   - [slog.LevelInfo]: a PNG or SVG file was written
//   - [slog.LevelWarn]: a plot had nothing drawable
//
// To see everything on stderr:
//
//	polyline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
