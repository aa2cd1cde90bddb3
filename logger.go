package interleave

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/interleave/internal/logging"
)

// pkgLogger is the fallback for interleavers and loops built without
// WithLogger.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(logging.Nop())
}

// SetLogger sets the logger picked up by New and NewDemo when no
// WithLogger option is given. A nil logger silences the package again.
// Interleavers that already exist keep the logger they were built with.
//
// Frames are logged at Debug with their state-call and reset counts.
// Loop start and resizes are logged at Info, and failed frames or
// resizes at Warn.
//
//	interleave.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(logging.OrNop(l))
}

// Logger returns the logger set by SetLogger. It is safe to call from any
// goroutine.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
