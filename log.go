package owned

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the package's logger. It is safe to call while
// handles are in use on other goroutines. A nil logger restores the default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
