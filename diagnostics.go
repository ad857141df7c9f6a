package logswap

import (
	"fmt"
	"os"
	"sync"
)

// ErrorHandler receives failures from best-effort code paths (rotation,
// release, cleanup) that must not propagate to the caller. Handlers must not
// panic.
type ErrorHandler func(op, path string, err error)

// stderrErrorHandler is the default diagnostics sink.
func stderrErrorHandler(op, path string, err error) {
	fmt.Fprintf(os.Stderr, "logswap: %s %s: %v\n", op, path, err)
}

var (
	errorHandlerMu sync.RWMutex
	errorHandler   ErrorHandler = stderrErrorHandler
)

// SetErrorHandler replaces the package-level diagnostics handler used by the
// default factory, handles and rotation helpers. A nil handler silences
// diagnostics.
func SetErrorHandler(h ErrorHandler) {
	errorHandlerMu.Lock()
	if h == nil {
		h = func(string, string, error) {}
	}
	errorHandler = h
	errorHandlerMu.Unlock()
}

// reportError forwards a best-effort failure to the package-level handler.
func reportError(op, path string, err error) {
	errorHandlerMu.RLock()
	h := errorHandler
	errorHandlerMu.RUnlock()
	h(op, path, err)
}
