package logswap

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
)

// Handle represents one active redirection of the process-wide output target
// to a file. The caller that opened it owns it exclusively and must release
// it when done.
//
// Handles are strictly stack-scoped: each one captures the target that was
// active at open time and restores exactly that value on release. Releasing
// handles in an order other than reverse creation order restores a stale
// target and discards the setup of handles opened later; nesting the
// lifetimes correctly is the caller's responsibility.
type Handle struct {
	mu       sync.Mutex
	path     string // canonical absolute path
	sink     *fileSink
	previous io.Writer
	target   *OutputTarget
	registry *Registry
	released bool
}

// Open redirects the default output target to filePath and returns the
// owning handle. Missing parent directories are created; the file is opened
// for append with shared access so concurrent appenders do not fail on an
// exclusive lock. It fails with a validation error for an empty or malformed
// path and with a file-open error when the file cannot be created.
func Open(filePath string) (*Handle, error) {
	return OpenWith(filePath, DefaultTarget(), DefaultRegistry())
}

// OpenWith is Open against an explicit target slot and registry. A nil
// target or registry selects the process-wide default. Tests use it to
// redirect a private target instead of the real one.
func OpenWith(filePath string, target *OutputTarget, registry *Registry) (*Handle, error) {
	if filePath == "" {
		return nil, errInvalidArgument("open", "filePath cannot be empty")
	}
	if strings.ContainsRune(filePath, 0) {
		return nil, errInvalidArgument("open", "filePath contains a NUL byte")
	}
	if target == nil {
		target = DefaultTarget()
	}
	if registry == nil {
		registry = DefaultRegistry()
	}

	canonical, err := canonicalPath(filePath)
	if err != nil {
		return nil, ErrFileOpen(filePath, err)
	}

	sink, err := newFileSink(canonical)
	if err != nil {
		return nil, err
	}

	h := &Handle{
		path:     canonical,
		sink:     sink,
		target:   target,
		registry: registry,
	}

	// Register only once the sink exists, so a failed open never leaves a
	// residual registry entry.
	registry.Register(canonical)
	h.previous = target.Swap(h)

	// Safety net for callers that forget Release. It can only fire once
	// the handle is unreachable - not while the handle is still installed
	// in the target slot or captured as a later handle's previous target -
	// and its timing is up to the collector. Explicit Release remains the
	// contract.
	runtime.SetFinalizer(h, (*Handle).Release)

	return h, nil
}

// Path returns the canonical absolute path this handle writes to.
func (h *Handle) Path() string {
	return h.path
}

// Write appends p to the handle's file. It is the writer installed in the
// output target while the handle is active. Returns ErrReleased after
// Release.
func (h *Handle) Write(p []byte) (int, error) {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return 0, ErrReleased
	}
	sink := h.sink
	h.mu.Unlock()

	return sink.Write(p)
}

// Flush forces buffered bytes to disk. Returns ErrReleased after Release.
func (h *Handle) Flush() error {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return ErrReleased
	}
	sink := h.sink
	h.mu.Unlock()

	return sink.Flush()
}

// FileSize returns the current on-disk size of the target file, or 0 if the
// file does not exist or cannot be statted. Intended for monitoring; it
// never fails.
func (h *Handle) FileSize() int64 {
	info, err := os.Stat(h.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Released reports whether Release has run.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// Release restores the output target captured at open time, flushes and
// closes the file, and deregisters the handle. It is idempotent: the second
// and later calls are no-ops. Failures while closing the sink are reported
// for diagnostics only and never propagate, since Release typically runs
// from cleanup paths.
//
// A finalizer invokes Release for handles whose owner never called it. That
// fallback runs only after the handle becomes unreachable, which cannot
// happen while it is still installed in the output target or referenced as
// another handle's previous target; it is a safety net, not a substitute
// for calling Release.
func (h *Handle) Release() {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return
	}
	h.released = true
	h.mu.Unlock()

	runtime.SetFinalizer(h, nil)

	h.target.Set(h.previous)
	if err := h.sink.Close(); err != nil {
		reportError("release", h.path, err)
	}
	h.registry.Release(h.path)
}

// Close releases the handle and always returns nil. It exists so a handle
// satisfies io.Closer and works with defer-Close call sites.
func (h *Handle) Close() error {
	h.Release()
	return nil
}
