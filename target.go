package logswap

import (
	"io"
	"os"
	"sync"
)

// OutputTarget is the process-wide mutable output slot. Handles swap their
// file sink into it on open and restore the captured previous writer on
// release. All reads and writes of the slot go through one mutex so two
// handles can never race a read-modify-write of the slot.
//
// OutputTarget itself implements io.Writer by delegating to the current
// writer, so a program wires it up once (for example with log.SetOutput)
// and redirection happens behind it.
type OutputTarget struct {
	mu sync.Mutex
	w  io.Writer
}

// NewOutputTarget creates an OutputTarget initialized with w. A nil writer
// defaults to io.Discard.
func NewOutputTarget(w io.Writer) *OutputTarget {
	if w == nil {
		w = io.Discard
	}
	return &OutputTarget{w: w}
}

// Current returns the writer the slot currently points at.
func (t *OutputTarget) Current() io.Writer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w
}

// Set replaces the current writer. A nil writer is replaced by io.Discard.
func (t *OutputTarget) Set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	t.mu.Lock()
	t.w = w
	t.mu.Unlock()
}

// Swap atomically installs w and returns the writer that was active
// immediately before. This is the only primitive handles use, so capture and
// install cannot interleave with another handle's swap.
func (t *OutputTarget) Swap(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	t.mu.Lock()
	previous := t.w
	t.w = w
	t.mu.Unlock()
	return previous
}

// Write writes to the current writer. Safe for concurrent use.
func (t *OutputTarget) Write(p []byte) (int, error) {
	t.mu.Lock()
	w := t.w
	t.mu.Unlock()
	return w.Write(p)
}

var defaultTarget = NewOutputTarget(os.Stdout)

// DefaultTarget returns the process-wide output target used by Open and the
// package-level factory functions. It starts out pointing at os.Stdout.
func DefaultTarget() *OutputTarget {
	return defaultTarget
}
