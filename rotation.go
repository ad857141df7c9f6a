package logswap

import (
	"os"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// Rotator applies a size limit and retention count to a log file using
// numbered backups: base.1.ext is the newest backup, base.N.ext the oldest.
// Numbering stays contiguous from 1 while the rotator is the only mutator of
// the directory.
type Rotator struct {
	maxSize  int64
	maxFiles int
	errh     ErrorHandler
}

// NewRotator creates a Rotator. maxSize and maxFiles must both be positive.
func NewRotator(maxSize int64, maxFiles int) (*Rotator, error) {
	if maxSize <= 0 {
		return nil, errInvalidArgument("rotate", "maxSize must be positive, got %d", maxSize)
	}
	if maxFiles <= 0 {
		return nil, errInvalidArgument("rotate", "maxFiles must be positive, got %d", maxFiles)
	}
	return &Rotator{maxSize: maxSize, maxFiles: maxFiles}, nil
}

// SetErrorHandler routes this rotator's diagnostics to h instead of the
// package-level handler.
func (r *Rotator) SetErrorHandler(h ErrorHandler) {
	r.errh = h
}

func (r *Rotator) report(op, path string, err error) {
	if r.errh != nil {
		r.errh(op, path, err)
		return
	}
	reportError(op, path, err)
}

// EnsureUnderLimit rotates basePath if its on-disk size has reached the
// rotator's limit and returns basePath, which is always the file the caller
// should write to afterwards. A missing or under-limit file is left alone.
//
// Rotation is best-effort: any failing step aborts the remaining steps,
// reports the failure for diagnostics and leaves the base file in place, so
// the caller keeps logging even when rotation loses a race to a locked or
// removed file.
func (r *Rotator) EnsureUnderLimit(basePath string) (string, error) {
	if basePath == "" {
		return "", errInvalidArgument("rotate", "basePath cannot be empty")
	}

	// Operate on the canonical path so the rotation lock is the same lock
	// file the sinks append under.
	base, err := canonicalPath(basePath)
	if err != nil {
		r.report("rotate", basePath, errors.Wrap(err, "resolve path"))
		return basePath, nil
	}

	info, err := os.Stat(base)
	if err != nil {
		// A missing file needs no rotation; anything else is reported but
		// still treated as "nothing to do".
		if !os.IsNotExist(err) {
			r.report("stat", base, NewError(ErrCodeFileStat, "stat", base, err))
		}
		return base, nil
	}
	if info.Size() < r.maxSize {
		return base, nil
	}

	// The sibling lock file coordinates rotation with appends from other
	// processes. Contention means someone else is busy with the file;
	// skipping this rotation is preferable to blocking the caller.
	lock := flock.New(base + lockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		r.report("rotate", base, errors.Wrap(err, "acquire rotation lock"))
		return base, nil
	}
	if !locked {
		return base, nil
	}
	defer func() {
		_ = lock.Unlock()
	}()

	r.rotate(base)
	return base, nil
}

// rotate performs the shift sequence: drop the oldest backup, shift the rest
// one slot up, then move the base file into slot 1. Not atomic across the
// set; the first failing step stops the sequence.
func (r *Rotator) rotate(basePath string) {
	oldest := RotatedPath(basePath, r.maxFiles)
	if fileExists(oldest) {
		if err := os.Remove(oldest); err != nil {
			r.report("rotate", basePath, ErrFileRotate(basePath, errors.Wrap(err, "remove oldest backup")))
			return
		}
	}

	for i := r.maxFiles - 1; i >= 1; i-- {
		src := RotatedPath(basePath, i)
		if !fileExists(src) {
			continue
		}
		dst := RotatedPath(basePath, i+1)
		if err := replaceFile(src, dst); err != nil {
			r.report("rotate", basePath, ErrFileRotate(basePath, errors.Wrapf(err, "shift backup %d", i)))
			return
		}
	}

	if err := replaceFile(basePath, RotatedPath(basePath, 1)); err != nil {
		r.report("rotate", basePath, ErrFileRotate(basePath, errors.Wrap(err, "move base file to slot 1")))
	}
}

// EnsureUnderLimit is the package-level convenience form.
func EnsureUnderLimit(basePath string, maxSize int64, maxFiles int) (string, error) {
	rot, err := NewRotator(maxSize, maxFiles)
	if err != nil {
		return "", err
	}
	return rot.EnsureUnderLimit(basePath)
}

// replaceFile moves src to dst, deleting a stale dst first so the rename
// also succeeds on filesystems that refuse to rename onto an existing file.
func replaceFile(src, dst string) error {
	if fileExists(dst) {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}
	return os.Rename(src, dst)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
