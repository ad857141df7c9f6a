package logswap

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// fileSink is a buffered append-mode file writer. Each handle owns its own
// sink even when several handles target the same path; cross-process and
// cross-handle appends are coordinated through an advisory lock on the
// sibling lock file, never through a shared writer.
//
// The mutex serializes Write, Flush and Close within the process, so a
// writer mid-append can never race the owner closing the sink. The advisory
// lock is held wherever buffered bytes can reach the file - Write (a full
// buffer flushes implicitly), Flush and Close - so rotation cannot rename
// the file out from under an in-flight append.
type fileSink struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	writer *bufio.Writer
	lock   *flock.Flock
}

// newFileSink opens path for append, creating missing parent directories.
// The file is opened without an exclusive OS lock so other processes and
// handles can append concurrently.
func newFileSink(path string) (*fileSink, error) {
	dir := filepath.Dir(path)
	// #nosec G301 - log directories need to be accessible by other processes
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, ErrFileOpen(path, errors.Wrap(err, "create directory"))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) // #nosec G302 - log files need to be readable
	if err != nil {
		return nil, ErrFileOpen(path, err)
	}

	return &fileSink{
		path:   path,
		file:   file,
		writer: bufio.NewWriterSize(file, defaultBufferSize),
		lock:   flock.New(path + lockSuffix),
	}, nil
}

// Write appends p under the advisory lock.
func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return 0, NewError(ErrCodeFileLock, "lock", s.path, err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	return s.writer.Write(p)
}

// Flush forces buffered bytes to the file under the advisory lock.
func (s *fileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return NewError(ErrCodeFileLock, "lock", s.path, err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	if err := s.writer.Flush(); err != nil {
		return ErrFileFlush(s.path, err)
	}
	return nil
}

// Close flushes and closes the file. All steps are attempted even when an
// earlier one fails; the first failure is returned. A failed lock
// acquisition does not stop the close, since release paths must make
// progress.
func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error

	lockErr := s.lock.Lock()
	if lockErr != nil {
		firstErr = NewError(ErrCodeFileLock, "lock", s.path, lockErr)
	}
	if err := s.writer.Flush(); err != nil && firstErr == nil {
		firstErr = ErrFileFlush(s.path, err)
	}
	if lockErr == nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = NewError(ErrCodeFileLock, "unlock", s.path, err)
		}
	}
	if err := s.file.Close(); err != nil && firstErr == nil {
		firstErr = NewError(ErrCodeFileClose, "close", s.path, err)
	}
	return firstErr
}
