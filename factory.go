package logswap

import (
	"context"
	"os"
	"time"
)

// Factory composes the namer, rotator and handle constructor into the
// convenience surface most callers use. The zero configuration targets the
// process-wide output slot and registry.
type Factory struct {
	target   *OutputTarget
	registry *Registry
	namer    *Namer
	errh     ErrorHandler
}

// NewFactory creates a Factory with the given options applied.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		target:   DefaultTarget(),
		registry: DefaultRegistry(),
		namer:    NewNamer(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) report(op, path string, err error) {
	if f.errh != nil {
		f.errh(op, path, err)
		return
	}
	reportError(op, path, err)
}

// CreateTimestamped opens a redirection to basePath with the formatted
// current time inserted into the file name.
func (f *Factory) CreateTimestamped(basePath, format string) (*Handle, error) {
	path, err := f.namer.TimestampedPath(basePath, format)
	if err != nil {
		return nil, err
	}
	return OpenWith(path, f.target, f.registry)
}

// CreateRotating rotates basePath if it has reached maxSize, then opens a
// redirection to it. The handle always writes to basePath; history lives in
// the numbered siblings.
func (f *Factory) CreateRotating(basePath string, maxSize int64, maxFiles int) (*Handle, error) {
	rot, err := NewRotator(maxSize, maxFiles)
	if err != nil {
		return nil, err
	}
	if f.errh != nil {
		rot.SetErrorHandler(f.errh)
	}
	path, err := rot.EnsureUnderLimit(basePath)
	if err != nil {
		return nil, err
	}
	return OpenWith(path, f.target, f.registry)
}

// CreateTimestampedRotating timestamps the base path first, then applies the
// size check to the timestamped file before opening it.
func (f *Factory) CreateTimestampedRotating(basePath string, maxSize int64, maxFiles int, format string) (*Handle, error) {
	path, err := f.namer.TimestampedPath(basePath, format)
	if err != nil {
		return nil, err
	}
	return f.CreateRotating(path, maxSize, maxFiles)
}

// CreateWithConfig is CreateTimestampedRotating driven by a RotationConfig.
func (f *Factory) CreateWithConfig(cfg RotationConfig) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return f.CreateTimestampedRotating(cfg.Path, cfg.MaxSize, cfg.MaxFiles, cfg.TimestampFormat)
}

// CleanupRotatedFiles deletes numbered backups of basePath beyond maxFiles
// and returns how many it removed. Missing files end the scan (numbering is
// contiguous); an I/O failure stops the scan and the count achieved so far
// is returned. Only argument validation produces an error.
func (f *Factory) CleanupRotatedFiles(basePath string, maxFiles int) (int, error) {
	if basePath == "" {
		return 0, errInvalidArgument("cleanup", "basePath cannot be empty")
	}
	if maxFiles <= 0 {
		return 0, errInvalidArgument("cleanup", "maxFiles must be positive, got %d", maxFiles)
	}

	removed := 0
	for i := maxFiles + 1; ; i++ {
		path := RotatedPath(basePath, i)
		if !fileExists(path) {
			break
		}
		if err := os.Remove(path); err != nil {
			f.report("cleanup", path, err)
			return removed, nil
		}
		removed++
	}
	return removed, nil
}

// Info summarizes the on-disk rotated file set of a base path.
type Info struct {
	FileCount  int
	TotalSize  int64
	OldestPath string
	NewestPath string
}

// RotationInfo scans the base file and its contiguous numbered backups,
// stopping at the first gap. The base file is the newest member of the set,
// the highest-numbered backup the oldest. Any enumeration failure yields the
// zero Info; it never fails.
func (f *Factory) RotationInfo(basePath string) Info {
	var info Info
	if basePath == "" {
		return info
	}

	if fi, err := os.Stat(basePath); err == nil && !fi.IsDir() {
		info.FileCount++
		info.TotalSize += fi.Size()
		info.NewestPath = basePath
		info.OldestPath = basePath
	}

	for i := 1; ; i++ {
		path := RotatedPath(basePath, i)
		fi, err := os.Stat(path)
		if err != nil || fi.IsDir() {
			break
		}
		info.FileCount++
		info.TotalSize += fi.Size()
		if info.NewestPath == "" {
			info.NewestPath = path
		}
		info.OldestPath = path
	}
	return info
}

// CreateTemporary opens a redirection to basePath, keeps it active for the
// given duration without blocking other work, then releases it. The handle
// is released on every exit path, including cancellation; the returned error
// is the context's error when the wait was cancelled.
func (f *Factory) CreateTemporary(ctx context.Context, basePath string, d time.Duration) error {
	h, err := OpenWith(basePath, f.target, f.registry)
	if err != nil {
		return err
	}
	defer h.Release()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var defaultFactory = NewFactory()

// Package-level convenience functions against the default factory.

// CreateTimestamped opens a timestamped redirection via the default factory.
func CreateTimestamped(basePath, format string) (*Handle, error) {
	return defaultFactory.CreateTimestamped(basePath, format)
}

// CreateRotating opens a size-rotating redirection via the default factory.
func CreateRotating(basePath string, maxSize int64, maxFiles int) (*Handle, error) {
	return defaultFactory.CreateRotating(basePath, maxSize, maxFiles)
}

// CreateTimestampedRotating combines both via the default factory.
func CreateTimestampedRotating(basePath string, maxSize int64, maxFiles int, format string) (*Handle, error) {
	return defaultFactory.CreateTimestampedRotating(basePath, maxSize, maxFiles, format)
}

// CleanupRotatedFiles removes excess backups via the default factory.
func CleanupRotatedFiles(basePath string, maxFiles int) (int, error) {
	return defaultFactory.CleanupRotatedFiles(basePath, maxFiles)
}

// RotationInfo summarizes a rotated file set via the default factory.
func RotationInfo(basePath string) Info {
	return defaultFactory.RotationInfo(basePath)
}

// CreateTemporary opens a time-bounded redirection via the default factory.
func CreateTemporary(ctx context.Context, basePath string, d time.Duration) error {
	return defaultFactory.CreateTemporary(ctx, basePath, d)
}
