package logswap

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Namer computes derived log file names from a base path. The zero value is
// not usable; construct one with NewNamer. The clock is injectable so tests
// get deterministic names.
type Namer struct {
	now func() time.Time
}

// NewNamer creates a Namer using the real clock.
func NewNamer() *Namer {
	return &Namer{now: time.Now}
}

// TimestampedPath inserts the formatted current time between the file stem
// and its extension, separated by a dash:
//
//	TimestampedPath("logs/app.log", "20060102") -> "logs/app-20240115.log"
//
// An empty format selects DefaultTimestampFormat. The directory component is
// preserved as given and is not checked for existence. It fails only when
// basePath is empty.
func (n *Namer) TimestampedPath(basePath, format string) (string, error) {
	if basePath == "" {
		return "", errInvalidArgument("timestamp", "basePath cannot be empty")
	}
	if format == "" {
		format = DefaultTimestampFormat
	}

	dir, stem, ext := splitPath(basePath)
	name := fmt.Sprintf("%s-%s%s", stem, n.now().Format(format), ext)
	if dir == "" {
		return name, nil
	}
	return filepath.Join(dir, name), nil
}

// TimestampedPath is the package-level variant using the real clock.
func TimestampedPath(basePath, format string) (string, error) {
	return NewNamer().TimestampedPath(basePath, format)
}

// RotatedPath computes the numbered backup name for a base path:
//
//	RotatedPath("logs/app.log", 2) -> "logs/app.2.log"
//
// Index 1 is the most recently rotated-out file. index must be >= 1.
func RotatedPath(basePath string, index int) string {
	dir, stem, ext := splitPath(basePath)
	name := fmt.Sprintf("%s.%d%s", stem, index, ext)
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// splitPath splits a path into directory, file stem and extension. The
// extension includes the leading dot; a name without a dot has an empty
// extension. Dotfiles such as ".env" are treated as all stem. A bare file
// name yields an empty directory.
func splitPath(path string) (dir, stem, ext string) {
	dir = filepath.Dir(path)
	if dir == "." {
		dir = ""
	}
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	if ext == base {
		// The whole name is the "extension" (e.g. ".env"); keep it as stem.
		ext = ""
	}
	stem = strings.TrimSuffix(base, ext)
	return dir, stem, ext
}

// canonicalPath resolves path to its absolute cleaned form, the shape used
// as the registry key.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
