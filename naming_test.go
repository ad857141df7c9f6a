package logswap

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTimestampedPathRecoversTime(t *testing.T) {
	before := time.Now().Add(-time.Second)

	path, err := TimestampedPath("app.log", DefaultTimestampFormat)
	if err != nil {
		t.Fatalf("TimestampedPath failed: %v", err)
	}

	after := time.Now().Add(time.Second)

	// app-20240115-143052.log -> 20240115-143052
	stamp := strings.TrimSuffix(strings.TrimPrefix(path, "app-"), ".log")
	parsed, err := time.ParseInLocation(DefaultTimestampFormat, stamp, time.Local)
	if err != nil {
		t.Fatalf("Cannot parse timestamp %q back: %v", stamp, err)
	}

	if parsed.Before(before) || parsed.After(after) {
		t.Errorf("Parsed time %v outside execution window [%v, %v]", parsed, before, after)
	}
}

func TestTimestampedPathDeterministic(t *testing.T) {
	n := NewNamer()
	n.now = func() time.Time {
		return time.Date(2024, 1, 15, 14, 30, 52, 0, time.UTC)
	}

	tests := []struct {
		base   string
		format string
		want   string
	}{
		{"app.log", "", "app-20240115-143052.log"},
		{"app.log", "20060102", "app-20240115.log"},
		{"app", "20060102", "app-20240115"},
		{filepath.Join("logs", "app.log"), "20060102", filepath.Join("logs", "app-20240115.log")},
		{filepath.Join("a", "b", "app.log"), "20060102", filepath.Join("a", "b", "app-20240115.log")},
	}

	for _, tt := range tests {
		got, err := n.TimestampedPath(tt.base, tt.format)
		if err != nil {
			t.Errorf("TimestampedPath(%q, %q) failed: %v", tt.base, tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TimestampedPath(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestTimestampedPathEmptyBase(t *testing.T) {
	_, err := TimestampedPath("", "")
	if err == nil {
		t.Fatal("Expected validation error for empty base path")
	}
	if !IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRotatedPath(t *testing.T) {
	tests := []struct {
		base  string
		index int
		want  string
	}{
		{"app.log", 1, "app.1.log"},
		{"app.log", 10, "app.10.log"},
		{"app", 2, "app.2"},
		{filepath.Join("logs", "app.log"), 3, filepath.Join("logs", "app.3.log")},
		{".env", 1, ".env.1"},
	}

	for _, tt := range tests {
		if got := RotatedPath(tt.base, tt.index); got != tt.want {
			t.Errorf("RotatedPath(%q, %d) = %q, want %q", tt.base, tt.index, got, tt.want)
		}
	}
}

func TestRotatedPathSortsAfterBase(t *testing.T) {
	// Backups of the same base must not collide with the base name.
	base := "server.log"
	seen := map[string]bool{base: true}
	for i := 1; i <= 5; i++ {
		p := RotatedPath(base, i)
		if seen[p] {
			t.Fatalf("Duplicate rotated name %q", p)
		}
		seen[p] = true
	}
}
