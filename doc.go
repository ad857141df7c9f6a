// Package logswap redirects a process-wide output target to log files and
// rotates those files on disk. It manages a single mutable output slot,
// tracks how many independent callers are redirecting to the same file, and
// keeps a size-limited set of numbered backups next to each log file.
//
// Key Features:
//
//   - Process-wide output slot with atomic swap and restore
//   - Caller-owned redirection handles with idempotent release
//   - Size-based rotation with numbered backups (app.1.log ... app.N.log)
//   - Retention by backup count; oldest backup dropped first
//   - Timestamped log file names with a caller-supplied layout
//   - Per-path active-handle counting for introspection
//   - Advisory file locks (flock) coordinating appends and rotation
//     across processes
//   - Best-effort finalizer cleanup when a caller forgets Release
//
// Basic Usage:
//
//	h, err := logswap.Open("/var/log/app.log")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer h.Release()
//
//	fmt.Fprintln(logswap.DefaultTarget(), "now written to app.log")
//
// Rotation and Timestamps:
//
//	// Rotate app.log into app.1.log once it reaches 10MB, keep 5 backups.
//	h, err := logswap.CreateRotating("/var/log/app.log", 10*1024*1024, 5)
//
//	// Open app-20240115-143052.log instead of app.log.
//	h, err := logswap.CreateTimestamped("/var/log/app.log", "")
//
// Introspection:
//
//	n := logswap.DefaultRegistry().CountFor(h.Path())
//	info := logswap.RotationInfo("/var/log/app.log")
//
// Handles are strictly stack-scoped: release them in reverse creation order.
// Each handle restores the exact output target it captured at open time, so
// interleaved lifetimes restore stale targets. See Handle for the full
// contract.
package logswap
