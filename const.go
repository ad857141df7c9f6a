package logswap

const (
	defaultMaxSize    = 10 * 1024 * 1024 // 10MB
	defaultMaxFiles   = 5
	defaultBufferSize = 32 * 1024 // 32KB

	// lockSuffix is appended to a log path to form its sibling lock file.
	// The same lock file coordinates appends and rotation across processes.
	lockSuffix = ".lock"
)

// DefaultTimestampFormat is the time layout used for timestamped log file
// names when the caller does not supply one. The format is sortable.
// Example: "20060102-150405" produces "20240115-143052".
const DefaultTimestampFormat = "20060102-150405"
