package logswap

// RotationConfig bundles the parameters of a timestamped, rotating
// redirection. It is a plain value object; two configs with equal fields are
// interchangeable.
type RotationConfig struct {
	// Path is the base log file path.
	Path string

	// MaxSize is the size in bytes at which the file is rotated. Must be
	// positive.
	MaxSize int64

	// MaxFiles is the number of numbered backups retained. Must be
	// positive.
	MaxFiles int

	// TimestampFormat is the time layout inserted into the file name.
	// Empty selects DefaultTimestampFormat.
	TimestampFormat string
}

// DefaultRotationConfig returns a config for path with the package defaults:
// 10MB size limit, 5 retained backups and the default timestamp layout.
func DefaultRotationConfig(path string) RotationConfig {
	return RotationConfig{
		Path:            path,
		MaxSize:         defaultMaxSize,
		MaxFiles:        defaultMaxFiles,
		TimestampFormat: DefaultTimestampFormat,
	}
}

// Validate checks the config before any I/O is attempted.
func (c RotationConfig) Validate() error {
	if c.Path == "" {
		return errInvalidArgument("config", "Path cannot be empty")
	}
	if c.MaxSize <= 0 {
		return errInvalidArgument("config", "MaxSize must be positive, got %d", c.MaxSize)
	}
	if c.MaxFiles <= 0 {
		return errInvalidArgument("config", "MaxFiles must be positive, got %d", c.MaxFiles)
	}
	return nil
}
