package logswap

import "time"

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithTarget makes the factory's handles redirect the given target slot
// instead of the process-wide default.
func WithTarget(target *OutputTarget) FactoryOption {
	return func(f *Factory) {
		if target != nil {
			f.target = target
		}
	}
}

// WithRegistry makes the factory's handles register in the given registry
// instead of the process-wide default.
func WithRegistry(registry *Registry) FactoryOption {
	return func(f *Factory) {
		if registry != nil {
			f.registry = registry
		}
	}
}

// WithClock replaces the clock used for timestamped file names. Tests use it
// for deterministic names.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) {
		if now != nil {
			f.namer = &Namer{now: now}
		}
	}
}

// WithErrorHandler routes the factory's best-effort failure diagnostics to h
// instead of the package-level handler.
func WithErrorHandler(h ErrorHandler) FactoryOption {
	return func(f *Factory) {
		f.errh = h
	}
}
