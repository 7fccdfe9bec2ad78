package threadpool

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/threadpool/metrics"
)

// config holds ThreadPool configuration.
type config struct {
	// QueueCapacity defines the initial backing capacity of the task
	// queue. The queue grows past it as needed; this only avoids early
	// reallocations.
	// Default: 16.
	QueueCapacity uint

	// Metrics provides instruments recording pool activity.
	// Default: metrics.NoopProvider (discards everything).
	Metrics metrics.Provider
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		QueueCapacity: 16,
		Metrics:       metrics.NewNoopProvider(),
	}
}

// validateConfig performs lightweight invariants checks.
func validateConfig(cfg *config) error {
	if cfg.Metrics == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider must not be nil"))
	}
	return nil
}

// Option configures a ThreadPool. Use New(poolSize, opts...) to construct
// a pool via options. Options return an error on invalid input instead of
// panicking.
type Option func(*config) error

// WithQueueCapacity sets the initial backing capacity of the task queue.
// Zero is valid; the queue allocates on first submission.
func WithQueueCapacity(n uint) Option {
	return func(cfg *config) error { cfg.QueueCapacity = n; return nil }
}

// WithMetrics wires a metrics provider. Instruments are created once at
// pool construction and shared by all tasks.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}
