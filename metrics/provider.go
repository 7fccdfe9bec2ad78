// Package metrics defines the instrument vocabulary the pool records
// into, with a noop provider as the default and a basic in-memory
// provider for tests and lightweight embedding applications.
package metrics

// Provider constructs instruments used to record measurements.
// Implementations must be safe for concurrent use, and must return the
// same instrument for the same name on repeated calls.
//
// The interface is intentionally minimal. New capabilities should arrive
// as separate optional interfaces rather than expansions of this one.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts. Safe for concurrent use.
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move both ways, e.g. current
// in-flight tasks. Safe for concurrent use.
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements, e.g. run
// durations in seconds. Safe for concurrent use.
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries advisory instrument metadata. Providers may
// ignore it.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
