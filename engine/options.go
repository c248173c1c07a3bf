package engine

import "github.com/hupe1980/statvec/access"

type config struct {
	cacheSize int
	mode      access.Mode
	reporter  Reporter
	metrics   MetricsObserver
}

func newConfig(opts []Option) config {
	cfg := config{
		cacheSize: access.DefaultCacheSize,
		mode:      access.ModeFromEnv(),
		reporter:  noopReporter{},
		metrics:   &NoopMetricsObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a node.
type Option func(*config)

// WithCacheSize sets the bound of each access cache of a node.
func WithCacheSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// WithAccessMode overrides the access mode otherwise read from STATVEC_ACCESS.
func WithAccessMode(m access.Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithReporter sets the warning reporter.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithMetricsObserver sets the metrics observer.
func WithMetricsObserver(o MetricsObserver) Option {
	return func(c *config) {
		if o != nil {
			c.metrics = o
		}
	}
}
