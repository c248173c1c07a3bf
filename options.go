package statvec

import (
	"log/slog"
	"time"

	"github.com/hupe1980/statvec/access"
	"github.com/hupe1980/statvec/engine"
	"github.com/hupe1980/statvec/vector"
)

// DefaultWarningLogInterval is the minimum spacing of logged warnings.
const DefaultWarningLogInterval = time.Second

type options struct {
	metricsCollector   MetricsCollector
	logger             *Logger
	accessCacheSize    int
	accessMode         access.Mode
	memoryLimit        int64
	allocator          vector.Allocator
	reporter           engine.Reporter
	warningLogInterval time.Duration
}

// Option configures a Runtime.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &statvec.BasicMetricsCollector{}
//	rt := statvec.New(statvec.WithMetricsCollector(metrics))
//	// ... use rt ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ops: %d, Avg latency: %dns\n", stats.BinaryCount, stats.BinaryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := statvec.NewJSONLogger(slog.LevelInfo)
//	rt := statvec.New(statvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithAccessCacheSize bounds the number of specialized access strategies each
// operator call site keeps. Values <= 0 select access.DefaultCacheSize.
func WithAccessCacheSize(n int) Option {
	return func(o *options) {
		o.accessCacheSize = n
	}
}

// WithAccessMode overrides the STATVEC_ACCESS environment setting.
func WithAccessMode(m access.Mode) Option {
	return func(o *options) {
		o.accessMode = m
	}
}

// WithMemoryLimit caps the off-heap bytes held by foreign vectors of the
// runtime. Zero means unlimited (usage is still tracked).
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithAllocator sets the allocator behind NewForeign. The default maps
// anonymous memory outside the Go heap.
func WithAllocator(a vector.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = vector.MapAllocator{}
		}
		o.allocator = a
	}
}

// WithWarningReporter receives every warning in addition to the log.
func WithWarningReporter(r engine.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithWarningLogInterval sets the minimum spacing of warning log lines.
// Warnings in between are counted and reported with the next logged one.
func WithWarningLogInterval(d time.Duration) Option {
	return func(o *options) {
		o.warningLogInterval = d
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:   NoopMetricsCollector{},
		logger:             NoopLogger(),
		accessMode:         access.ModeFromEnv(),
		allocator:          vector.MapAllocator{},
		warningLogInterval: DefaultWarningLogInterval,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
