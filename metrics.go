package statvec

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hupe1980/statvec/engine"
	"github.com/hupe1980/statvec/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    ops      *prometheus.CounterVec
//	    duration *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordBinary(op engine.Op, kind model.Kind, length int, d time.Duration, err error) {
//	    p.ops.WithLabelValues(op.Name()).Inc()
//	    p.duration.WithLabelValues(op.Name()).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordBinary is called after each binary operation.
	// kind and length describe the result; err is nil if successful.
	RecordBinary(op engine.Op, kind model.Kind, length int, duration time.Duration, err error)

	// RecordUnary is called after each unary operation.
	RecordUnary(op engine.Op, kind model.Kind, length int, duration time.Duration, err error)

	// RecordFold is called when an operation is answered by a folded sequence.
	RecordFold(op engine.Op)

	// RecordAlias is called when an operand is reused as the result buffer.
	RecordAlias(op engine.Op, operand engine.Operand)

	// RecordForeign is called after each off-heap allocation.
	RecordForeign(kind model.Kind, bytes int64, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBinary(engine.Op, model.Kind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordUnary(engine.Op, model.Kind, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordFold(engine.Op)                                          {}
func (NoopMetricsCollector) RecordAlias(engine.Op, engine.Operand)                         {}
func (NoopMetricsCollector) RecordForeign(model.Kind, int64, error)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BinaryCount      atomic.Int64
	BinaryErrors     atomic.Int64
	BinaryTotalNanos atomic.Int64
	BinaryElements   atomic.Int64
	UnaryCount       atomic.Int64
	UnaryErrors      atomic.Int64
	UnaryTotalNanos  atomic.Int64
	FoldCount        atomic.Int64
	AliasCount       atomic.Int64
	ForeignCount     atomic.Int64
	ForeignErrors    atomic.Int64
	ForeignBytes     atomic.Int64
}

// RecordBinary implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBinary(_ engine.Op, _ model.Kind, length int, duration time.Duration, err error) {
	b.BinaryCount.Add(1)
	b.BinaryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BinaryErrors.Add(1)
		return
	}
	b.BinaryElements.Add(int64(length))
}

// RecordUnary implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnary(_ engine.Op, _ model.Kind, _ int, duration time.Duration, err error) {
	b.UnaryCount.Add(1)
	b.UnaryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UnaryErrors.Add(1)
	}
}

// RecordFold implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFold(engine.Op) {
	b.FoldCount.Add(1)
}

// RecordAlias implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlias(engine.Op, engine.Operand) {
	b.AliasCount.Add(1)
}

// RecordForeign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordForeign(_ model.Kind, bytes int64, err error) {
	b.ForeignCount.Add(1)
	if err != nil {
		b.ForeignErrors.Add(1)
		return
	}
	b.ForeignBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BinaryCount:    b.BinaryCount.Load(),
		BinaryErrors:   b.BinaryErrors.Load(),
		BinaryAvgNanos: avg(b.BinaryTotalNanos.Load(), b.BinaryCount.Load()),
		BinaryElements: b.BinaryElements.Load(),
		UnaryCount:     b.UnaryCount.Load(),
		UnaryErrors:    b.UnaryErrors.Load(),
		UnaryAvgNanos:  avg(b.UnaryTotalNanos.Load(), b.UnaryCount.Load()),
		FoldCount:      b.FoldCount.Load(),
		AliasCount:     b.AliasCount.Load(),
		ForeignCount:   b.ForeignCount.Load(),
		ForeignErrors:  b.ForeignErrors.Load(),
		ForeignBytes:   b.ForeignBytes.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BinaryCount    int64
	BinaryErrors   int64
	BinaryAvgNanos int64
	BinaryElements int64
	UnaryCount     int64
	UnaryErrors    int64
	UnaryAvgNanos  int64
	FoldCount      int64
	AliasCount     int64
	ForeignCount   int64
	ForeignErrors  int64
	ForeignBytes   int64
}

// observer forwards engine events to the collector and the logger.
type observer struct {
	metrics MetricsCollector
	logger  *Logger
}

func (o *observer) OnBinary(op engine.Op, kind model.Kind, length int, duration time.Duration, err error) {
	o.metrics.RecordBinary(op, kind, length, duration, err)
	o.logger.LogBinary(context.Background(), op, kind, length, err)
}

func (o *observer) OnUnary(op engine.Op, kind model.Kind, length int, duration time.Duration, err error) {
	o.metrics.RecordUnary(op, kind, length, duration, err)
	o.logger.LogUnary(context.Background(), op, kind, length, err)
}

func (o *observer) OnFold(op engine.Op)                          { o.metrics.RecordFold(op) }
func (o *observer) OnAlias(op engine.Op, operand engine.Operand) { o.metrics.RecordAlias(op, operand) }
