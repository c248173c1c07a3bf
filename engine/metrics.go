package engine

import (
	"time"

	"github.com/hupe1980/statvec/model"
)

// Operand identifies an operand position.
type Operand uint8

const (
	// Left is the first operand.
	Left Operand = iota
	// Right is the second operand.
	Right
)

// String returns "left" or "right".
func (o Operand) String() string {
	if o == Left {
		return "left"
	}
	return "right"
}

// MetricsObserver defines the interface for observing engine events.
type MetricsObserver interface {
	// OnBinary is called after every binary invocation.
	OnBinary(op Op, kind model.Kind, length int, duration time.Duration, err error)

	// OnUnary is called after every unary invocation.
	OnUnary(op Op, kind model.Kind, length int, duration time.Duration, err error)

	// OnFold is called when an invocation folds sequences instead of materializing.
	OnFold(op Op)

	// OnAlias is called when an operand buffer is reused as the result.
	OnAlias(op Op, operand Operand)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (o *NoopMetricsObserver) OnBinary(op Op, kind model.Kind, length int, duration time.Duration, err error) {
}
func (o *NoopMetricsObserver) OnUnary(op Op, kind model.Kind, length int, duration time.Duration, err error) {
}
func (o *NoopMetricsObserver) OnFold(op Op)                   {}
func (o *NoopMetricsObserver) OnAlias(op Op, operand Operand) {}
