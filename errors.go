package statvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statvec/internal/resource"
)

var (
	// ErrClosed is returned when using a Runtime after Close.
	ErrClosed = errors.New("runtime is closed")

	// ErrUnknownOperator is returned by Eval for symbols not in the registry.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrArity is returned by Eval for anything other than one or two operands.
	ErrArity = errors.New("operators take one or two operands")

	// ErrMemoryLimitExceeded is returned when a foreign allocation would
	// exceed the limit set with WithMemoryLimit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// ErrOperator reports a symbol that has no operator of the requested arity.
//
// errors.Is(err, ErrUnknownOperator) holds for every ErrOperator.
type ErrOperator struct {
	Symbol string
	Arity  int
}

func (e *ErrOperator) Error() string {
	kind := "binary"
	if e.Arity == 1 {
		kind = "unary"
	}
	return fmt.Sprintf("unknown %s operator %q", kind, e.Symbol)
}

func (e *ErrOperator) Unwrap() error { return ErrUnknownOperator }
