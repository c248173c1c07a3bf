package engine

import (
	"errors"
	"fmt"

	"github.com/hupe1980/statvec/model"
)

var (
	// ErrInvalidOperand is returned for operands that are neither vectors,
	// boxed elements nor NULL.
	ErrInvalidOperand = errors.New("engine: invalid operand")
	// ErrNotBinary is returned when a unary operator is used as binary.
	ErrNotBinary = errors.New("engine: operator is not binary")
	// ErrNotUnary is returned when a binary operator is used as unary.
	ErrNotUnary = errors.New("engine: operator is not unary")
)

// IncompatibleKindError reports operand kinds an operator cannot combine.
//
// errors.Is(err, model.ErrIncompatibleKind) holds for every IncompatibleKindError.
type IncompatibleKindError struct {
	Op    Op
	Left  model.Kind
	Right model.Kind
}

func (e *IncompatibleKindError) Error() string {
	if e.Op.IsUnary() {
		return fmt.Sprintf("invalid argument to unary operator %q: %s", e.Op.Symbol(), e.Left)
	}
	return fmt.Sprintf("invalid arguments to binary operator %q: %s and %s", e.Op.Symbol(), e.Left, e.Right)
}

func (e *IncompatibleKindError) Unwrap() error { return model.ErrIncompatibleKind }
