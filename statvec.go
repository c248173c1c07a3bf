package statvec

import (
	"fmt"
	"sync"

	"github.com/hupe1980/statvec/access"
	"github.com/hupe1980/statvec/engine"
	"github.com/hupe1980/statvec/internal/resource"
	"github.com/hupe1980/statvec/model"
)

// Runtime evaluates elementwise operators with shared configuration. It keeps
// one node per operator, so repeated calls reuse the specialized access
// strategies of earlier calls.
//
// A Runtime is a single evaluation context: Binary, Unary and Eval must not be
// called concurrently. Independent runtimes may run on separate goroutines
// over disjoint vectors.
type Runtime struct {
	opts       options
	ctrl       *resource.Controller
	observer   *observer
	warnings   *warningLog
	registry   *engine.Registry
	engineOpts []engine.Option

	binary map[engine.Op]*engine.BinaryNode
	unary  map[engine.Op]*engine.UnaryNode

	mu      sync.Mutex
	handles map[*budgetHandle]struct{}
	closed  bool
}

// New creates a Runtime.
func New(optFns ...Option) *Runtime {
	o := applyOptions(optFns)
	rt := &Runtime{
		opts:     o,
		ctrl:     resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
		observer: &observer{metrics: o.metricsCollector, logger: o.logger},
		warnings: newWarningLog(o.logger, o.reporter, o.warningLogInterval),
		registry: engine.DefaultRegistry(),
		binary:   make(map[engine.Op]*engine.BinaryNode),
		unary:    make(map[engine.Op]*engine.UnaryNode),
		handles:  make(map[*budgetHandle]struct{}),
	}
	rt.engineOpts = []engine.Option{
		engine.WithCacheSize(o.accessCacheSize),
		engine.WithAccessMode(o.accessMode),
		engine.WithReporter(rt.warnings),
		engine.WithMetricsObserver(rt.observer),
	}
	return rt
}

// Binary applies op to a and b.
func (rt *Runtime) Binary(op engine.Op, a, b model.Value) (model.Value, error) {
	if rt.isClosed() {
		return nil, ErrClosed
	}
	n, ok := rt.binary[op]
	if !ok {
		var err error
		if n, err = engine.NewBinaryNode(op, rt.engineOpts...); err != nil {
			return nil, err
		}
		rt.binary[op] = n
	}
	return n.Apply(a, b)
}

// Unary applies op to a.
func (rt *Runtime) Unary(op engine.Op, a model.Value) (model.Value, error) {
	if rt.isClosed() {
		return nil, ErrClosed
	}
	n, ok := rt.unary[op]
	if !ok {
		var err error
		if n, err = engine.NewUnaryNode(op, rt.engineOpts...); err != nil {
			return nil, err
		}
		rt.unary[op] = n
	}
	return n.Apply(a)
}

// Eval applies the operator named by symbol. One operand selects the unary
// operator, two the binary one.
//
//	rt.Eval("+", x, y)
//	rt.Eval("-", x)
//	rt.Eval("round", x)
func (rt *Runtime) Eval(symbol string, operands ...model.Value) (model.Value, error) {
	switch len(operands) {
	case 1:
		op, ok := rt.registry.Unary(symbol)
		if !ok {
			return nil, &ErrOperator{Symbol: symbol, Arity: 1}
		}
		return rt.Unary(op, operands[0])
	case 2:
		op, ok := rt.registry.Binary(symbol)
		if !ok {
			return nil, &ErrOperator{Symbol: symbol, Arity: 2}
		}
		return rt.Binary(op, operands[0], operands[1])
	default:
		return nil, fmt.Errorf("%w: got %d", ErrArity, len(operands))
	}
}

// AccessStats sums the access cache counters of all nodes.
func (rt *Runtime) AccessStats() access.Stats {
	var out access.Stats
	add := func(s access.Stats) {
		out.Hits += s.Hits
		out.Specializations += s.Specializations
		out.Generic += s.Generic
	}
	for _, n := range rt.binary {
		add(n.Stats())
	}
	for _, n := range rt.unary {
		add(n.Stats())
	}
	return out
}

// SuppressedWarnings returns the number of warnings the log throttle has
// dropped since the last logged warning.
func (rt *Runtime) SuppressedWarnings() int64 { return rt.warnings.Suppressed() }

// Close releases every foreign vector still open. The runtime cannot be
// used afterwards. Close is idempotent.
func (rt *Runtime) Close() error {
	if rt == nil {
		return nil
	}
	rt.mu.Lock()
	if rt.closed {
		rt.mu.Unlock()
		return nil
	}
	rt.closed = true
	open := make([]*budgetHandle, 0, len(rt.handles))
	for h := range rt.handles {
		open = append(open, h)
	}
	rt.mu.Unlock()

	var firstErr error
	for _, h := range open {
		var err error
		if h.vec != nil {
			err = h.vec.Close()
		} else {
			err = h.Close()
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (rt *Runtime) isClosed() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.closed
}
