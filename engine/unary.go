package engine

import (
	"fmt"
	"time"

	"github.com/hupe1980/statvec/access"
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// UnaryNode applies one unary operator. Like BinaryNode it owns its access
// caches and is not safe for concurrent use.
type UnaryNode struct {
	op  Op
	cfg config
	src *access.Cache
	dst *access.Cache
}

// NewUnaryNode returns a node for op.
func NewUnaryNode(op Op, opts ...Option) (*UnaryNode, error) {
	if !op.IsUnary() {
		return nil, fmt.Errorf("%w: %s", ErrNotUnary, op)
	}
	cfg := newConfig(opts)
	return &UnaryNode{
		op:  op,
		cfg: cfg,
		src: access.NewCacheWithMode(cfg.cacheSize, cfg.mode),
		dst: access.NewCacheWithMode(cfg.cacheSize, cfg.mode),
	}, nil
}

// ApplyUnary applies op to a through a fresh node.
func ApplyUnary(op Op, a model.Value, opts ...Option) (model.Value, error) {
	n, err := NewUnaryNode(op, opts...)
	if err != nil {
		return nil, err
	}
	return n.Apply(a)
}

// Op returns the operator.
func (n *UnaryNode) Op() Op { return n.op }

// Stats returns the combined access cache counters.
func (n *UnaryNode) Stats() access.Stats {
	return sumStats(n.src.Stats(), n.dst.Stats())
}

// Apply computes op a.
func (n *UnaryNode) Apply(a model.Value) (model.Value, error) {
	start := time.Now()
	var l latch
	res, err := n.apply(&l, a)
	kind, length := shape(res)
	n.cfg.metrics.OnUnary(n.op, kind, length, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	l.flush(n.cfg.reporter, n.op)
	return res, nil
}

func (n *UnaryNode) apply(l *latch, a model.Value) (model.Value, error) {
	if vector.IsNull(a) {
		if n.op == OpNot {
			return vector.Alloc(model.KindLogical, 0)
		}
		return vector.Alloc(model.KindDouble, 0)
	}
	va, err := asVector(a)
	if err != nil {
		return nil, err
	}
	ck, rk, err := resolveUnary(n.op, va.Kind())
	if err != nil {
		return nil, err
	}
	length := va.Len()
	reuse := length > 0 && reusable(va, rk, length)

	if length == 1 && !reuse && len(va.Attributes()) == 0 {
		dst, err := vector.Alloc(rk, 1)
		if err != nil {
			return nil, err
		}
		if err := n.materialize(l, ck, va, dst, 1); err != nil {
			return nil, err
		}
		return dst.Elt(0), nil
	}

	if s, ok := va.(*vector.Sequence); ok && n.op.Folds().Has(FoldSeq) {
		if folded, ok := foldUnary(n.op, s); ok {
			n.cfg.metrics.OnFold(n.op)
			return folded, nil
		}
	}

	var dst vector.Buffer
	if reuse {
		dst = va.(vector.Buffer)
		n.cfg.metrics.OnAlias(n.op, Left)
	} else if dst, err = vector.Alloc(rk, length); err != nil {
		return nil, err
	}
	complete := va.IsComplete()
	attrs := va.Attributes().Clone()

	if err := n.materialize(l, ck, va, dst, length); err != nil {
		return nil, err
	}
	if !complete {
		dst.MarkIncomplete()
	}
	if !reuse && len(attrs) > 0 {
		if err := dst.SetAttributes(attrs); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (n *UnaryNode) materialize(l *latch, ck model.Kind, va vector.Vector, dst vector.Buffer, length int) error {
	r, err := n.src.Open(va)
	if err != nil {
		return err
	}
	w, err := n.dst.OpenWrite(dst)
	if err != nil {
		return err
	}

	switch n.op {
	case OpNegate, OpPlus:
		neg := n.op == OpNegate
		switch ck {
		case model.KindInteger:
			for i := 0; i < length; i++ {
				x := r.Integer(i)
				if neg {
					x = negateInt(x)
				}
				w.SetInteger(i, x)
			}
		case model.KindDouble:
			for i := 0; i < length; i++ {
				x := r.Double(i)
				if neg {
					x = negateDouble(x)
				}
				w.SetDouble(i, x)
			}
		case model.KindComplex:
			for i := 0; i < length; i++ {
				x := r.Complex(i)
				if neg {
					x = negateComplex(x)
				}
				w.SetComplex(i, x)
			}
		}
	case OpNot:
		if ck == model.KindRaw {
			for i := 0; i < length; i++ {
				w.SetRaw(i, ^r.Raw(i))
			}
		} else {
			for i := 0; i < length; i++ {
				w.SetLogical(i, notLogical(r.Logical(i)))
			}
		}
	default:
		switch ck {
		case model.KindInteger:
			for i := 0; i < length; i++ {
				w.SetInteger(i, r.Integer(i))
			}
		case model.KindDouble:
			for i := 0; i < length; i++ {
				w.SetDouble(i, roundDouble(n.op, r.Double(i)))
			}
		case model.KindComplex:
			for i := 0; i < length; i++ {
				w.SetComplex(i, roundComplex(r.Complex(i)))
			}
		}
	}

	l.raise(r.Cond() | w.Cond())
	return w.Err()
}
