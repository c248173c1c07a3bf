package engine

import (
	"fmt"
	"time"

	"github.com/hupe1980/statvec/access"
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// BinaryNode applies one binary operator. It owns the access caches of its
// call site and is not safe for concurrent use.
type BinaryNode struct {
	op    Op
	cfg   config
	left  *access.Cache
	right *access.Cache
	dst   *access.Cache
}

// NewBinaryNode returns a node for op.
func NewBinaryNode(op Op, opts ...Option) (*BinaryNode, error) {
	if !op.IsBinary() {
		return nil, fmt.Errorf("%w: %s", ErrNotBinary, op)
	}
	cfg := newConfig(opts)
	return &BinaryNode{
		op:    op,
		cfg:   cfg,
		left:  access.NewCacheWithMode(cfg.cacheSize, cfg.mode),
		right: access.NewCacheWithMode(cfg.cacheSize, cfg.mode),
		dst:   access.NewCacheWithMode(cfg.cacheSize, cfg.mode),
	}, nil
}

// ApplyBinary applies op to a and b through a fresh node.
func ApplyBinary(op Op, a, b model.Value, opts ...Option) (model.Value, error) {
	n, err := NewBinaryNode(op, opts...)
	if err != nil {
		return nil, err
	}
	return n.Apply(a, b)
}

// Op returns the operator.
func (n *BinaryNode) Op() Op { return n.op }

// Stats returns the combined access cache counters.
func (n *BinaryNode) Stats() access.Stats {
	return sumStats(n.left.Stats(), n.right.Stats(), n.dst.Stats())
}

// Apply computes a op b. Operands are vectors, boxed elements or NULL. The
// result is a vector, or a bare model.Elem for unboxed length-1 results.
func (n *BinaryNode) Apply(a, b model.Value) (model.Value, error) {
	start := time.Now()
	var l latch
	res, err := n.apply(&l, a, b)
	kind, length := shape(res)
	n.cfg.metrics.OnBinary(n.op, kind, length, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	l.flush(n.cfg.reporter, n.op)
	return res, nil
}

func (n *BinaryNode) apply(l *latch, a, b model.Value) (model.Value, error) {
	if vector.IsNull(a) || vector.IsNull(b) {
		return n.null(a, b)
	}
	va, err := asVector(a)
	if err != nil {
		return nil, err
	}
	vb, err := asVector(b)
	if err != nil {
		return nil, err
	}
	ck, rk, err := resolveBinary(n.op, va.Kind(), vb.Kind())
	if err != nil {
		return nil, err
	}

	la, lb := va.Len(), vb.Len()
	length := 0
	if la > 0 && lb > 0 {
		length = max(la, lb)
		if length%min(la, lb) != 0 {
			l.raise(model.CondRecycling)
		}
	}
	if length == 0 {
		dst, err := vector.Alloc(rk, 0)
		if err != nil {
			return nil, err
		}
		if err := dst.SetAttributes(resultAttributes(va, vb, 0)); err != nil {
			return nil, err
		}
		return dst, nil
	}

	reuseA := reusable(va, rk, length)
	reuseB := reusable(vb, rk, length)

	if length == 1 && !reuseA && !reuseB && len(va.Attributes()) == 0 && len(vb.Attributes()) == 0 {
		dst, err := vector.Alloc(rk, 1)
		if err != nil {
			return nil, err
		}
		if err := n.materialize(l, ck, va, vb, dst, 1); err != nil {
			return nil, err
		}
		return dst.Elt(0), nil
	}

	if folded, ok := n.fold(va, vb, rk); ok {
		n.cfg.metrics.OnFold(n.op)
		return folded, nil
	}

	// The destination is chosen before any element is written.
	var dst vector.Buffer
	switch {
	case reuseA:
		dst = va.(vector.Buffer)
		n.cfg.metrics.OnAlias(n.op, Left)
	case reuseB:
		dst = vb.(vector.Buffer)
		n.cfg.metrics.OnAlias(n.op, Right)
	default:
		if dst, err = vector.Alloc(rk, length); err != nil {
			return nil, err
		}
	}
	complete := va.IsComplete() && vb.IsComplete()
	attrs := resultAttributes(va, vb, length)

	if err := n.materialize(l, ck, va, vb, dst, length); err != nil {
		return nil, err
	}

	if n.op.rescans() {
		dst.Rescan()
	} else if !complete {
		dst.MarkIncomplete()
	}
	if len(attrs) > 0 || len(dst.Attributes()) > 0 {
		if err := dst.SetAttributes(attrs); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// null returns the empty result of an invocation with a NULL operand.
func (n *BinaryNode) null(a, b model.Value) (model.Value, error) {
	other := model.KindNull
	switch {
	case !vector.IsNull(a):
		other = a.Kind()
	case !vector.IsNull(b):
		other = b.Kind()
	}
	k, err := nullKind(n.op, other)
	if err != nil {
		return nil, err
	}
	return vector.Alloc(k, 0)
}

func (n *BinaryNode) materialize(l *latch, ck model.Kind, va, vb vector.Vector, dst vector.Buffer, length int) error {
	ra, err := n.left.Open(va)
	if err != nil {
		return err
	}
	rb, err := n.right.Open(vb)
	if err != nil {
		return err
	}
	w, err := n.dst.OpenWrite(dst)
	if err != nil {
		return err
	}
	ca, cb := ra.Cursor(), rb.Cursor()
	op := n.op
	var cond model.Cond

	switch op.Family() {
	case Arithmetic:
		switch ck {
		case model.KindInteger:
			for i := 0; i < length; i++ {
				r, c := intArith(op, ra.Integer(ca.NextWrap()), rb.Integer(cb.NextWrap()))
				cond |= c
				w.SetInteger(i, r)
			}
		case model.KindDouble:
			for i := 0; i < length; i++ {
				w.SetDouble(i, doubleArith(op, ra.Double(ca.NextWrap()), rb.Double(cb.NextWrap())))
			}
		case model.KindComplex:
			for i := 0; i < length; i++ {
				w.SetComplex(i, complexArith(op, ra.Complex(ca.NextWrap()), rb.Complex(cb.NextWrap())))
			}
		}
	case Comparison:
		switch ck {
		case model.KindLogical, model.KindInteger:
			for i := 0; i < length; i++ {
				w.SetLogical(i, compareInt(op, ra.Integer(ca.NextWrap()), rb.Integer(cb.NextWrap())))
			}
		case model.KindDouble:
			for i := 0; i < length; i++ {
				w.SetLogical(i, compareDouble(op, ra.Double(ca.NextWrap()), rb.Double(cb.NextWrap())))
			}
		case model.KindCharacter:
			for i := 0; i < length; i++ {
				w.SetLogical(i, compareString(op, ra.Character(ca.NextWrap()), rb.Character(cb.NextWrap())))
			}
		}
	case Logic:
		if ck == model.KindRaw {
			for i := 0; i < length; i++ {
				w.SetRaw(i, rawLogic(op, ra.Raw(ca.NextWrap()), rb.Raw(cb.NextWrap())))
			}
		} else {
			for i := 0; i < length; i++ {
				w.SetLogical(i, logic(op, ra.Logical(ca.NextWrap()), rb.Logical(cb.NextWrap())))
			}
		}
	}

	l.raise(cond | ra.Cond() | rb.Cond() | w.Cond())
	return w.Err()
}

// asVector turns an operand into a vector. Bare elements become scalars.
func asVector(v model.Value) (vector.Vector, error) {
	switch x := v.(type) {
	case vector.Vector:
		return x, nil
	case model.Elem:
		s, err := vector.NewScalar(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %s element", ErrInvalidOperand, x.Kind())
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidOperand, v)
	}
}

// reusable reports whether v can serve as the result buffer: a writable
// Temporary buffer of the result kind and length.
func reusable(v vector.Vector, k model.Kind, length int) bool {
	if v.Len() != length || !vector.IsShareableAs(v, k) {
		return false
	}
	if f, ok := v.(*vector.Foreign); ok {
		return f.CheckWritable() == nil
	}
	return true
}

// resultAttributes merges the attributes of the operands whose length equals
// the result length. The right operand wins on key collisions.
func resultAttributes(va, vb vector.Vector, length int) vector.Attributes {
	var a, b vector.Attributes
	if va.Len() == length {
		a = va.Attributes()
	}
	if vb.Len() == length {
		b = vb.Attributes()
	}
	return vector.MergeAttributes(a, b)
}

func shape(v model.Value) (model.Kind, int) {
	if v == nil {
		return model.KindNull, 0
	}
	return v.Kind(), v.Len()
}

func sumStats(stats ...access.Stats) access.Stats {
	var out access.Stats
	for _, s := range stats {
		out.Hits += s.Hits
		out.Specializations += s.Specializations
		out.Generic += s.Generic
	}
	return out
}
