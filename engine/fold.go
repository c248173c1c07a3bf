package engine

import (
	"math"
	"math/bits"

	"github.com/hupe1980/statvec/internal/conv"
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

// fold computes the result of a binary operator over sequence operands in
// constant time. It reports false when the operands or the operator do not
// fold, or when the folded sequence would not be representable or would not
// match the materialized elements exactly.
func (n *BinaryNode) fold(va, vb vector.Vector, rk model.Kind) (vector.Vector, bool) {
	f := n.op.Folds()
	if f == 0 || (rk != model.KindInteger && rk != model.KindDouble) {
		return nil, false
	}
	sa, aSeq := va.(*vector.Sequence)
	sb, bSeq := vb.(*vector.Sequence)
	switch {
	case aSeq && bSeq:
		if !f.Has(FoldSeqSeq) || sa.Len() != sb.Len() {
			return nil, false
		}
		return foldSeqSeq(n.op, sa, sb, rk)
	case aSeq:
		sc, ok := vb.(*vector.Scalar)
		if !ok || !f.Has(FoldSeqScalar) {
			return nil, false
		}
		return foldSeqScalar(n.op, sa, sc.Value(), rk)
	case bSeq:
		// Only commutative operators fold with the scalar on the left.
		sc, ok := va.(*vector.Scalar)
		if !ok || !f.Has(FoldScalarSeq) {
			return nil, false
		}
		return foldSeqScalar(n.op, sb, sc.Value(), rk)
	}
	return nil, false
}

func foldSeqScalar(op Op, s *vector.Sequence, e model.Elem, rk model.Kind) (vector.Vector, bool) {
	if e.IsNA() {
		return nil, false
	}
	if rk == model.KindInteger {
		x, _ := e.AsInteger()
		k := int64(x)
		start, stride := int64(s.IntStart()), int64(s.IntStride())
		switch op {
		case OpAdd:
			start += k
		case OpSubtract:
			start -= k
		case OpMultiply:
			start *= k
			stride *= k
		case OpIntDiv:
			if k == 0 || stride%k != 0 {
				return nil, false
			}
			start = floorDiv(start, k)
			stride /= k
		default:
			return nil, false
		}
		return intSequence(start, stride, s.Len())
	}

	x, _ := e.AsDouble()
	start, stride := s.Start(), s.Stride()
	p := max(fracBits(start), fracBits(stride), fracBits(x))
	var fs, fd float64
	switch op {
	case OpAdd:
		fs, fd = start+x, stride
	case OpSubtract:
		fs, fd = start-x, stride
	case OpMultiply:
		p = max(fracBits(start), fracBits(stride)) + fracBits(x)
		fs, fd = start*x, stride*x
	default:
		return nil, false
	}
	n := float64(s.Len() - 1)
	if !exactAt(p, x, start, stride, stride*n, start+stride*n, fs, fd, fd*n, fs+fd*n) {
		return nil, false
	}
	return doubleSequence(fs, fd, s.Len())
}

func foldSeqSeq(op Op, a, b *vector.Sequence, rk model.Kind) (vector.Vector, bool) {
	sign := int64(1)
	switch op {
	case OpAdd:
	case OpSubtract:
		sign = -1
	default:
		return nil, false
	}
	if rk == model.KindInteger {
		start := int64(a.IntStart()) + sign*int64(b.IntStart())
		stride := int64(a.IntStride()) + sign*int64(b.IntStride())
		return intSequence(start, stride, a.Len())
	}
	as, ad, bs, bd := a.Start(), a.Stride(), b.Start(), b.Stride()
	f := float64(sign)
	fs, fd := as+f*bs, ad+f*bd
	n := float64(a.Len() - 1)
	p := max(fracBits(as), fracBits(ad), fracBits(bs), fracBits(bd))
	if !exactAt(p, as, ad, ad*n, as+ad*n, bs, bd, bd*n, bs+bd*n, fs, fd, fd*n, fs+fd*n) {
		return nil, false
	}
	return doubleSequence(fs, fd, a.Len())
}

// foldUnary folds a sign operator over a sequence.
func foldUnary(op Op, s *vector.Sequence) (vector.Vector, bool) {
	switch op {
	case OpPlus:
		return s, true
	case OpNegate:
		if s.Kind() == model.KindInteger {
			return intSequence(-int64(s.IntStart()), -int64(s.IntStride()), s.Len())
		}
		return doubleSequence(-s.Start(), -s.Stride(), s.Len())
	}
	return nil, false
}

// exactBound bounds, in units of the finest binary fraction involved, the
// magnitudes at which double arithmetic on a fold never rounds.
const exactBound = 1 << 52

// fracBits returns the number of binary digits after the point in x.
func fracBits(x float64) int {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	frac, exp := math.Frexp(math.Abs(x))
	m := uint64(math.Ldexp(frac, 53))
	return max(0, 53-exp-bits.TrailingZeros64(m))
}

// exactAt reports whether every x, scaled by 2^p, is within exactBound. A
// double fold is taken only then, so folded and materialized elements agree.
func exactAt(p int, xs ...float64) bool {
	for _, x := range xs {
		if !(math.Ldexp(math.Abs(x), p) <= exactBound) {
			return false
		}
	}
	return true
}

func intSequence(start, stride int64, length int) (vector.Vector, bool) {
	s32, err := conv.Int64ToInt32(start)
	if err != nil {
		return nil, false
	}
	d32, err := conv.Int64ToInt32(stride)
	if err != nil {
		return nil, false
	}
	seq, err := vector.NewIntSequence(s32, d32, length)
	if err != nil {
		return nil, false
	}
	return seq, true
}

func doubleSequence(start, stride float64, length int) (vector.Vector, bool) {
	seq, err := vector.NewDoubleSequence(start, stride, length)
	if err != nil {
		return nil, false
	}
	return seq, true
}
