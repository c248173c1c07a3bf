package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

func elems(t *testing.T, v model.Value) []model.Elem {
	t.Helper()
	switch x := v.(type) {
	case model.Elem:
		return []model.Elem{x}
	case vector.Vector:
		out := make([]model.Elem, x.Len())
		for i := range out {
			out[i] = x.Elt(i)
		}
		return out
	}
	require.Failf(t, "unexpected value", "%T", v)
	return nil
}

func assertElems(t *testing.T, want []model.Elem, got model.Value) {
	t.Helper()
	g := elems(t, got)
	require.Len(t, g, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(g[i]), "element %d: want %s, got %s", i, want[i], g[i])
	}
}

func ints(xs ...int32) []model.Elem {
	out := make([]model.Elem, len(xs))
	for i, x := range xs {
		out[i] = model.Int(x)
	}
	return out
}

func dbls(xs ...float64) []model.Elem {
	out := make([]model.Elem, len(xs))
	for i, x := range xs {
		out[i] = model.Float(x)
	}
	return out
}

func lgls(xs ...int32) []model.Elem {
	out := make([]model.Elem, len(xs))
	for i, x := range xs {
		out[i] = model.Logical(x)
	}
	return out
}

// owned gives v one holder so the engine cannot reuse it.
func owned[B vector.Buffer](v B) B {
	v.IncRefCount()
	return v
}

func mustSeq(t *testing.T, start, stride int32, n int) *vector.Sequence {
	t.Helper()
	s, err := vector.NewIntSequence(start, stride, n)
	require.NoError(t, err)
	return s
}

func mustScalar(t *testing.T, e model.Elem) *vector.Scalar {
	t.Helper()
	s, err := vector.NewScalar(e)
	require.NoError(t, err)
	return s
}

type recordingObserver struct {
	binary  int
	unary   int
	folds   int
	aliases []Operand
	errs    int
}

func (o *recordingObserver) OnBinary(_ Op, _ model.Kind, _ int, _ time.Duration, err error) {
	o.binary++
	if err != nil {
		o.errs++
	}
}

func (o *recordingObserver) OnUnary(_ Op, _ model.Kind, _ int, _ time.Duration, err error) {
	o.unary++
	if err != nil {
		o.errs++
	}
}

func (o *recordingObserver) OnFold(Op)               { o.folds++ }
func (o *recordingObserver) OnAlias(_ Op, a Operand) { o.aliases = append(o.aliases, a) }

// looseForeignLogical returns a foreign logical vector whose storage holds xs
// as written, without normalization to TRUE and FALSE.
func looseForeignLogical(t *testing.T, xs ...int32) *vector.Foreign {
	t.Helper()
	f, err := vector.NewForeign(model.KindLogical, len(xs), vector.HeapAllocator())
	require.NoError(t, err)
	view, err := vector.ForeignView[int32](f)
	require.NoError(t, err)
	copy(view, xs)
	return f
}
