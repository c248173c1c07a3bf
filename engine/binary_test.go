package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statvec/access"
	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

func TestBinaryArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b model.Value
		kind model.Kind
		want []model.Elem
	}{
		{"int add", OpAdd, owned(vector.Ints(1, 2, 3)), owned(vector.Ints(10, 20, 30)), model.KindInteger, ints(11, 22, 33)},
		{"int double add", OpAdd, owned(vector.Ints(1, 2)), owned(vector.Doubles(0.5, 0.5)), model.KindDouble, dbls(1.5, 2.5)},
		{"logical add", OpAdd, owned(vector.Bools(true, true)), owned(vector.Bools(true, false)), model.KindInteger, ints(2, 1)},
		{"int divide", OpDivide, owned(vector.Ints(1, 3)), owned(vector.Ints(2, 0)), model.KindDouble, dbls(0.5, math.Inf(1))},
		{"int power", OpPower, owned(vector.Ints(2, 3)), owned(vector.Ints(3, 2)), model.KindDouble, dbls(8, 9)},
		{"int mod", OpMod, owned(vector.Ints(5, -5, 5, -5)), owned(vector.Ints(3, 3, -3, -3)), model.KindInteger, ints(2, 1, -1, -2)},
		{"int intdiv", OpIntDiv, owned(vector.Ints(5, -5, 5, -5)), owned(vector.Ints(3, 3, -3, -3)), model.KindInteger, ints(1, -2, -2, 1)},
		{"mod by zero", OpMod, owned(vector.Ints(5, 5)), owned(vector.Ints(0, 2)), model.KindInteger, ints(model.NAInteger, 1)},
		{"double mod", OpMod, owned(vector.Doubles(5.5, -5.5)), owned(vector.Doubles(2, 2)), model.KindDouble, dbls(1.5, 0.5)},
		{"complex multiply", OpMultiply, owned(vector.Complexes(1+2i, 1)), owned(vector.Doubles(2, 3)), model.KindComplex, []model.Elem{model.Complex128(2 + 4i), model.Complex128(3)}},
		{"NA propagates", OpSubtract, owned(vector.Ints(model.NAInteger, 3)), owned(vector.Ints(1, 1)), model.KindInteger, ints(model.NAInteger, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyBinary(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assertElems(t, tt.want, got)
		})
	}
}

func TestBinaryComparisonAndLogic(t *testing.T) {
	T, F, NA := model.True, model.False, model.NALogical

	tests := []struct {
		name string
		op   Op
		a, b model.Value
		kind model.Kind
		want []model.Elem
	}{
		{"int less double", OpLess, owned(vector.Ints(1, 2, model.NAInteger)), owned(vector.Doubles(2, 2, 2)), model.KindLogical, lgls(T, F, NA)},
		{"NaN compares NA", OpEqual, owned(vector.Doubles(math.NaN(), 1)), owned(vector.Doubles(math.NaN(), 1)), model.KindLogical, lgls(NA, T)},
		{"strings", OpLess, owned(vector.Strings("a", "b")), owned(vector.Strings("b", "a")), model.KindLogical, lgls(T, F)},
		{"logical vs character", OpEqual, owned(vector.Bools(true, false)), owned(vector.Strings("TRUE", "TRUE")), model.KindLogical, lgls(T, F)},
		{"double vs character", OpEqual, owned(vector.Doubles(1.5, 2)), owned(vector.Strings("1.5", "3")), model.KindLogical, lgls(T, F)},
		{"and", OpAnd, owned(vector.Logicals(T, F, NA, NA)), owned(vector.Logicals(NA, NA, F, T)), model.KindLogical, lgls(NA, F, F, NA)},
		{"or", OpOr, owned(vector.Logicals(T, F, NA, NA)), owned(vector.Logicals(NA, NA, F, T)), model.KindLogical, lgls(T, NA, NA, T)},
		{"and numbers", OpAnd, owned(vector.Doubles(0, 2.5)), owned(vector.Ints(1, 1)), model.KindLogical, lgls(F, T)},
		{"raw and", OpAnd, owned(vector.Raws(0x0f, 0xff)), owned(vector.Raws(0xfc, 0x01)), model.KindRaw, []model.Elem{model.Byte(0x0c), model.Byte(0x01)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyBinary(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assertElems(t, tt.want, got)
		})
	}
}

func TestBinaryIncompatibleKinds(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b model.Value
	}{
		{"character arithmetic", OpAdd, vector.Strings("a"), vector.Ints(1)},
		{"complex ordering", OpLess, vector.Complexes(1), vector.Complexes(2)},
		{"complex mod", OpMod, vector.Complexes(1), vector.Ints(2)},
		{"raw arithmetic", OpAdd, vector.Raws(1), vector.Raws(2)},
		{"raw and logical", OpAnd, vector.Raws(1), vector.Bools(true)},
		{"list", OpAdd, vector.NewList(model.Int(1)), vector.Ints(1)},
		{"null plus character", OpAdd, vector.Null, vector.Strings("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyBinary(tt.op, tt.a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrIncompatibleKind)

			var kerr *IncompatibleKindError
			require.True(t, errors.As(err, &kerr))
			assert.Equal(t, tt.op, kerr.Op)
		})
	}
}

func TestBinaryInvalidOperand(t *testing.T) {
	_, err := ApplyBinary(OpAdd, model.Item(vector.Ints(1)), vector.Ints(1))
	require.ErrorIs(t, err, ErrInvalidOperand)

	_, err = NewBinaryNode(OpNegate)
	require.ErrorIs(t, err, ErrNotBinary)

	_, err = NewUnaryNode(OpAdd)
	require.ErrorIs(t, err, ErrNotUnary)
}

func TestBinaryRecycling(t *testing.T) {
	var wc WarningCollector
	got, err := ApplyBinary(OpAdd, owned(vector.Ints(1, 2, 3, 4, 5)), owned(vector.Ints(10, 20)), WithReporter(&wc))
	require.NoError(t, err)
	assertElems(t, ints(11, 22, 13, 24, 15), got)
	require.Len(t, wc.Warnings, 1)
	assert.Equal(t, model.CondRecycling, wc.Warnings[0].Cond)
	assert.Equal(t, "In +: longer object length is not a multiple of shorter object length", wc.Warnings[0].String())

	wc.Reset()
	got, err = ApplyBinary(OpMultiply, owned(vector.Ints(1, 2)), owned(vector.Ints(1, 2, 3, 4)), WithReporter(&wc))
	require.NoError(t, err)
	assertElems(t, ints(1, 4, 3, 8), got)
	assert.Empty(t, wc.Warnings)
}

func TestBinaryEmptyDominates(t *testing.T) {
	var wc WarningCollector
	got, err := ApplyBinary(OpAdd, vector.Ints(), vector.Ints(1, 2, 3), WithReporter(&wc))
	require.NoError(t, err)
	assert.Equal(t, model.KindInteger, got.Kind())
	assert.Equal(t, 0, got.Len())
	assert.Empty(t, wc.Warnings)

	got, err = ApplyBinary(OpLess, vector.Doubles(1), vector.Doubles())
	require.NoError(t, err)
	assert.Equal(t, model.KindLogical, got.Kind())
	assert.Equal(t, 0, got.Len())
	assert.True(t, got.(vector.Vector).IsComplete())
}

func TestBinaryNull(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b model.Value
		kind model.Kind
	}{
		{"null plus ints", OpAdd, vector.Null, vector.Ints(1, 2), model.KindDouble},
		{"ints plus nil", OpAdd, vector.Ints(1, 2), nil, model.KindDouble},
		{"null plus complex", OpAdd, vector.Null, vector.Complexes(1), model.KindComplex},
		{"null plus null", OpSubtract, vector.Null, vector.Null, model.KindDouble},
		{"null equals strings", OpEqual, vector.Null, vector.Strings("a"), model.KindLogical},
		{"strings and null", OpAnd, vector.Strings("a"), vector.Null, model.KindLogical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyBinary(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, 0, got.Len())
		})
	}
}

func TestBinaryUnboxesScalars(t *testing.T) {
	got, err := ApplyBinary(OpAdd, mustScalar(t, model.Int(1)), mustScalar(t, model.Int(2)))
	require.NoError(t, err)
	e, ok := got.(model.Elem)
	require.True(t, ok, "got %T", got)
	assert.True(t, e.Equal(model.Int(3)))

	got, err = ApplyBinary(OpLess, model.Float(1), model.Int(2))
	require.NoError(t, err)
	e, ok = got.(model.Elem)
	require.True(t, ok)
	assert.True(t, e.Equal(model.Bool(true)))

	// Owned length-1 buffers unbox too.
	got, err = ApplyBinary(OpMultiply, owned(vector.Doubles(2)), owned(vector.Doubles(4)))
	require.NoError(t, err)
	_, ok = got.(model.Elem)
	assert.True(t, ok)

	// A reusable operand is returned instead.
	a := vector.Doubles(2)
	got, err = ApplyBinary(OpMultiply, a, model.Float(4))
	require.NoError(t, err)
	assert.Same(t, a, got)
	assertElems(t, dbls(8), got)

	// Attributes force a vector result.
	b := owned(vector.Doubles(2))
	require.NoError(t, b.SetAttribute("unit", vector.Strings("m")))
	got, err = ApplyBinary(OpMultiply, b, model.Float(4))
	require.NoError(t, err)
	_, ok = got.(vector.Vector)
	assert.True(t, ok)
}

func TestBinaryCompleteness(t *testing.T) {
	got, err := ApplyBinary(OpAdd, owned(vector.Ints(1, 2)), owned(vector.Ints(3, 4)))
	require.NoError(t, err)
	assert.True(t, got.(vector.Vector).IsComplete())

	// An NA operand marks the result incomplete.
	got, err = ApplyBinary(OpMultiply, owned(vector.Ints(model.NAInteger, 2)), owned(vector.Ints(1, 2)))
	require.NoError(t, err)
	assert.False(t, got.(vector.Vector).IsComplete())

	// Overflow introduces NA into a result of complete operands.
	var wc WarningCollector
	got, err = ApplyBinary(OpAdd, owned(vector.Ints(math.MaxInt32, 1)), owned(vector.Ints(1, 1)), WithReporter(&wc))
	require.NoError(t, err)
	assertElems(t, ints(model.NAInteger, 2), got)
	assert.False(t, got.(vector.Vector).IsComplete())
	assert.Equal(t, model.CondIntegerOverflow, wc.Conds())

	// Power rescans: x^0 is 1 even for NA.
	got, err = ApplyBinary(OpPower, owned(vector.Doubles(model.NADouble, 2)), owned(vector.Doubles(0, 0)))
	require.NoError(t, err)
	assertElems(t, dbls(1, 1), got)
	assert.True(t, got.(vector.Vector).IsComplete())

	got, err = ApplyBinary(OpDivide, owned(vector.Doubles(model.NADouble, 2)), owned(vector.Doubles(1, 0)))
	require.NoError(t, err)
	assert.False(t, got.(vector.Vector).IsComplete())
}

func TestBinaryReusesTemporaryOperand(t *testing.T) {
	obs := &recordingObserver{}

	a := vector.Ints(1, 2, 3)
	got, err := ApplyBinary(OpAdd, a, owned(vector.Ints(1, 1, 1)), WithMetricsObserver(obs))
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, []int32{2, 3, 4}, a.Data())

	b := vector.Doubles(1, 2, 3)
	got, err = ApplyBinary(OpAdd, owned(vector.Ints(1, 1, 1)), b, WithMetricsObserver(obs))
	require.NoError(t, err)
	assert.Same(t, b, got)
	assertElems(t, dbls(2, 3, 4), got)

	assert.Equal(t, []Operand{Left, Right}, obs.aliases)

	// Owned operands are left untouched.
	c := owned(vector.Ints(1, 2, 3))
	got, err = ApplyBinary(OpAdd, c, owned(vector.Ints(1, 1, 1)))
	require.NoError(t, err)
	assert.NotSame(t, c, got)
	assert.Equal(t, []int32{1, 2, 3}, c.Data())

	// The result kind must match.
	d := vector.Ints(1, 2)
	got, err = ApplyBinary(OpLess, d, owned(vector.Ints(2, 2)))
	require.NoError(t, err)
	assert.NotSame(t, d, got)
	assert.Equal(t, model.KindLogical, got.Kind())

	// Recycled operands are shorter than the result.
	e := vector.Ints(1)
	got, err = ApplyBinary(OpAdd, e, owned(vector.Ints(1, 2, 3)))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, []int32{1}, e.Data())
}

func TestBinaryReusesForeignBuffer(t *testing.T) {
	f, err := vector.NewForeign(model.KindDouble, 3, vector.HeapAllocator())
	require.NoError(t, err)
	got, err := ApplyBinary(OpAdd, f, owned(vector.Doubles(1, 2, 3)))
	require.NoError(t, err)
	assert.Same(t, f, got)
	view, err := vector.ForeignView[float64](f)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, view)

	raw := make([]byte, 16)
	ro, err := vector.WrapForeign(model.KindDouble, vector.NewSliceHandle(raw, true))
	require.NoError(t, err)
	got, err = ApplyBinary(OpAdd, ro, owned(vector.Doubles(1, 2)))
	require.NoError(t, err)
	assert.NotSame(t, ro, got)
	assertElems(t, dbls(1, 2), got)
}

func TestBinaryClosedForeignOperand(t *testing.T) {
	for _, mode := range []access.Mode{access.ModeSpecialized, access.ModeGeneric} {
		f, err := vector.NewForeign(model.KindDouble, 2, vector.HeapAllocator())
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = ApplyBinary(OpAdd, f, vector.Doubles(1, 2), WithAccessMode(mode))
		require.ErrorIs(t, err, vector.ErrClosed, mode)
		_, err = ApplyBinary(OpAdd, vector.Doubles(1, 2), f, WithAccessMode(mode))
		require.ErrorIs(t, err, vector.ErrClosed, mode)
		_, err = ApplyUnary(OpNegate, f, WithAccessMode(mode))
		require.ErrorIs(t, err, vector.ErrClosed, mode)
	}
}

func TestBinaryLogicalStorageIsNormalized(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpOr, "[1] TRUE TRUE"},
		{OpEqual, "[1] FALSE TRUE"},
		{OpAdd, "[1] 1 2"},
	}

	for _, tt := range tests {
		for _, mode := range []access.Mode{access.ModeSpecialized, access.ModeGeneric} {
			got, err := ApplyBinary(tt.op, looseForeignLogical(t, 2, 2), vector.Logicals(0, 1), WithAccessMode(mode))
			require.NoError(t, err)
			assert.Equal(t, tt.want, vector.Format(got), "%s %s", tt.op, mode)
		}
	}
}

func TestBinaryAttributes(t *testing.T) {
	a := owned(vector.Ints(1, 2))
	require.NoError(t, a.SetAttribute("names", vector.Strings("x", "y")))
	require.NoError(t, a.SetAttribute("unit", vector.Strings("m")))
	b := owned(vector.Ints(3, 4))
	require.NoError(t, b.SetAttribute("unit", vector.Strings("s")))

	got, err := ApplyBinary(OpAdd, a, b)
	require.NoError(t, err)
	attrs := got.(vector.Vector).Attributes()
	assert.Equal(t, []string{"names", "unit"}, attrs.Keys())
	unit, _ := attrs.Get("unit")
	assert.Equal(t, `[1] "s"`, vector.Format(unit))

	// Only the full-length operand contributes.
	short := owned(vector.Ints(1))
	require.NoError(t, short.SetAttribute("dropped", vector.Strings("z")))
	got, err = ApplyBinary(OpAdd, a, short)
	require.NoError(t, err)
	assert.Equal(t, []string{"names", "unit"}, got.(vector.Vector).Attributes().Keys())

	// Mutating the result leaves the operands alone.
	res := got.(vector.Buffer)
	require.NoError(t, res.SetAttribute("names", nil))
	assert.Equal(t, []string{"names", "unit"}, a.Attributes().Keys())
}

func TestBinaryFolding(t *testing.T) {
	obs := &recordingObserver{}
	seq := mustSeq(t, 1, 1, 5)

	got, err := ApplyBinary(OpAdd, seq, model.Int(5), WithMetricsObserver(obs))
	require.NoError(t, err)
	s, ok := got.(*vector.Sequence)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, int32(6), s.IntStart())
	assert.Equal(t, int32(1), s.IntStride())
	assertElems(t, ints(6, 7, 8, 9, 10), got)
	assert.Equal(t, 1, obs.folds)

	// Subtraction does not fold with the scalar on the left.
	got, err = ApplyBinary(OpSubtract, model.Int(5), seq, WithMetricsObserver(obs))
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.False(t, ok)
	assertElems(t, ints(4, 3, 2, 1, 0), got)
	assert.Equal(t, 1, obs.folds)

	got, err = ApplyBinary(OpMultiply, mustScalar(t, model.Int(3)), seq)
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.True(t, ok)
	assertElems(t, ints(3, 6, 9, 12, 15), got)

	got, err = ApplyBinary(OpSubtract, seq, mustSeq(t, 10, 2, 5))
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.True(t, ok)
	assertElems(t, ints(-9, -10, -11, -12, -13), got)

	got, err = ApplyBinary(OpIntDiv, mustSeq(t, -3, 4, 3), model.Int(2))
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.True(t, ok)
	assertElems(t, ints(-2, 0, 2), got)

	// Stride not divisible: materialized with the same values.
	got, err = ApplyBinary(OpIntDiv, mustSeq(t, 1, 3, 3), model.Int(2))
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.False(t, ok)
	assertElems(t, ints(0, 2, 3), got)

	got, err = ApplyBinary(OpAdd, seq, model.Float(0.5))
	require.NoError(t, err)
	s, ok = got.(*vector.Sequence)
	require.True(t, ok)
	assert.Equal(t, model.KindDouble, s.Kind())
	assertElems(t, dbls(1.5, 2.5, 3.5, 4.5, 5.5), got)
}

func TestBinaryDoubleFoldsMatchMaterialized(t *testing.T) {
	dseq := func(start, stride float64, n int) *vector.Sequence {
		s, err := vector.NewDoubleSequence(start, stride, n)
		require.NoError(t, err)
		return s
	}
	dense := func(v model.Value) model.Value {
		s, ok := v.(*vector.Sequence)
		if !ok {
			return v
		}
		xs := make([]float64, s.Len())
		for i := range xs {
			xs[i] = s.Double(i)
		}
		return owned(vector.Doubles(xs...))
	}

	tests := []struct {
		name  string
		op    Op
		a, b  model.Value
		folds bool
	}{
		{"tenths times three", OpMultiply, dseq(0.1, 0.1, 10), model.Float(3), false},
		{"tenths plus three", OpAdd, dseq(0.1, 0.1, 10), model.Float(3), false},
		{"quarters plus one and a half", OpAdd, dseq(0.5, 0.25, 8), model.Float(1.5), true},
		{"quarters minus scalar", OpSubtract, dseq(0.5, 0.25, 8), model.Float(0.125), true},
		{"integers plus half", OpAdd, mustSeq(t, 1, 1, 5), model.Float(0.5), true},
		{"quarters times minus four", OpMultiply, dseq(0, 0.25, 9), model.Float(-4), true},
		{"scalar times quarters", OpMultiply, model.Float(3), dseq(0.25, 0.5, 6), true},
		{"large integral", OpAdd, dseq(1<<53, 2, 4), model.Float(1), false},
		{"halves minus quarters", OpSubtract, dseq(0.5, 0.5, 4), dseq(1, 0.25, 4), true},
		{"tenths plus thirds", OpAdd, dseq(0.1, 0.1, 4), dseq(0.2, 0.3, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyBinary(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			_, folded := got.(*vector.Sequence)
			assert.Equal(t, tt.folds, folded)

			want, err := ApplyBinary(tt.op, dense(tt.a), dense(tt.b))
			require.NoError(t, err)
			assertElems(t, elems(t, want), got)
		})
	}
}

func TestBinaryFoldFallsBack(t *testing.T) {
	var wc WarningCollector
	seq := mustSeq(t, math.MaxInt32-1, 1, 2)
	got, err := ApplyBinary(OpAdd, seq, model.Int(1), WithReporter(&wc))
	require.NoError(t, err)
	_, ok := got.(*vector.Sequence)
	assert.False(t, ok)
	assertElems(t, ints(math.MaxInt32, model.NAInteger), got)
	assert.Equal(t, model.CondIntegerOverflow, wc.Conds())

	got, err = ApplyBinary(OpAdd, mustSeq(t, 1, 1, 3), model.NA(model.KindInteger))
	require.NoError(t, err)
	_, ok = got.(*vector.Sequence)
	assert.False(t, ok)
	assertElems(t, ints(model.NAInteger, model.NAInteger, model.NAInteger), got)
	assert.False(t, got.(vector.Vector).IsComplete())

	// Sequences of different lengths recycle.
	got, err = ApplyBinary(OpAdd, mustSeq(t, 1, 1, 4), mustSeq(t, 0, 10, 2))
	require.NoError(t, err)
	assertElems(t, ints(1, 12, 3, 14), got)
}

func TestBinaryAccessModesAgree(t *testing.T) {
	operands := []func(t *testing.T) model.Value{
		func(*testing.T) model.Value { return vector.Ints(1, model.NAInteger, 3, 4) },
		func(*testing.T) model.Value { return vector.Doubles(0.5, 2, model.NADouble, -1) },
		func(*testing.T) model.Value { return vector.Logicals(model.True, model.False, model.NALogical, model.True) },
		func(*testing.T) model.Value { return vector.Complexes(1+1i, 2, 3-1i, 0) },
		func(t *testing.T) model.Value { return mustSeq(t, 3, -2, 4) },
		func(t *testing.T) model.Value { return mustScalar(t, model.Float(2)) },
		func(t *testing.T) model.Value {
			f, err := vector.NewForeign(model.KindInteger, 2, vector.HeapAllocator())
			require.NoError(t, err)
			require.NoError(t, f.SetElt(0, model.Int(7)))
			return f
		},
		func(t *testing.T) model.Value {
			d, err := vector.NewDense(model.KindLogical, []int32{2, 0, -3, model.NALogical})
			require.NoError(t, err)
			return d
		},
		func(t *testing.T) model.Value { return looseForeignLogical(t, 2, -5) },
	}
	ops := []Op{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpEqual, OpLess, OpAnd, OpOr}

	for _, op := range ops {
		for i, left := range operands {
			for j, right := range operands {
				spec, serr := ApplyBinary(op, left(t), right(t), WithAccessMode(access.ModeSpecialized))
				gen, gerr := ApplyBinary(op, left(t), right(t), WithAccessMode(access.ModeGeneric))
				if serr != nil || gerr != nil {
					assert.Equal(t, serr, gerr, "%s %d %d", op, i, j)
					continue
				}
				assert.Equal(t, spec.Kind(), gen.Kind(), "%s %d %d", op, i, j)
				assert.Equal(t, vector.Format(spec), vector.Format(gen), "%s %d %d", op, i, j)
			}
		}
	}
}

func TestBinaryNodeCachesAccess(t *testing.T) {
	n, err := NewBinaryNode(OpAdd)
	require.NoError(t, err)
	assert.Equal(t, OpAdd, n.Op())

	for range 3 {
		_, err := n.Apply(owned(vector.Ints(1, 2)), owned(vector.Ints(3, 4)))
		require.NoError(t, err)
	}
	stats := n.Stats()
	assert.Equal(t, uint64(3), stats.Specializations)
	assert.Equal(t, uint64(6), stats.Hits)
	assert.Zero(t, stats.Generic)

	generic, err := NewBinaryNode(OpAdd, WithAccessMode(access.ModeGeneric))
	require.NoError(t, err)
	_, err = generic.Apply(owned(vector.Ints(1, 2)), owned(vector.Ints(3, 4)))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), generic.Stats().Generic)
}

func TestBinaryWarningsOnlyOnSuccess(t *testing.T) {
	var wc WarningCollector
	obs := &recordingObserver{}
	_, err := ApplyBinary(OpAdd, vector.Strings("a", "b", "c"), vector.Ints(1, 2), WithReporter(&wc), WithMetricsObserver(obs))
	require.Error(t, err)
	assert.Empty(t, wc.Warnings)
	assert.Equal(t, 1, obs.errs)
}
