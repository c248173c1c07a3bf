package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statvec/model"
	"github.com/hupe1980/statvec/vector"
)

func writeAll(a Access) {
	a.SetDouble(0, 2.7)
	a.SetInteger(1, model.NAInteger)
	a.SetCharacter(2, "x")
	a.SetLogical(3, 5)
	a.SetComplex(4, 3+4i)
	a.SetRaw(5, 7)
}

func TestWriteEquivalence(t *testing.T) {
	for _, k := range []model.Kind{
		model.KindLogical, model.KindInteger, model.KindDouble,
		model.KindComplex, model.KindCharacter, model.KindRaw,
	} {
		t.Run(k.String(), func(t *testing.T) {
			b1, err := vector.Alloc(k, 6)
			require.NoError(t, err)
			b2, err := vector.Alloc(k, 6)
			require.NoError(t, err)

			s, ok := Specialize(KeyOf(b1))
			require.True(t, ok)
			spec, err := s.OpenWrite(b1)
			require.NoError(t, err)
			gen, err := Generic.OpenWrite(b2)
			require.NoError(t, err)

			writeAll(spec)
			writeAll(gen)
			require.NoError(t, gen.Err())

			for i := 0; i < 6; i++ {
				assert.True(t, b1.Elt(i).Equal(b2.Elt(i)), "element %d: %s vs %s", i, b1.Elt(i), b2.Elt(i))
			}
			assert.Equal(t, gen.Cond(), spec.Cond())
			assert.Equal(t, b2.IsComplete(), b1.IsComplete())
		})
	}
}

func TestWriteClearsCompleteness(t *testing.T) {
	d := vector.Doubles(1, 2)
	a, err := NewCache(0).OpenWrite(d)
	require.NoError(t, err)
	require.True(t, a.Writable())

	a.SetDouble(0, 5)
	assert.True(t, d.IsComplete())

	a.SetDouble(1, model.NADouble)
	assert.False(t, d.IsComplete())
	assert.Equal(t, 5.0, d.At(0))
}

func TestWriteCoerces(t *testing.T) {
	d := vector.Ints(0)
	a, err := NewCache(0).OpenWrite(d)
	require.NoError(t, err)
	a.SetDouble(0, 2.7)
	assert.Equal(t, int32(2), d.At(0))

	a.SetDouble(0, 1e12)
	assert.Equal(t, model.NAInteger, d.At(0))
	assert.True(t, a.Cond().Has(model.CondNAIntroduced))
}

func TestOpenWriteRejections(t *testing.T) {
	shared := vector.Doubles(1)
	shared.MarkShared()

	_, err := NewCache(0).OpenWrite(shared)
	require.ErrorIs(t, err, vector.ErrShared)
	_, err = Generic.OpenWrite(shared)
	require.ErrorIs(t, err, vector.ErrShared)

	ro, err := vector.WrapForeign(model.KindRaw, vector.NewSliceHandle([]byte{1}, true))
	require.NoError(t, err)
	_, err = NewCache(0).OpenWrite(ro)
	require.ErrorIs(t, err, vector.ErrReadOnly)

	seq, err := vector.NewIntSequence(1, 1, 3)
	require.NoError(t, err)
	s, ok := Specialize(KeyOf(seq))
	require.True(t, ok)
	_, err = s.OpenWrite(nil)
	require.ErrorIs(t, err, vector.ErrReadOnly)
}

func TestReadOnlyAccessPanicsOnWrite(t *testing.T) {
	a, err := NewCache(0).Open(vector.Ints(1))
	require.NoError(t, err)
	assert.False(t, a.Writable())
	assert.Panics(t, func() { a.SetInteger(0, 2) })

	g, err := Generic.Open(vector.Ints(1))
	require.NoError(t, err)
	assert.Panics(t, func() { g.SetInteger(0, 2) })
}

func TestForeignWriteThroughAccess(t *testing.T) {
	f, err := vector.NewForeign(model.KindInteger, 3, vector.HeapAllocator())
	require.NoError(t, err)
	a, err := NewCache(0).OpenWrite(f)
	require.NoError(t, err)
	assert.Equal(t, vector.RepForeign, a.Key().Rep)

	a.SetInteger(0, 10)
	a.SetDouble(2, 3.9)
	assert.True(t, f.Elt(0).Equal(model.Int(10)))
	assert.True(t, f.Elt(2).Equal(model.Int(3)))
	assert.True(t, f.IsComplete())

	a.SetInteger(1, model.NAInteger)
	assert.False(t, f.IsComplete())
}
