package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statvec/model"
)

func TestForeignMapped(t *testing.T) {
	f, err := NewForeign(model.KindDouble, 4, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	assert.Equal(t, RepForeign, f.Representation())
	assert.Equal(t, 4, f.Len())
	assert.True(t, f.IsComplete())
	assert.True(t, f.Elt(3).Equal(model.Float(0)))

	require.NoError(t, f.SetElt(1, model.Float(2.5)))
	assert.True(t, f.Elt(1).Equal(model.Float(2.5)))

	view, err := ForeignView[float64](f)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 0, 0}, view)

	require.NoError(t, f.SetElt(2, model.NA(model.KindDouble)))
	assert.False(t, f.IsComplete())
	assert.Equal(t, []int{2}, WhichNA(f))
}

func TestForeignKinds(t *testing.T) {
	for _, k := range []model.Kind{model.KindLogical, model.KindInteger, model.KindComplex, model.KindRaw} {
		t.Run(k.String(), func(t *testing.T) {
			f, err := NewForeign(k, 2, HeapAllocator())
			require.NoError(t, err)
			require.NoError(t, f.SetElt(0, model.Int(1)))
			e, _ := model.Int(1).Convert(k)
			assert.True(t, f.Elt(0).Equal(e))
		})
	}

	_, err := NewForeign(model.KindCharacter, 1, nil)
	require.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = NewForeign(model.KindInteger, -1, nil)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestWrapForeign(t *testing.T) {
	buf := make([]byte, 12)
	h := NewSliceHandle(buf, false)
	f, err := WrapForeign(model.KindInteger, h)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Len())

	require.NoError(t, f.SetElt(2, model.Int(42)))
	view, err := ForeignView[int32](f)
	require.NoError(t, err)
	assert.Equal(t, int32(42), view[2])

	_, err = ForeignView[float64](f)
	require.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = WrapForeign(model.KindDouble, NewSliceHandle(make([]byte, 12), false))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestForeignReadOnlyAndClosed(t *testing.T) {
	f, err := WrapForeign(model.KindRaw, NewSliceHandle([]byte{1, 2}, true))
	require.NoError(t, err)
	assert.True(t, f.ReadOnly())
	require.ErrorIs(t, f.SetElt(0, model.Byte(9)), ErrReadOnly)
	assert.True(t, f.Elt(0).Equal(model.Byte(1)))

	b, err := CopyOnWrite(f)
	require.NoError(t, err)
	assert.Equal(t, RepDense, b.Representation())
	assert.Equal(t, []byte{1, 2}, b.(*Dense[byte]).Data())

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
	assert.True(t, f.Closed())
	_, err = ForeignView[byte](f)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, f.SetElt(0, model.Byte(3)), ErrClosed)
	assert.PanicsWithValue(t, ErrClosed, func() { f.Elt(0) })
	assert.Equal(t, "<closed foreign raw>", f.String())

	w, err := NewForeign(model.KindDouble, 2, HeapAllocator())
	require.NoError(t, err)
	require.NoError(t, w.SetElt(1, model.NA(model.KindDouble)))
	require.NoError(t, w.Close())
	assert.False(t, w.Rescan())
}

func TestForeignAllocatorFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewForeign(model.KindDouble, 2, AllocatorFunc(func(int) (Handle, error) { return nil, boom }))
	require.ErrorIs(t, err, boom)

	_, err = NewForeign(model.KindDouble, 2, AllocatorFunc(func(int) (Handle, error) {
		return NewSliceHandle(make([]byte, 8), false), nil
	}))
	require.ErrorIs(t, err, ErrInvalidLength)
}
