package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []Kind{KindLogical, KindInteger, KindDouble, KindComplex, KindCharacter, KindRaw, KindList}

func TestPromoteIdempotent(t *testing.T) {
	for _, k := range allKinds {
		got, err := Promote(k, k)
		require.NoError(t, err)
		assert.Equal(t, k, got, k.String())
	}
}

func TestPromoteLattice(t *testing.T) {
	tests := []struct {
		a, b Kind
		want Kind
	}{
		{KindLogical, KindInteger, KindInteger},
		{KindInteger, KindDouble, KindDouble},
		{KindDouble, KindComplex, KindComplex},
		{KindComplex, KindCharacter, KindCharacter},
		{KindCharacter, KindLogical, KindCharacter},
		{KindNull, KindDouble, KindDouble},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			got, err := Promote(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = Promote(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "promotion is symmetric")
		})
	}
}

func TestPromoteIncompatible(t *testing.T) {
	for _, k := range []Kind{KindLogical, KindInteger, KindDouble, KindCharacter, KindList} {
		_, err := Promote(KindRaw, k)
		assert.ErrorIs(t, err, ErrIncompatibleKind)
	}
	_, err := Promote(KindList, KindInteger)
	assert.ErrorIs(t, err, ErrIncompatibleKind)
}

func TestPromoteForArithmetic(t *testing.T) {
	got, err := PromoteForArithmetic(KindLogical, KindLogical)
	require.NoError(t, err)
	assert.Equal(t, KindInteger, got)

	got, err = PromoteForArithmetic(KindLogical, KindDouble)
	require.NoError(t, err)
	assert.Equal(t, KindDouble, got)
}

func TestParseKind(t *testing.T) {
	for _, k := range allKinds {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := ParseKind(" Numeric ")
	require.True(t, ok)
	assert.Equal(t, KindDouble, got)

	_, ok = ParseKind("matrix")
	assert.False(t, ok)
}
