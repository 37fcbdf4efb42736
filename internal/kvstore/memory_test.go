package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingKey(t *testing.T) {
	s := NewMemory()

	_, err := s.Get(context.Background(), "pos_products")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPutOverwrites(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "pos_lang", []byte(`"en"`)))
	require.NoError(t, s.Put(ctx, "pos_lang", []byte(`"ar"`)))

	got, err := s.Get(ctx, "pos_lang")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"ar"`), got)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte("abc")))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'z'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
