package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kiranakart/internal/storage"
)

func TestStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := New()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	out, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestStore_RemoveManyIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	s := New(WithFailures(func(op, key string) error {
		if op == "remove" && key == storage.KeyBills {
			return boom
		}
		return nil
	}))

	require.NoError(t, s.Set(ctx, storage.KeyUser, []byte("{}")))
	require.NoError(t, s.Set(ctx, storage.KeyBills, []byte("[]")))

	err := s.RemoveMany(ctx, storage.AccountKeys)
	require.ErrorIs(t, err, boom)

	var storageErr *storage.Error
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, storage.KeyBills, storageErr.Key)
	assert.Equal(t, 2, s.Len())
}

func TestStore_ApplyAndClose(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Set(ctx, "old", []byte("1")))

	var batch storage.Batch
	require.NoError(t, batch.Put("new", map[string]int{"n": 1}))
	batch.Removes = []string{"old"}
	require.NoError(t, s.Apply(ctx, batch))

	_, ok, _ := s.Get(ctx, "old")
	assert.False(t, ok)
	var got map[string]int
	found, err := storage.GetJSON(ctx, s, "new", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, got["n"])

	require.NoError(t, s.Close())
	_, _, err = s.Get(ctx, "new")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestStore_WithoutBatch(t *testing.T) {
	s := New()
	_, ok := s.WithoutBatch().(storage.Batcher)
	assert.False(t, ok)

	var plain storage.Store = s
	_, ok = plain.(storage.Batcher)
	assert.True(t, ok)
}
