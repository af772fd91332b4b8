package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/lease-engine/lease/store"
)

func TestMemory_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	_, ok, err := kv.Load(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Save(ctx, "a", "1"))
	require.NoError(t, kv.Save(ctx, "a", "2"), "saves overwrite")

	value, ok, err := kv.Load(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "a"), "deleting a missing key is fine")

	_, ok, err = kv.Load(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_KeysSortedAndClear(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	require.NoError(t, kv.Save(ctx, "b", "2"))
	require.NoError(t, kv.Save(ctx, "a", "1"))
	require.NoError(t, kv.Save(ctx, "c", "3"))

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, kv.Clear(ctx))
	keys, err = kv.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
