package session

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUnknownSessionIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	history, err := store.Load(context.Background(), "nope")

	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	history := []*schema.Message{
		schema.UserMessage("hi"),
		schema.AssistantMessage("hello!", nil),
	}

	require.NoError(t, store.Save(ctx, "s1", history))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, history, loaded)
}

func TestMemoryStoreIsolatesSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", []*schema.Message{schema.UserMessage("from a")}))
	require.NoError(t, store.Save(ctx, "b", []*schema.Message{schema.UserMessage("from b")}))

	a, err := store.Load(ctx, "a")
	require.NoError(t, err)
	b, err := store.Load(ctx, "b")
	require.NoError(t, err)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "from a", a[0].Content)
	assert.Equal(t, "from b", b[0].Content)
}

func TestMemoryStoreCopiesOnLoadAndSave(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []*schema.Message{schema.UserMessage("hi")}
	require.NoError(t, store.Save(ctx, "s", original))

	// Mutating the caller's slice after save must not affect the store.
	original[0] = schema.UserMessage("mutated")

	loaded, err := store.Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "hi", loaded[0].Content)

	// Appending to a loaded slice must not leak into the store.
	_ = append(loaded, schema.AssistantMessage("extra", nil))
	again, err := store.Load(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
