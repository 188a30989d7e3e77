package stubs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easy-travel/hotelbot/internal/domain"
)

func TestAddUserAbsorbsDuplicates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := domain.User{ID: 1, Name: "Анна", ConnectionDate: time.Now()}
	require.NoError(t, store.AddUser(ctx, first))

	// A repeat visit with a different name must not overwrite the original row.
	require.NoError(t, store.AddUser(ctx, domain.User{ID: 1, Name: "Другое имя"}))
	assert.Equal(t, "Анна", store.users[1].Name)
}

func TestRequestIDsAreSequential(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id1, err := store.AddRequest(ctx, domain.SearchRequest{UserID: 1})
	require.NoError(t, err)
	id2, err := store.AddRequest(ctx, domain.SearchRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)
}

func TestGetRequestNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetRequest(context.Background(), 77)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestCallbackLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddCallback(ctx, "code-1", "Москва"))

	name, err := store.GetCallbackArea(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "Москва", name)

	_, err = store.GetCallbackArea(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCallbackNotFound)
}

func TestDeleteExpiredCallbacks(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddCallback(ctx, "old", "Тверь"))
	store.callbacks["old"] = callbackEntry{areaName: "Тверь", createdAt: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, store.AddCallback(ctx, "fresh", "Сочи"))

	removed, err := store.DeleteExpiredCallbacks(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = store.GetCallbackArea(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrCallbackNotFound)
	_, err = store.GetCallbackArea(ctx, "fresh")
	assert.NoError(t, err)
}
