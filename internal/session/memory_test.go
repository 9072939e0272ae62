package session

import (
	"context"
	"testing"
	"time"

	"tallypos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGetRevoke(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	id := Identity{UserID: 7, Username: "clerk", Role: model.RoleWriter}
	require.NoError(t, s.Put(ctx, "tok", id, time.Hour))

	got, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, id, *got)

	require.NoError(t, s.Revoke(ctx, "tok"))
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "tok", Identity{UserID: 1}, -time.Second))
	_, err := s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewToken()
		require.NoError(t, err)
		assert.NotEmpty(t, tok)
		assert.False(t, seen[tok], "duplicate token")
		seen[tok] = true
	}
}
