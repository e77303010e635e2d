package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/app/models"
)

func TestSessionRepository(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewBadgerSessionRepository(db)

	now := time.Now().Truncate(time.Second)
	session := &models.Session{
		Token:     "11111111-2222-3333-4444-555555555555",
		UserID:    42,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	t.Run("create and get", func(t *testing.T) {
		assert.NoError(t, repo.Create(session))

		got, err := repo.Get(session.Token)
		assert.NoError(t, err)
		assert.Equal(t, 42, got.UserID)
		assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := repo.Get("no-such-token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, repo.Delete(session.Token))

		_, err := repo.Get(session.Token)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.NoError(t, repo.Delete(session.Token))
	})
}
