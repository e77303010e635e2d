package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/app/models"
)

func TestCommentRepository(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewBadgerCommentRepository(db)

	t.Run("create and get comment", func(t *testing.T) {
		comment := &models.Comment{
			PostID:  1,
			UserID:  2,
			Content: "Test Comment",
		}

		err := repo.Create(comment)
		assert.NoError(t, err)
		assert.Greater(t, comment.ID, 0)

		retrieved, err := repo.GetByID(comment.ID)
		assert.NoError(t, err)
		assert.Equal(t, comment.Content, retrieved.Content)
		assert.Equal(t, 1, retrieved.PostID)
		assert.Equal(t, 2, retrieved.UserID)
	})

	t.Run("list by post", func(t *testing.T) {
		require.NoError(t, repo.Create(&models.Comment{PostID: 1, UserID: 2, Content: "another"}))
		require.NoError(t, repo.Create(&models.Comment{PostID: 9, UserID: 2, Content: "elsewhere"}))

		comments, err := repo.ListByPost(1)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)

		empty, err := repo.ListByPost(404)
		assert.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("list by user", func(t *testing.T) {
		require.NoError(t, repo.Create(&models.Comment{PostID: 1, UserID: 3, Content: "by someone else"}))

		comments, err := repo.ListByUser(2)
		assert.NoError(t, err)
		assert.Len(t, comments, 3)
	})

	t.Run("update comment", func(t *testing.T) {
		comment := &models.Comment{PostID: 1, UserID: 2, Content: "before"}
		require.NoError(t, repo.Create(comment))

		comment.Content = "after"
		assert.NoError(t, repo.Update(comment))

		updated, err := repo.GetByID(comment.ID)
		assert.NoError(t, err)
		assert.Equal(t, "after", updated.Content)
	})

	t.Run("delete comment", func(t *testing.T) {
		comment := &models.Comment{PostID: 1, UserID: 2, Content: "doomed"}
		require.NoError(t, repo.Create(comment))

		assert.NoError(t, repo.Delete(comment.ID))

		_, err := repo.GetByID(comment.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete(999), ErrNotFound)
		assert.ErrorIs(t, repo.Update(&models.Comment{ID: 999, PostID: 1, UserID: 1, Content: "x"}), ErrNotFound)
	})
}
