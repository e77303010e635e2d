package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/app/apperr"
)

func TestCommentValidation(t *testing.T) {
	valid := func() *Comment {
		return &Comment{
			PostID:  1,
			UserID:  1,
			Content: "A comment",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Comment)
		wantErr bool
		wantMsg string
	}{
		{
			name:   "valid comment",
			mutate: func(c *Comment) {},
		},
		{
			name:    "content empty",
			mutate:  func(c *Comment) { c.Content = "" },
			wantErr: true,
			wantMsg: "Your comment must be between 1 and 500 characters",
		},
		{
			name:   "content at upper bound",
			mutate: func(c *Comment) { c.Content = strings.Repeat("x", 500) },
		},
		{
			name:    "content too long",
			mutate:  func(c *Comment) { c.Content = strings.Repeat("x", 501) },
			wantErr: true,
			wantMsg: "Your comment must be between 1 and 500 characters",
		},
		{
			name:    "missing post reference",
			mutate:  func(c *Comment) { c.PostID = 0 },
			wantErr: true,
			wantMsg: "Comment must belong to a post",
		},
		{
			name:    "missing owner",
			mutate:  func(c *Comment) { c.UserID = 0 },
			wantErr: true,
			wantMsg: "Comment must have an owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := valid()
			tt.mutate(comment)
			err := comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Contains(t, apperr.FieldsOf(err), tt.wantMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentBeforeCreate(t *testing.T) {
	comment := &Comment{PostID: 1, UserID: 1, Content: "hello"}

	assert.True(t, comment.CreatedAt.IsZero())
	comment.BeforeCreate()
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCommentOwnerID(t *testing.T) {
	comment := &Comment{UserID: 7}
	assert.Equal(t, 7, comment.OwnerID())
}
