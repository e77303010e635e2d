package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/app/apperr"
)

func TestPostValidation(t *testing.T) {
	valid := func() *Post {
		return &Post{
			Title:   "Valid Title",
			Content: "Some content",
			UserID:  1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr bool
		wantMsg string
	}{
		{
			name:   "valid post",
			mutate: func(p *Post) {},
		},
		{
			name:    "title too short",
			mutate:  func(p *Post) { p.Title = "ab" },
			wantErr: true,
			wantMsg: "Your title should be between 3 and 50 characters",
		},
		{
			name:   "title at lower bound",
			mutate: func(p *Post) { p.Title = "abc" },
		},
		{
			name:   "title at upper bound",
			mutate: func(p *Post) { p.Title = strings.Repeat("a", 50) },
		},
		{
			name:    "title too long",
			mutate:  func(p *Post) { p.Title = strings.Repeat("a", 51) },
			wantErr: true,
			wantMsg: "Your title should be between 3 and 50 characters",
		},
		{
			name:    "content empty",
			mutate:  func(p *Post) { p.Content = "" },
			wantErr: true,
			wantMsg: "Your post content must be between 1 and 500 characters",
		},
		{
			name:   "content at lower bound",
			mutate: func(p *Post) { p.Content = "x" },
		},
		{
			name:   "content at upper bound",
			mutate: func(p *Post) { p.Content = strings.Repeat("x", 500) },
		},
		{
			name:    "content too long",
			mutate:  func(p *Post) { p.Content = strings.Repeat("x", 501) },
			wantErr: true,
			wantMsg: "Your post content must be between 1 and 500 characters",
		},
		{
			name:    "missing owner",
			mutate:  func(p *Post) { p.UserID = 0 },
			wantErr: true,
			wantMsg: "Post must have an owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := valid()
			tt.mutate(post)
			err := post.Validate()
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

func TestPostValidationCollectsAllFields(t *testing.T) {
	post := &Post{Title: "ab", Content: "", UserID: 1}
	err := post.Validate()
	assert.Error(t, err)

	fields := apperr.FieldsOf(err)
	assert.Len(t, fields, 2)
	assert.Contains(t, fields, "Your title should be between 3 and 50 characters")
	assert.Contains(t, fields, "Your post content must be between 1 and 500 characters")
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "Test Post", Content: "Test Content", UserID: 1}

	assert.True(t, post.CreatedAt.IsZero())
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostOwnerID(t *testing.T) {
	post := &Post{UserID: 42}
	assert.Equal(t, 42, post.OwnerID())
}
