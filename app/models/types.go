package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int       `json:"id" validate:"-"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" validate:"required"`
	PasswordHash string    `json:"-" validate:"required"`
	CreatedAt    time.Time `json:"createdAt" validate:"-"`
}

// PublicUser is the view of a user returned to clients.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post represents a blog post with comments.
type Post struct {
	ID        int        `json:"id" validate:"-"`
	Title     string     `json:"title" validate:"required,min=3,max=50"`
	Content   string     `json:"content" validate:"required,min=1,max=500"`
	UserID    int        `json:"userId" validate:"required,gt=0"`
	CreatedAt time.Time  `json:"createdAt" validate:"-"`
	Comments  []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int       `json:"id" validate:"-"`
	PostID    int       `json:"postId" validate:"required,gt=0"`
	UserID    int       `json:"userId" validate:"required,gt=0"`
	Content   string    `json:"content" validate:"required,min=1,max=500"`
	CreatedAt time.Time `json:"createdAt" validate:"-"`
}

// Session binds an opaque token to a user identity for a bounded time.
// Sessions are only created and destroyed, never mutated.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OwnerID reports the owning user, for ownership checks.
func (p *Post) OwnerID() int { return p.UserID }

// OwnerID reports the owning user, for ownership checks.
func (c *Comment) OwnerID() int { return c.UserID }

// Public returns the client-facing view of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
