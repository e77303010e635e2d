package repositories

import "inkwell/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	ListByUser(userID int) ([]*models.Post, error)
	Update(post *models.Post) error
	// DeleteWithComments removes the post and every comment attached to
	// it in a single transaction. Either all writes land or none do.
	DeleteWithComments(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	ListByUser(userID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// SessionRepository defines the interface for session token storage
type SessionRepository interface {
	Create(session *models.Session) error
	Get(token string) (*models.Session, error)
	Delete(token string) error
}
