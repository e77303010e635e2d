package services

import (
	"errors"

	"inkwell/app/apperr"
	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// Identical for unknown email and wrong password, so a caller cannot
// probe which accounts exist.
const incorrectCredentials = "incorrect credentials"

// UserService handles signup, login and user reads
type UserService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	bcryptCost  int
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, bcryptCost int) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		bcryptCost:  bcryptCost,
	}
}

// Signup validates the fields, hashes the password and creates the user.
// An empty password fails validation alongside the other fields; a
// duplicate email is a conflict.
func (s *UserService) Signup(name, email, password string) (*models.User, error) {
	user := &models.User{Name: name, Email: email}
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, apperr.Conflict("email is already registered")
		}
		return nil, apperr.Unexpected(err)
	}
	return user, nil
}

// Login verifies the credentials and returns the user. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.Unauthenticated(incorrectCredentials)
		}
		return nil, apperr.Unexpected(err)
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.Unauthenticated(incorrectCredentials)
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, repoErr(err, "User not found")
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return users, nil
}

// ListUserPosts retrieves the posts owned by a user
func (s *UserService) ListUserPosts(userID int) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return posts, nil
}

// ListUserComments retrieves the comments owned by a user
func (s *UserService) ListUserComments(userID int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return comments, nil
}
