package services

import (
	"inkwell/app/apperr"
	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// PostPatch carries a partial update; nil fields are left unchanged.
type PostPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CreatePost creates a new post owned by the acting identity. Ownership
// is established here and never checked on creation.
func (s *PostService) CreatePost(id auth.Identity, title, content string) (*models.Post, error) {
	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  id.UserID,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return post, nil
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, repoErr(err, "Post not found")
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves all posts
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return posts, nil
}

// UpdatePost applies a patch to a post after the ownership check. The
// merged record is re-validated against the same field constraints as
// creation.
func (s *PostService) UpdatePost(id auth.Identity, postID int, patch PostPatch) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, repoErr(err, "Post not found")
	}
	if err := auth.Authorize(id, post); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, repoErr(err, "Post not found")
	}
	return post, nil
}

// DeletePost deletes a post and all its comments after the ownership
// check. The cascade is all-or-nothing.
func (s *PostService) DeletePost(id auth.Identity, postID int) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return repoErr(err, "Post not found")
	}
	if err := auth.Authorize(id, post); err != nil {
		return err
	}

	if err := s.postRepo.DeleteWithComments(postID); err != nil {
		return repoErr(err, "Post not found")
	}
	return nil
}
