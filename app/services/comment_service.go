package services

import (
	"inkwell/app/apperr"
	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CommentPatch carries a partial update; a nil field is left unchanged.
type CommentPatch struct {
	Content *string `json:"content"`
}

// CreateComment creates a comment on an existing post, owned by the
// acting identity.
func (s *CommentService) CreateComment(id auth.Identity, postID int, content string) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, repoErr(err, "Post not found")
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  id.UserID,
		Content: content,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return comment, nil
}

// ListPostComments retrieves all comments for an existing post
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, repoErr(err, "Post not found")
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return comments, nil
}

// UpdateComment applies a patch to a comment after the ownership check.
func (s *CommentService) UpdateComment(id auth.Identity, commentID int, patch CommentPatch) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, repoErr(err, "Comment not found")
	}
	if err := auth.Authorize(id, comment); err != nil {
		return nil, err
	}

	if patch.Content != nil {
		comment.Content = *patch.Content
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, repoErr(err, "Comment not found")
	}
	return comment, nil
}

// DeleteComment deletes a comment after the ownership check.
func (s *CommentService) DeleteComment(id auth.Identity, commentID int) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return repoErr(err, "Comment not found")
	}
	if err := auth.Authorize(id, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return repoErr(err, "Comment not found")
	}
	return nil
}
