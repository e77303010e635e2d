package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// Index handles listing the comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid post ID"})
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles creating a comment on a post, owned by the acting
// identity
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid post ID"})
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	comment, err := cc.commentService.CreateComment(identity, postID, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// Update handles patching an existing comment
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	id, err := pathID(r, "commentId")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid comment ID"})
		return
	}

	var patch services.CommentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	comment, err := cc.commentService.UpdateComment(identity, id, patch)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	id, err := pathID(r, "commentId")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid comment ID"})
		return
	}

	if err := cc.commentService.DeleteComment(identity, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
