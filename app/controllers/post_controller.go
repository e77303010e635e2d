package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inkwell/app/auth"
	"inkwell/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid post ID"})
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post owned by the acting identity
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	post, err := pc.postService.CreatePost(identity, req.Title, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Update handles patching an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid post ID"})
		return
	}

	var patch services.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	post, err := pc.postService.UpdatePost(identity, id, patch)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post together with its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid post ID"})
		return
	}

	if err := pc.postService.DeletePost(identity, id); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// pathID extracts a numeric path variable.
func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}
