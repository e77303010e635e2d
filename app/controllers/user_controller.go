package controllers

import (
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"
)

// UserController handles the read-only user listing endpoints. Any
// authenticated identity may view them; there is no ownership check on
// reads.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Index handles listing all users in their public view
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := uc.userService.ListUsers()
	if err != nil {
		sendError(w, err)
		return
	}

	public := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	sendJSON(w, http.StatusOK, public)
}

// Posts handles listing the posts owned by a user
func (uc *UserController) Posts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user ID"})
		return
	}

	posts, err := uc.userService.ListUserPosts(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Comments handles listing the comments owned by a user
func (uc *UserController) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid user ID"})
		return
	}

	comments, err := uc.userService.ListUserComments(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}
