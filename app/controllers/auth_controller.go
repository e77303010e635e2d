package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/services"
)

// AuthController handles signup, login, logout and the current-user read
type AuthController struct {
	userService *services.UserService
	sessions    *auth.Sessions
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, sessions *auth.Sessions) *AuthController {
	return &AuthController{userService: userService, sessions: sessions}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a user and opens a session for it
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	user, err := ac.userService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	session, err := ac.sessions.Create(user.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	ac.sessions.SetCookie(w, session)

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    map[string]string{"name": user.Name, "email": user.Email},
	})
}

// Login verifies credentials and opens a new session
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	user, err := ac.userService.Login(req.Email, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	session, err := ac.sessions.Create(user.ID)
	if err != nil {
		sendError(w, err)
		return
	}
	ac.sessions.SetCookie(w, session)

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in successfully",
		"user":    map[string]string{"name": user.Name, "email": user.Email},
	})
}

// Logout destroys the current session. Logging out without one is still a
// success.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFrom(r); token != "" {
		if err := ac.sessions.Destroy(token); err != nil {
			sendError(w, err)
			return
		}
	}
	ac.sessions.ClearCookie(w)
	sendJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CurrentUser reports the identity behind the session, or user:null with
// a 401 when there is none. This read does not go through the auth gate.
func (ac *AuthController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := ac.sessions.Resolve(auth.TokenFrom(r))
	if !ok {
		sendJSON(w, http.StatusUnauthorized, map[string]interface{}{"user": nil})
		return
	}

	user, err := ac.userService.GetUser(userID)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}
