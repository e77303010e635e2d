package routes

import (
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"

	"inkwell/app/auth"
	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// SetupRoutes wires repositories, services and controllers over the given
// Badger DB and returns the router.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)

	sessions := auth.NewSessions(sessionRepo, cfg.SessionTTL, cfg.SecureCookies)

	userService := services.NewUserService(userRepo, postRepo, commentRepo, cfg.BcryptCost)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	authController := controllers.NewAuthController(userService, sessions)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	userController := controllers.NewUserController(userService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	// Session surface. The auth gate is not applied here: signup/login
	// create the session and current_user reports its absence itself.
	authRoutes := router.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/signup", authController.Signup).Methods("POST")
	authRoutes.HandleFunc("/login", authController.Login).Methods("POST")
	authRoutes.HandleFunc("/logout", authController.Logout).Methods("DELETE")
	authRoutes.HandleFunc("/current_user", authController.CurrentUser).Methods("GET")

	requireAuth := middleware.RequireAuth(sessions)

	// Posts and their comments
	posts := router.PathPrefix("/posts").Subrouter()
	posts.Use(requireAuth)
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Update).Methods("PATCH")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId:[0-9]+}/comments", commentController.Create).Methods("POST")
	posts.HandleFunc("/{postId:[0-9]+}/comments/{commentId:[0-9]+}", commentController.Update).Methods("PATCH")
	posts.HandleFunc("/{postId:[0-9]+}/comments/{commentId:[0-9]+}", commentController.Delete).Methods("DELETE")

	// User listings
	users := router.PathPrefix("/users").Subrouter()
	users.Use(requireAuth)
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}/posts", userController.Posts).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}/comments", userController.Comments).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
