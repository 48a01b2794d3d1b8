package handlers

import (
	"flashcards/internal/config"
	"flashcards/internal/middleware"
	"flashcards/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	session := middleware.NewSession(config.AuthSecret, config.EnableHTTPS)

	r.Use(middleware.WithLogging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(session.WithAuth)

	// Handlers
	userHandler := NewUserHandler(userService, session, logger)

	r.Get("/", userHandler.Home)

	// Account routes
	r.Get("/usercreate", userHandler.UserCreateForm)
	r.Post("/usercreate", userHandler.UserCreate)
	r.Get("/login", userHandler.LoginForm)
	r.Post("/login", userHandler.Login)
	r.Get("/logout", userHandler.Logout)

	return &Handler{Router: r}
}
