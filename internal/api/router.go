package api

import (
	"net/http"
	"time"

	"eventdesk/internal/api/handler"
	authMiddleware "eventdesk/internal/api/middleware"
	"eventdesk/internal/app/service"
	"eventdesk/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	eventService *service.EventService,
	registrationService *service.RegistrationService,
	statsService *service.StatsService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present and puts claims in context. The
	// Authenticator below decides which routes actually require one.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	userHandler := handler.NewUserHandler(authService, userService)
	eventHandler := handler.NewEventHandler(eventService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	statsHandler := handler.NewStatsHandler(statsService)
	authHandler := handler.NewAuthHandler(authService)

	// Public routes: signup, aggregate counts, and the session endpoints.
	userHandler.RegisterPublicRoutes(r)
	statsHandler.RegisterRoutes(r)
	r.Route("/api", authHandler.RegisterRoutes)

	// Everything else requires a valid access token.
	r.Group(func(protected chi.Router) {
		protected.Use(authMiddleware.Authenticator)
		userHandler.RegisterProtectedRoutes(protected)
		eventHandler.RegisterRoutes(protected)
		registrationHandler.RegisterRoutes(protected)
	})

	return r
}
