package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdesk/internal/api"
	"eventdesk/internal/app/service"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/platform/config"
	"eventdesk/internal/platform/database"
	"eventdesk/internal/platform/denylist"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load Configuration & Logger
	config.Load()
	config.NewLogger(config.AppConfig)
	log.Info().Msg("Configuration loaded")

	// 2. Initialize JWT
	security.InitJWT()
	log.Info().Msg("JWT initialized")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()

	// 4. Initialize Redis (refresh-token denylist)
	denylist.ConnectRedis()
	defer denylist.CloseRedis()
	revoked := denylist.NewRedis(denylist.RDB)

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	eventRepo := repository.NewPgEventRepository(database.DB)
	registrationRepo := repository.NewPgRegistrationRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, revoked)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(registrationRepo, eventRepo)
	statsService := service.NewStatsService(eventRepo, registrationRepo)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, eventService, registrationService, statsService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Could not listen")
		}
	}()
	log.Info().Msg("Server started successfully")

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully")
}
