package main

import (
	"log"

	api "evently-backend/cmd/api"
	authRepo "evently-backend/internal/auth/repository"
	authUsecase "evently-backend/internal/auth/usecase"
	eventRepo "evently-backend/internal/event/repository"
	eventUsecase "evently-backend/internal/event/usecase"
	"evently-backend/pkg/config"
	"evently-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrate schemas and indexes
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	eventRepository := eventRepo.NewGormEventRepository(db)

	// Initialize use cases
	googleVerifier := authUsecase.NewGoogleVerifier(cfg.GoogleClientID)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, googleVerifier, cfg)
	eventUsecaseInstance := eventUsecase.NewEventUsecase(eventRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, eventUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
