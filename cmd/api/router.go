package api

import (
	"net/http"

	"evently-backend/internal/auth/delivery"
	authUsecase "evently-backend/internal/auth/usecase"
	eventDelivery "evently-backend/internal/event/delivery"
	eventUsecase "evently-backend/internal/event/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, eventUc eventUsecase.EventUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	eventHandler := eventDelivery.NewEventHandler(eventUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/auth/google", authHandler.GoogleSignIn)
	r.GET("/auth/me", delivery.AuthMiddleware(authUc), authHandler.Me)

	// Public discovery search (no auth, crosses organizers)
	r.GET("/search", eventHandler.Search)

	// Event routes (protected, scoped to the caller as organizer)
	events := r.Group("/events")
	events.Use(delivery.AuthMiddleware(authUc))
	{
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.GetEvents)
		events.GET("/organizer", eventHandler.GetOrganizerEvents)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
	}
}
