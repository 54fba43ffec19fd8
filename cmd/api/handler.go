package api

import (
	authUsecase "evently-backend/internal/auth/usecase"
	eventUsecase "evently-backend/internal/event/usecase"
	"evently-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	eventUsecase eventUsecase.EventUsecase
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, eventUc eventUsecase.EventUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:  authUc,
		eventUsecase: eventUc,
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", h.config.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.eventUsecase)

	return r.Run(addr)
}
