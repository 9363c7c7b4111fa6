package router

import (
	"net/http"

	"persona-registry/internal/adapter/gin/handler"
	"persona-registry/internal/adapter/gin/middleware"
	"persona-registry/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(personaHandler *handler.PersonaHandler, serviceName string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(logger.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(logger.AccessLog(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		personas := v1.Group("/personas")
		{
			personas.GET("", personaHandler.ListPersonas)
			personas.POST("", personaHandler.CreatePersona)
			personas.PUT("", personaHandler.UpdatePersona)
			personas.DELETE("", personaHandler.RemovePersona)
		}
	}

	return router
}
