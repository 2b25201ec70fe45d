package routes

import (
	"github.com/gin-gonic/gin"

	"transcription-service/internal/api/handlers"
	"transcription-service/internal/api/services"
)

// RegisterRoutes registers all transcription API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.POST("", transcriptionHandler.Create)
		transcriptions.GET("/:id", transcriptionHandler.Get)
		transcriptions.PUT("/:id", transcriptionHandler.Update)
		transcriptions.DELETE("/:id", transcriptionHandler.Delete)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}
