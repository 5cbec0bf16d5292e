package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oshomadesse/health-score-api/controllers"
	"github.com/oshomadesse/health-score-api/observability"
	"github.com/oshomadesse/health-score-api/services"
)

func SetupRoutes(router *gin.RouterGroup, store services.HealthStore, fit *services.FitClient, m *observability.Metrics) {
	router.POST("/health", controllers.SaveHealth(store, m))
	router.GET("/health/latest", controllers.GetLatestHealth(store, m))
	router.POST("/health/score", controllers.ScoreHealth(m))
	router.POST("/health/sync", controllers.SyncHealth(store, fit, m))
}
