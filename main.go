package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/oshomadesse/health-score-api/config"
	"github.com/oshomadesse/health-score-api/middleware"
	"github.com/oshomadesse/health-score-api/observability"
	"github.com/oshomadesse/health-score-api/routes"
	"github.com/oshomadesse/health-score-api/services"
)

func main() {
	log.Println("Starting health score service...")

	config.LoadEnv()

	store := services.NewMongoHealthStore()
	fit := services.NewFitClient()
	metrics := observability.NewMetrics()

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.RequestID(), metrics.Instrument())

	api := r.Group("/api")
	routes.SetupRoutes(api, store, fit, metrics)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	port := config.Getenv("PORT", "8080")
	log.Printf("Listening on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
