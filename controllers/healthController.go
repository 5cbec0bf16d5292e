package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/oshomadesse/health-score-api/helpers"
	"github.com/oshomadesse/health-score-api/middleware"
	"github.com/oshomadesse/health-score-api/models"
	"github.com/oshomadesse/health-score-api/observability"
	"github.com/oshomadesse/health-score-api/services"
)

var validate = validator.New()

// SaveHealth stores a canonical health record under its date plus the
// latest sentinel.
func SaveHealth(store services.HealthStore, m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data models.HealthData
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format"})
			return
		}
		if err := validate.Struct(data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format", "details": err.Error()})
			return
		}

		if err := store.SaveRecord(c.Request.Context(), data); err != nil {
			m.StoreError()
			log.Printf("[%s] failed to save health record: %v", c.GetString(middleware.RequestIDKey), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GetLatestHealth returns the most recently stored record.
func GetLatestHealth(store services.HealthStore, m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := store.LatestRecord(c.Request.Context())
		if errors.Is(err, services.ErrNoRecord) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No data available"})
			return
		}
		if err != nil {
			m.StoreError()
			log.Printf("[%s] failed to load latest record: %v", c.GetString(middleware.RequestIDKey), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

// ScoreHealth scores a record supplied in the request body without storing
// anything. Legacy six-family payloads are accepted and folded into the
// canonical schema first.
func ScoreHealth(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.LegacyVitals
		if err := c.BindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format"})
			return
		}
		if err := validate.Struct(payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format", "details": err.Error()})
			return
		}

		data := payload.Record()
		score := services.CalculateScore(data)
		m.ScoreComputed()

		c.JSON(http.StatusOK, gin.H{
			"score":     score,
			"condition": services.ConditionFor(score.Total),
		})
	}
}

// SyncHealth aggregates yesterday's provider samples using the caller's
// bearer credential, merges them over the stored latest record (or the
// defaults when the store is empty), scores the result and persists it.
func SyncHealth(store services.HealthStore, fit *services.FitClient, m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		start := time.Now()
		partial, err := fit.FetchYesterday(c.Request.Context(), token)
		m.ObserveSync(time.Since(start))
		if err != nil {
			log.Printf("[%s] provider aggregation failed: %v", c.GetString(middleware.RequestIDKey), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch provider data", "details": err.Error()})
			return
		}

		base, err := store.LatestRecord(c.Request.Context())
		if errors.Is(err, services.ErrNoRecord) {
			base = models.DefaultHealthData()
		} else if err != nil {
			m.StoreError()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
			return
		}

		data := models.Merge(base, partial)
		if data.Date == "" {
			// Empty provider bucket and empty store: date the record for the
			// day the sync covered.
			data.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		}
		score := services.CalculateScore(data)
		m.ScoreComputed()

		if err := store.SaveRecord(c.Request.Context(), data); err != nil {
			m.StoreError()
			log.Printf("[%s] failed to save synced record: %v", c.GetString(middleware.RequestIDKey), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"record":    data,
			"score":     score,
			"condition": services.ConditionFor(score.Total),
		})
	}
}
