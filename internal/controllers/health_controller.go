package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/ai"
)

type HealthController struct {
	AI *ai.Client
}

// Get reports service health and whether the AI collaborator is usable.
func (hc *HealthController) Get(c *gin.Context) {
	aiStatus := "missing"
	if hc.AI.Configured() {
		aiStatus = "configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"ai_api_key": aiStatus,
	})
}
