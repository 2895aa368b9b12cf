package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/insights"
	"github.com/smartclass/sentinel_backend/internal/store"
)

type AnalyticsController struct {
	Store  *store.RecordStore
	Roster *store.Roster
}

// Get computes a fresh insights snapshot plus recommendations from the live
// store. Always 200, even with no data yet (metrics render as zero values).
func (ac *AnalyticsController) Get(c *gin.Context) {
	snap := insights.Compute(ac.Store.Records(), ac.Roster.Students(), time.Now())
	c.JSON(http.StatusOK, gin.H{
		"insights":        snap,
		"recommendations": insights.Recommend(snap),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
