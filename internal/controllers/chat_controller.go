package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/ai"
	"github.com/smartclass/sentinel_backend/internal/insights"
	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

type ChatController struct {
	Store  *store.RecordStore
	Roster *store.Roster
	AI     *ai.Client
}

// Post forwards the user message to the AI service together with the current
// classroom snapshot. If the service fails for any reason the reply is built
// from the fallback templates instead; the client still gets a 200.
func (cc *ChatController) Post(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	snap := insights.Compute(cc.Store.Records(), cc.Roster.Students(), time.Now())

	response, err := cc.AI.Chat(c.Request.Context(), ai.SystemPrompt(snap), req.Message)
	if err != nil {
		log.Printf("chat: AI service unavailable, using fallback: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"response":  ai.FallbackResponse(req.Message, snap),
			"insights":  snap,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"fallback":  true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  response,
		"insights":  snap,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
