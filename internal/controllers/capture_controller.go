package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/capture"
)

type CaptureController struct {
	Capture *capture.Controller
}

// Start begins a capture session (no-op if one is already running).
func (cc *CaptureController) Start(c *gin.Context) {
	sessionID := cc.Capture.Start()
	c.JSON(http.StatusOK, gin.H{"running": true, "session_id": sessionID})
}

// Stop halts the active capture session.
func (cc *CaptureController) Stop(c *gin.Context) {
	cc.Capture.Stop()
	c.JSON(http.StatusOK, gin.H{"running": false})
}

// Status reports whether capture is running and how many students have been
// recorded in the current session.
func (cc *CaptureController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Capture.Status())
}
