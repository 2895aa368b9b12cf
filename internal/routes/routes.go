package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartclass/sentinel_backend/internal/ai"
	"github.com/smartclass/sentinel_backend/internal/capture"
	"github.com/smartclass/sentinel_backend/internal/controllers"
	"github.com/smartclass/sentinel_backend/internal/store"
	"github.com/smartclass/sentinel_backend/internal/ws"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	DB      *gorm.DB
	Store   *store.RecordStore
	Roster  *store.Roster
	Capture *capture.Controller
	AI      *ai.Client
	Hub     *ws.LiveHub
}

func Register(r *gin.Engine, d Deps) {
	healthCtrl := &controllers.HealthController{AI: d.AI}
	analyticsCtrl := &controllers.AnalyticsController{Store: d.Store, Roster: d.Roster}
	chatCtrl := &controllers.ChatController{Store: d.Store, Roster: d.Roster, AI: d.AI}
	captureCtrl := &controllers.CaptureController{Capture: d.Capture}
	studentCtrl := &controllers.StudentController{DB: d.DB, Roster: d.Roster}
	recordCtrl := &controllers.RecordController{Store: d.Store}

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthCtrl.Get)
		api.GET("/analytics", analyticsCtrl.Get)
		api.POST("/chat", chatCtrl.Post)

		api.POST("/capture/start", captureCtrl.Start)
		api.POST("/capture/stop", captureCtrl.Stop)
		api.GET("/capture/status", captureCtrl.Status)

		api.GET("/students", studentCtrl.List)
		api.POST("/students", studentCtrl.Create)

		api.GET("/records", recordCtrl.List)
		api.GET("/records/export", recordCtrl.Export)

		api.GET("/ws/live", ws.LiveHandler(d.Hub))
	}
}
