package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

type RecordController struct {
	Store *store.RecordStore
}

// List returns attendance records, optionally filtered by session or student.
func (rc *RecordController) List(c *gin.Context) {
	sessionID := c.Query("session_id")
	studentID := c.Query("student_id")

	records := rc.Store.Records()
	if sessionID != "" || studentID != "" {
		filtered := make([]models.AttendanceRecord, 0, len(records))
		for _, rec := range records {
			if sessionID != "" && rec.SessionID != sessionID {
				continue
			}
			if studentID != "" && rec.StudentID != studentID {
				continue
			}
			filtered = append(filtered, rec)
		}
		records = filtered
	}

	c.JSON(http.StatusOK, gin.H{"data": records, "meta": gin.H{"total": len(records)}})
}

// Export streams the full record set as CSV for spreadsheet tooling.
func (rc *RecordController) Export(c *gin.Context) {
	filename := fmt.Sprintf("attendance-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "student_id", "student_name", "timestamp", "emotion", "confidence", "session_id"})
	for _, rec := range rc.Store.Records() {
		_ = w.Write([]string{
			rec.ID,
			rec.StudentID,
			rec.StudentName,
			rec.Timestamp.Format(time.RFC3339),
			rec.Emotion,
			strconv.FormatFloat(rec.Confidence, 'f', 2, 64),
			rec.SessionID,
		})
	}
	w.Flush()
}
