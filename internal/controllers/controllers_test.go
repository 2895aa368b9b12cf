package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclass/sentinel_backend/internal/ai"
	"github.com/smartclass/sentinel_backend/internal/models"
	"github.com/smartclass/sentinel_backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func seedState() (*store.RecordStore, *store.Roster) {
	records := store.NewRecordStore()
	roster := store.NewRoster()
	roster.Replace([]models.Student{
		{ID: "s1", Name: "Riya Sen", Email: "riya.sen@school.edu"},
		{ID: "s2", Name: "Aryan Das", Email: "aryan.das@school.edu"},
	})
	records.Append(models.AttendanceRecord{
		ID: "r1", StudentID: "s1", StudentName: "Riya Sen",
		Timestamp: time.Now(), Emotion: models.EmotionHappy,
		Confidence: 0.9, SessionID: "sess-a",
	})
	return records, roster
}

func TestAnalyticsGet(t *testing.T) {
	records, roster := seedState()
	ctrl := &AnalyticsController{Store: records, Roster: roster}

	r := gin.New()
	r.GET("/api/v1/analytics", ctrl.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Insights struct {
			PresentStudents int            `json:"presentStudents"`
			TotalStudents   int            `json:"totalStudents"`
			AttendanceRate  int            `json:"attendanceRate"`
			EngagementScore int            `json:"engagementScore"`
			DominantEmotion string         `json:"dominantEmotion"`
			EmotionCounts   map[string]int `json:"emotionCounts"`
		} `json:"insights"`
		Recommendations []struct {
			Type     string `json:"type"`
			Priority string `json:"priority"`
		} `json:"recommendations"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Insights.PresentStudents)
	assert.Equal(t, 2, body.Insights.TotalStudents)
	assert.Equal(t, 50, body.Insights.AttendanceRate)
	assert.Equal(t, 100, body.Insights.EngagementScore)
	assert.Equal(t, "happy", body.Insights.DominantEmotion)
	assert.NotEmpty(t, body.Timestamp)

	// 50% attendance fires the high-priority attendance rule.
	require.NotEmpty(t, body.Recommendations)
	assert.Equal(t, "attendance", body.Recommendations[0].Type)
	assert.Equal(t, "high", body.Recommendations[0].Priority)
}

func TestAnalyticsGetNoData(t *testing.T) {
	ctrl := &AnalyticsController{Store: store.NewRecordStore(), Roster: store.NewRoster()}

	r := gin.New()
	r.GET("/api/v1/analytics", ctrl.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil))

	// Metrics render as zeros rather than erroring when there is no data yet.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dominantEmotion":"neutral"`)
	assert.Contains(t, w.Body.String(), `"attendanceRate":0`)
}

func TestChatFallsBackWhenAIUnavailable(t *testing.T) {
	records, roster := seedState()
	ctrl := &ChatController{
		Store:  records,
		Roster: roster,
		AI:     ai.NewClient("", "", "", time.Second), // no key -> Chat always errors
	}

	r := gin.New()
	r.POST("/api/v1/chat", ctrl.Post)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat",
		strings.NewReader(`{"message":"how is attendance today?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Response string `json:"response"`
		Fallback bool   `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Fallback)
	assert.Contains(t, body.Response, "50%")
}

func TestChatRequiresMessage(t *testing.T) {
	records, roster := seedState()
	ctrl := &ChatController{Store: records, Roster: roster, AI: ai.NewClient("", "", "", time.Second)}

	r := gin.New()
	r.POST("/api/v1/chat", ctrl.Post)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordListAndFilters(t *testing.T) {
	records, _ := seedState()
	records.Append(models.AttendanceRecord{
		ID: "r2", StudentID: "s2", StudentName: "Aryan Das",
		Timestamp: time.Now(), Emotion: models.EmotionBored,
		Confidence: 0.8, SessionID: "sess-b",
	})
	ctrl := &RecordController{Store: records}

	r := gin.New()
	r.GET("/api/v1/records", ctrl.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/records?session_id=sess-b", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []models.AttendanceRecord `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Meta.Total)
	assert.Equal(t, "r2", body.Data[0].ID)
}

func TestRecordExportCSV(t *testing.T) {
	records, _ := seedState()
	ctrl := &RecordController{Store: records}

	r := gin.New()
	r.GET("/api/v1/records/export", ctrl.Export)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/records/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,student_id,student_name,timestamp,emotion,confidence,session_id", lines[0])
	assert.Contains(t, lines[1], "Riya Sen")
	assert.Contains(t, lines[1], "0.90")
}

func TestHealth(t *testing.T) {
	ctrl := &HealthController{AI: ai.NewClient("", "", "", time.Second)}

	r := gin.New()
	r.GET("/api/v1/health", ctrl.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"ai_api_key":"missing"`)

	ctrl = &HealthController{AI: ai.NewClient("some-key", "", "", time.Second)}
	r = gin.New()
	r.GET("/api/v1/health", ctrl.Get)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Contains(t, w.Body.String(), `"ai_api_key":"configured"`)
}
