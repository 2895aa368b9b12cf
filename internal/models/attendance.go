package models

import "time"

// Emotion labels the detector can report. Closed set; anything else is
// rejected at the capture boundary.
const (
	EmotionHappy     = "happy"
	EmotionSad       = "sad"
	EmotionAngry     = "angry"
	EmotionSurprised = "surprised"
	EmotionFearful   = "fearful"
	EmotionDisgusted = "disgusted"
	EmotionNeutral   = "neutral"
	EmotionFocused   = "focused"
	EmotionSleepy    = "sleepy"
	EmotionBored     = "bored"
)

// Emotions lists every valid emotion label.
var Emotions = []string{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionSurprised,
	EmotionFearful,
	EmotionDisgusted,
	EmotionNeutral,
	EmotionFocused,
	EmotionSleepy,
	EmotionBored,
}

// ValidEmotion reports whether label is a member of the closed emotion set.
func ValidEmotion(label string) bool {
	for _, e := range Emotions {
		if e == label {
			return true
		}
	}
	return false
}

// AttendanceRecord is one durable presence event: a recognized student plus
// the emotion observed at recognition time. Records are append-only; the
// capture controller guarantees at most one per (session_id, student_id).
// StudentName is denormalized at creation time so exports stay readable even
// if the roster changes later.
type AttendanceRecord struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   string    `gorm:"index" json:"studentId"`
	StudentName string    `gorm:"size:128" json:"studentName"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	Emotion     string    `gorm:"size:16" json:"emotion"`
	Confidence  float64   `json:"confidence"`
	SessionID   string    `gorm:"index" json:"sessionId"`
}
