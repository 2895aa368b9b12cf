// Package insights derives classroom metrics from the accumulated attendance
// records. Everything in here is a pure function over its inputs; the HTTP
// layer recomputes on demand.
package insights

import (
	"math"
	"time"

	"github.com/smartclass/sentinel_backend/internal/models"
)

// Trend classification values.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// positiveEmotions are the labels counted toward the engagement score.
var positiveEmotions = map[string]bool{
	models.EmotionHappy:   true,
	models.EmotionFocused: true,
}

// Snapshot is the point-in-time metrics object. It is derived, never stored.
type Snapshot struct {
	TotalRecords    int            `json:"totalRecords"`
	PresentStudents int            `json:"presentStudents"`
	TotalStudents   int            `json:"totalStudents"`
	AttendanceRate  int            `json:"attendanceRate"`
	EngagementScore int            `json:"engagementScore"`
	EmotionCounts   map[string]int `json:"emotionCounts"`
	DominantEmotion string         `json:"dominantEmotion"`
	AvgAttendance   int            `json:"avgAttendance"`
	Trend           string         `json:"trend"`
	DailyAttendance []int          `json:"dailyAttendance"`
}

// Compute builds a Snapshot from the full record sequence and the roster.
// "Today" is the calendar date of now in local time, so the same record set
// yields different snapshots on different days. Presence is always counted
// over distinct student ids, so a duplicate record can never double-count a
// student even if the capture dedup was bypassed upstream.
func Compute(records []models.AttendanceRecord, roster []models.Student, now time.Time) Snapshot {
	today := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if sameDay(rec.Timestamp, now) {
			today = append(today, rec)
		}
	}

	present := make(map[string]struct{}, len(today))
	counts := make(map[string]int, len(today))
	order := make([]string, 0, len(today)) // first-seen order, keeps the argmax deterministic
	positive := 0
	for _, rec := range today {
		present[rec.StudentID] = struct{}{}
		if _, seen := counts[rec.Emotion]; !seen {
			order = append(order, rec.Emotion)
		}
		counts[rec.Emotion]++
		if positiveEmotions[rec.Emotion] {
			positive++
		}
	}

	attendanceRate := 0
	if len(roster) > 0 {
		attendanceRate = roundPercent(len(present), len(roster))
		// Records may reference students since removed from the roster;
		// the rate still has to stay a percentage.
		if attendanceRate > 100 {
			attendanceRate = 100
		}
	}

	engagement := 0
	if len(today) > 0 {
		engagement = roundPercent(positive, len(today))
	}

	dominant := models.EmotionNeutral
	best := 0
	for _, emotion := range order {
		if counts[emotion] > best {
			best = counts[emotion]
			dominant = emotion
		}
	}

	daily := dailyAttendance(records, now)
	sum := 0
	for _, n := range daily {
		sum += n
	}
	avg := int(math.Round(float64(sum) / float64(len(daily))))

	trend := TrendStable
	switch {
	case daily[len(daily)-1] > daily[0]:
		trend = TrendIncreasing
	case daily[len(daily)-1] < daily[0]:
		trend = TrendDecreasing
	}

	return Snapshot{
		TotalRecords:    len(today),
		PresentStudents: len(present),
		TotalStudents:   len(roster),
		AttendanceRate:  attendanceRate,
		EngagementScore: engagement,
		EmotionCounts:   counts,
		DominantEmotion: dominant,
		AvgAttendance:   avg,
		Trend:           trend,
		DailyAttendance: daily,
	}
}

// dailyAttendance returns distinct-student counts for the 7 calendar days
// ending at now, oldest first.
func dailyAttendance(records []models.AttendanceRecord, now time.Time) []int {
	daily := make([]int, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		distinct := make(map[string]struct{})
		for _, rec := range records {
			if sameDay(rec.Timestamp, day) {
				distinct[rec.StudentID] = struct{}{}
			}
		}
		daily = append(daily, len(distinct))
	}
	return daily
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
