package ai

import (
	"fmt"
	"strings"

	"github.com/smartclass/sentinel_backend/internal/insights"
)

// Intent is the coarse topic of a chat message, used to pick a fallback
// template when the AI service is down.
type Intent string

const (
	IntentAttendance Intent = "attendance"
	IntentEngagement Intent = "engagement"
	IntentGeneral    Intent = "general"
)

// intentKeywords maps each intent to the words that trigger it. First match
// wins in declaration order below.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentAttendance, []string{"attendance", "absent", "present", "missing"}},
	{IntentEngagement, []string{"engagement", "engaged", "emotion", "mood", "bored", "focus"}},
}

// ClassifyIntent assigns a chat message to one of the closed intent set.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}
	return IntentGeneral
}

// FallbackResponse builds a templated reply straight from the snapshot. Used
// whenever the AI service errors or times out; never fails itself.
func FallbackResponse(message string, snap insights.Snapshot) string {
	switch ClassifyIntent(message) {
	case IntentAttendance:
		return fmt.Sprintf("Today's attendance is %d%% with %d out of %d students present. %s",
			snap.AttendanceRate, snap.PresentStudents, snap.TotalStudents, attendanceAdvice(snap.AttendanceRate))
	case IntentEngagement:
		return fmt.Sprintf("Current engagement score is %d%%. Dominant emotion: %s. %s",
			snap.EngagementScore, snap.DominantEmotion, engagementAdvice(snap.EngagementScore))
	default:
		return fmt.Sprintf("I understand you're asking about %q. Based on current data: %d%% attendance, %d%% engagement. The AI service is temporarily unavailable, but basic classroom analytics are still available.",
			message, snap.AttendanceRate, snap.EngagementScore)
	}
}

func attendanceAdvice(rate int) string {
	switch {
	case rate >= 80:
		return "Excellent attendance today!"
	case rate >= 60:
		return "Moderate attendance - consider following up with absent students."
	default:
		return "Low attendance detected - immediate action recommended."
	}
}

func engagementAdvice(score int) string {
	switch {
	case score >= 70:
		return "Students are highly engaged, keep up the great work!"
	case score >= 50:
		return "Moderate engagement - consider interactive activities to boost participation."
	default:
		return "Low engagement detected - recommend energizing activities or a short break."
	}
}
