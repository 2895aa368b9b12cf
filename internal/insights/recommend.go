package insights

// Recommendation is one prioritized action for the teacher, derived fresh
// from a Snapshot and never persisted.
type Recommendation struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// Recommendation types and priorities.
const (
	TypeAttendance  = "attendance"
	TypeEngagement  = "engagement"
	TypeEnvironment = "environment"
	TypeContent     = "content"
	TypeTrend       = "trend"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Thresholds that trigger each rule.
const (
	lowAttendanceRate  = 70
	lowEngagementScore = 60
	sleepyThreshold    = 3
	boredThreshold     = 2
)

// Recommend maps a snapshot to an ordered list of recommendations. Rules are
// evaluated independently; more than one may fire. An empty result means no
// concerns.
func Recommend(snap Snapshot) []Recommendation {
	recs := []Recommendation{}

	if snap.AttendanceRate < lowAttendanceRate {
		recs = append(recs, Recommendation{
			Type:     TypeAttendance,
			Priority: PriorityHigh,
			Message:  "Send attendance alerts to absent students and review patterns for early intervention",
		})
	}

	if snap.EngagementScore < lowEngagementScore {
		recs = append(recs, Recommendation{
			Type:     TypeEngagement,
			Priority: PriorityHigh,
			Message:  "Incorporate more interactive activities and consider changing teaching pace",
		})
	}

	if snap.EmotionCounts["sleepy"] > sleepyThreshold {
		recs = append(recs, Recommendation{
			Type:     TypeEnvironment,
			Priority: PriorityMedium,
			Message:  "Check room ventilation and lighting, consider energizer activities",
		})
	}

	if snap.EmotionCounts["bored"] > boredThreshold {
		recs = append(recs, Recommendation{
			Type:     TypeContent,
			Priority: PriorityMedium,
			Message:  "Introduce multimedia content or group activities to increase engagement",
		})
	}

	if snap.Trend == TrendDecreasing {
		recs = append(recs, Recommendation{
			Type:     TypeTrend,
			Priority: PriorityMedium,
			Message:  "Declining attendance trend detected - investigate underlying causes",
		})
	}

	return recs
}
