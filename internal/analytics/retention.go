package analytics

import (
	"math"
	"time"
)

const (
	StatusUnknown          = "Unknown"
	StatusActiveToday      = "Active Today"
	StatusActiveYesterday  = "Active Yesterday"
	StatusRecentlyActive   = "Recently Active"
	StatusModeratelyActive = "Moderately Active"
	StatusInactive         = "Inactive"
)

type RetentionStats struct {
	LastActivity  *time.Time `json:"lastActivity"`
	DaysSinceLast *int       `json:"daysSinceLastActive"`
	Status        string     `json:"activityStatus"`
}

// Retention classifies a user's engagement by days since their last
// recorded activity.
func Retention(lastActivity *time.Time, now time.Time) RetentionStats {
	if lastActivity == nil {
		return RetentionStats{Status: StatusUnknown}
	}

	days := int(math.Ceil(math.Abs(now.Sub(*lastActivity).Hours()) / 24))

	return RetentionStats{
		LastActivity:  lastActivity,
		DaysSinceLast: &days,
		Status:        activityStatus(days),
	}
}

func activityStatus(days int) string {
	switch {
	case days == 0:
		return StatusActiveToday
	case days == 1:
		return StatusActiveYesterday
	case days <= 7:
		return StatusRecentlyActive
	case days <= 30:
		return StatusModeratelyActive
	default:
		return StatusInactive
	}
}
