package analytics

import "time"

// GrowthPolicy decides how month-over-month growth reads when the previous
// month had zero signups. The mobile dashboard historically reported 100%
// growth in that case, which conflates "no prior data" with real growth;
// "undefined" leaves the rate unset instead.
type GrowthPolicy string

const (
	GrowthPolicyLegacy    GrowthPolicy = "legacy"
	GrowthPolicyUndefined GrowthPolicy = "undefined"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type MonthPoint struct {
	Month      string  `json:"month"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	IsSelected bool    `json:"isSelected"`
}

type GrowthSummary struct {
	TotalUsers            int      `json:"totalUsers"`
	ActiveUsers           int      `json:"activeUsers"`
	VerifiedUsers         int      `json:"verifiedUsers"`
	CurrentMonthUsers     int      `json:"currentMonthUsers"`
	GrowthRate            *float64 `json:"growthRate"`
	TotalJournalEntries   int      `json:"totalJournalEntries"`
	AverageJournalEntries float64  `json:"averageJournalEntries"`
}

type GrowthReport struct {
	Series  []MonthPoint  `json:"series"`
	Summary GrowthSummary `json:"summary"`
}

// UserGrowth buckets user signups into a 6-month window centered on the
// selected month and computes the summary stats for the analytics page.
// Percentages are window-relative: normalized against the window's peak
// count, floored at 1 so an all-zero window stays at 0 rather than NaN.
func UserGrowth(users []UserRecord, month time.Month, year int, policy GrowthPolicy) GrowthReport {
	sel := int(month) - 1

	start := sel - 2
	end := sel + 4
	if start < 0 {
		start = 0
		end = 6
	} else if end > 12 {
		end = 12
		start = 6
	}

	counts := monthlyCounts(users, year)

	series := make([]MonthPoint, 0, end-start)
	maxCount := 1
	for i := start; i < end; i++ {
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	for i := start; i < end; i++ {
		series = append(series, MonthPoint{
			Month:      monthNames[i][:3],
			Count:      counts[i],
			Percentage: float64(counts[i]) / float64(maxCount) * 100,
			IsSelected: i == sel,
		})
	}

	summary := GrowthSummary{TotalUsers: len(users)}
	totalEntries := 0
	for _, u := range users {
		if u.IsActive {
			summary.ActiveUsers++
		}
		if u.EmailVerified {
			summary.VerifiedUsers++
		}
		totalEntries += u.JournalEntriesCount
	}
	summary.TotalJournalEntries = totalEntries
	if len(users) > 0 {
		summary.AverageJournalEntries = float64(totalEntries) / float64(len(users))
	}

	current := counts[sel]
	summary.CurrentMonthUsers = current

	prevMonth := sel - 1
	prevYear := year
	if prevMonth < 0 {
		prevMonth = 11
		prevYear = year - 1
	}
	previous := monthlyCounts(users, prevYear)[prevMonth]

	summary.GrowthRate = growthRate(current, previous, policy)
	return GrowthReport{Series: series, Summary: summary}
}

func growthRate(current, previous int, policy GrowthPolicy) *float64 {
	var rate float64
	switch {
	case previous > 0:
		rate = float64(current-previous) / float64(previous) * 100
	case current > 0:
		if policy == GrowthPolicyUndefined {
			return nil
		}
		rate = 100
	default:
		rate = 0
	}
	return &rate
}

func monthlyCounts(users []UserRecord, year int) [12]int {
	var counts [12]int
	for _, u := range users {
		if u.CreatedAt == nil {
			continue
		}
		if u.CreatedAt.Year() == year {
			counts[int(u.CreatedAt.Month())-1]++
		}
	}
	return counts
}
