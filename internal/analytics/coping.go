package analytics

import (
	"math"
	"sort"
)

const (
	recentLimit      = 10
	mostViewedLimit  = 5
	promptUsageLimit = 5
)

// CopingTools reduces a user's tip views and breathing-exercise events into
// dashboard stats. Inputs arrive newest first, already bounded by the fetch
// layer.
func CopingTools(tips []TipView, exercises []BreathingEvent) CopingToolsStats {
	tipCounts := map[string]int{}
	var tipOrder []string

	for _, v := range tips {
		if _, seen := tipCounts[v.TipID]; !seen {
			tipOrder = append(tipOrder, v.TipID)
		}
		tipCounts[v.TipID]++
	}

	mostViewed := make([]TipCount, 0, len(tipOrder))
	for _, id := range tipOrder {
		mostViewed = append(mostViewed, TipCount{TipID: id, Count: tipCounts[id]})
	}
	// ties retain encounter order
	sort.SliceStable(mostViewed, func(i, j int) bool {
		return mostViewed[i].Count > mostViewed[j].Count
	})
	if len(mostViewed) > mostViewedLimit {
		mostViewed = mostViewed[:mostViewedLimit]
	}

	var started, completed int
	var durationSum, durationN int
	recentCompleted := make([]BreathingEvent, 0, recentLimit)

	for _, ex := range exercises {
		switch ex.Status {
		case ExerciseStarted:
			started++
		case ExerciseCompleted:
			completed++
			if ex.Duration > 0 {
				durationSum += ex.Duration
				durationN++
			}
			if len(recentCompleted) < recentLimit {
				recentCompleted = append(recentCompleted, ex)
			}
		}
	}

	avgDuration := 0
	if durationN > 0 {
		avgDuration = int(math.Round(float64(durationSum) / float64(durationN)))
	}
	// rate is relative to starts in the same window; no starts means 0, not NaN
	rate := 0
	if started > 0 {
		rate = int(math.Round(float64(completed) / float64(started) * 100))
	}

	recentTips := tips
	if len(recentTips) > recentLimit {
		recentTips = recentTips[:recentLimit]
	}

	return CopingToolsStats{
		TotalTipsViewed:             len(tips),
		UniqueTipsViewed:            len(tipCounts),
		BreathingExercisesStarted:   started,
		BreathingExercisesCompleted: completed,
		AverageExerciseDuration:     avgDuration,
		CompletionRate:              rate,
		RecentTipViews:              append([]TipView{}, recentTips...),
		RecentBreathingExercises:    recentCompleted,
		MostViewedTips:              mostViewed,
	}
}
