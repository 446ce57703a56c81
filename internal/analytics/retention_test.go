package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetentionUnknown(t *testing.T) {
	stats := Retention(nil, time.Now())

	require.Equal(t, StatusUnknown, stats.Status)
	require.Nil(t, stats.LastActivity)
	require.Nil(t, stats.DaysSinceLast)
}

func TestRetentionBuckets(t *testing.T) {
	now := time.Date(2026, time.July, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		ago      time.Duration
		wantDays int
		want     string
	}{
		{"same moment", 0, 0, StatusActiveToday},
		{"one day", 24 * time.Hour, 1, StatusActiveYesterday},
		{"day and a half rounds up", 36 * time.Hour, 2, StatusRecentlyActive},
		{"a week", 7 * 24 * time.Hour, 7, StatusRecentlyActive},
		{"three weeks", 21 * 24 * time.Hour, 21, StatusModeratelyActive},
		{"a month", 30 * 24 * time.Hour, 30, StatusModeratelyActive},
		{"long gone", 45 * 24 * time.Hour, 45, StatusInactive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last := now.Add(-tc.ago)
			stats := Retention(&last, now)

			require.NotNil(t, stats.DaysSinceLast)
			require.Equal(t, tc.wantDays, *stats.DaysSinceLast)
			require.Equal(t, tc.want, stats.Status)
		})
	}
}

func TestRetentionClockSkew(t *testing.T) {
	// a last-activity timestamp slightly in the future rounds to one day,
	// not a negative bucket
	now := time.Date(2026, time.July, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(10 * time.Minute)

	stats := Retention(&future, now)

	require.NotNil(t, stats.DaysSinceLast)
	require.Equal(t, 1, *stats.DaysSinceLast)
	require.Equal(t, StatusActiveYesterday, stats.Status)
}
