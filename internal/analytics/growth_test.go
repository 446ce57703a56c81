package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func userCreated(year int, month time.Month) UserRecord {
	at := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	return UserRecord{CreatedAt: &at}
}

func monthLabels(series []MonthPoint) []string {
	labels := make([]string, 0, len(series))
	for _, p := range series {
		labels = append(labels, p.Month)
	}
	return labels
}

func TestUserGrowthWindow(t *testing.T) {
	cases := []struct {
		name  string
		month time.Month
		want  []string
	}{
		{"centered", time.June, []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep"}},
		{"clamped to year start", time.January, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}},
		{"clamped to year end", time.December, []string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := UserGrowth(nil, tc.month, 2026, GrowthPolicyLegacy)
			require.Equal(t, tc.want, monthLabels(report.Series))
		})
	}
}

func TestUserGrowthSelectedFlag(t *testing.T) {
	report := UserGrowth(nil, time.June, 2026, GrowthPolicyLegacy)
	for _, p := range report.Series {
		require.Equal(t, p.Month == "Jun", p.IsSelected)
	}
}

func TestUserGrowthPercentages(t *testing.T) {
	users := []UserRecord{
		userCreated(2026, time.April),
		userCreated(2026, time.April),
		userCreated(2026, time.April),
		userCreated(2026, time.April),
		userCreated(2026, time.May),
	}

	report := UserGrowth(users, time.June, 2026, GrowthPolicyLegacy)

	require.Equal(t, 100.0, report.Series[0].Percentage) // Apr is the peak
	require.Equal(t, 25.0, report.Series[1].Percentage)
	require.Equal(t, 0.0, report.Series[2].Percentage)
}

func TestUserGrowthAllZeroWindow(t *testing.T) {
	// the peak floor keeps an empty window at 0% rather than dividing by zero
	report := UserGrowth(nil, time.June, 2026, GrowthPolicyLegacy)
	for _, p := range report.Series {
		require.Zero(t, p.Count)
		require.Zero(t, p.Percentage)
	}
}

func TestUserGrowthRate(t *testing.T) {
	t.Run("normal month over month", func(t *testing.T) {
		users := []UserRecord{
			userCreated(2026, time.May),
			userCreated(2026, time.May),
			userCreated(2026, time.June),
			userCreated(2026, time.June),
			userCreated(2026, time.June),
		}
		report := UserGrowth(users, time.June, 2026, GrowthPolicyLegacy)
		require.NotNil(t, report.Summary.GrowthRate)
		require.InDelta(t, 50.0, *report.Summary.GrowthRate, 0.001)
	})

	t.Run("zero baseline legacy reads 100", func(t *testing.T) {
		users := []UserRecord{userCreated(2026, time.June)}
		report := UserGrowth(users, time.June, 2026, GrowthPolicyLegacy)
		require.NotNil(t, report.Summary.GrowthRate)
		require.Equal(t, 100.0, *report.Summary.GrowthRate)
	})

	t.Run("zero baseline undefined stays unset", func(t *testing.T) {
		users := []UserRecord{userCreated(2026, time.June)}
		report := UserGrowth(users, time.June, 2026, GrowthPolicyUndefined)
		require.Nil(t, report.Summary.GrowthRate)
	})

	t.Run("no signups either month reads 0", func(t *testing.T) {
		report := UserGrowth(nil, time.June, 2026, GrowthPolicyUndefined)
		require.NotNil(t, report.Summary.GrowthRate)
		require.Zero(t, *report.Summary.GrowthRate)
	})

	t.Run("january compares against prior december", func(t *testing.T) {
		users := []UserRecord{
			userCreated(2025, time.December),
			userCreated(2026, time.January),
			userCreated(2026, time.January),
		}
		report := UserGrowth(users, time.January, 2026, GrowthPolicyLegacy)
		require.NotNil(t, report.Summary.GrowthRate)
		require.InDelta(t, 100.0, *report.Summary.GrowthRate, 0.001)
	})
}

func TestUserGrowthSummary(t *testing.T) {
	mar := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	users := []UserRecord{
		{UID: "a", CreatedAt: &mar, IsActive: true, EmailVerified: true, JournalEntriesCount: 4},
		{UID: "b", CreatedAt: &mar, IsActive: false, EmailVerified: true, JournalEntriesCount: 2},
		{UID: "c"}, // no creation date, still counted in totals
	}

	report := UserGrowth(users, time.March, 2026, GrowthPolicyLegacy)

	require.Equal(t, 3, report.Summary.TotalUsers)
	require.Equal(t, 1, report.Summary.ActiveUsers)
	require.Equal(t, 2, report.Summary.VerifiedUsers)
	require.Equal(t, 2, report.Summary.CurrentMonthUsers)
	require.Equal(t, 6, report.Summary.TotalJournalEntries)
	require.InDelta(t, 2.0, report.Summary.AverageJournalEntries, 0.001)
}
