package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func entry(created time.Time, pinned int, prompts ...JournalPrompt) JournalEntry {
	return JournalEntry{CreatedAt: &created, PinnedPromptIndex: &pinned, Prompts: prompts}
}

func TestJournalingEmpty(t *testing.T) {
	stats := Journaling(nil)

	require.Zero(t, stats.EntriesCount)
	require.Zero(t, stats.AverageWordCount)
	require.Equal(t, "N/A", stats.Frequency)
	require.Equal(t, "N/A", stats.LastEntryDate)
	require.Empty(t, stats.PromptUsage)
}

func TestJournalingSingleEntry(t *testing.T) {
	created := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	stats := Journaling([]JournalEntry{
		entry(created, 0, JournalPrompt{Prompt: "What helped you today", Type: "Reflection"}),
	})

	require.Equal(t, 1, stats.EntriesCount)
	require.Equal(t, "One entry only", stats.Frequency)
	require.Equal(t, "Mar 14, 2026", stats.LastEntryDate)
	require.Equal(t, 4, stats.AverageWordCount)
}

func TestJournalingPinnedPromptSelection(t *testing.T) {
	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	outOfRange := 5
	stats := Journaling([]JournalEntry{
		entry(created, 1,
			JournalPrompt{Prompt: "ignored first prompt", Type: "Memory"},
			JournalPrompt{Prompt: "one two three", Type: "Gratitude"},
		),
		// counted toward entriesCount, contributes no text
		{CreatedAt: &created, PinnedPromptIndex: &outOfRange, Prompts: []JournalPrompt{{Prompt: "unreachable"}}},
		{CreatedAt: &created, Prompts: []JournalPrompt{{Prompt: "no pin"}}},
	})

	require.Equal(t, 3, stats.EntriesCount)
	require.Equal(t, 3, stats.AverageWordCount)
	require.Equal(t, []PromptUsage{{Prompt: "one two three", Count: 1, Type: "Gratitude"}}, stats.PromptUsage)
}

func TestJournalingFrequency(t *testing.T) {
	base := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	p := JournalPrompt{Prompt: "prompt", Type: "Reflection"}

	spread := func(n, spanDays int) []JournalEntry {
		entries := []JournalEntry{entry(base, 0, p)}
		for i := 1; i < n-1; i++ {
			entries = append(entries, entry(base.AddDate(0, 0, 1), 0, p))
		}
		return append(entries, entry(base.AddDate(0, 0, spanDays), 0, p))
	}

	cases := []struct {
		name    string
		entries []JournalEntry
		want    string
	}{
		{"daily", spread(8, 10), "Daily"},
		{"several per week", spread(3, 10), "Several times per week"},
		{"weekly", spread(2, 10), "Weekly"},
		{"bi-weekly", spread(2, 30), "Bi-weekly"},
		{"monthly or less", spread(2, 60), "Monthly or less"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Journaling(tc.entries).Frequency)
		})
	}
}

func TestJournalingSameDayEntries(t *testing.T) {
	// two entries at the same instant: span is zero days, frequency stays
	// unclassified but the last entry date is still reported
	at := time.Date(2026, time.April, 2, 8, 0, 0, 0, time.UTC)
	p := JournalPrompt{Prompt: "prompt", Type: "Reflection"}

	stats := Journaling([]JournalEntry{entry(at, 0, p), entry(at, 0, p)})

	require.Equal(t, "N/A", stats.Frequency)
	require.Equal(t, "Apr 2, 2026", stats.LastEntryDate)
}

func TestJournalingPromptUsageRanking(t *testing.T) {
	at := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	var entries []JournalEntry
	add := func(n int, prompt, typ string) {
		for i := 0; i < n; i++ {
			entries = append(entries, entry(at.AddDate(0, 0, len(entries)), 0, JournalPrompt{Prompt: prompt, Type: typ}))
		}
	}
	add(3, "alpha", "Reflection")
	add(1, "beta", "")
	add(5, "gamma", "Memory")

	stats := Journaling(entries)

	require.Equal(t, "gamma", stats.PromptUsage[0].Prompt)
	require.Equal(t, 5, stats.PromptUsage[0].Count)
	require.Equal(t, "alpha", stats.PromptUsage[1].Prompt)
	// missing type falls back to Unknown
	require.Equal(t, "Unknown", stats.PromptUsage[2].Type)
}
