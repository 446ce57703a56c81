package analytics

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Word counts come from the pinned prompt's text, not the journal body:
// the dashboard measures prompt usage patterns, not authorship volume.
// Quirk inherited from the mobile app's analytics and kept intentionally.

// Journaling reduces a user's full journal-entry collection into stats.
// Entries with a missing or out-of-range pinned prompt index still count
// toward entriesCount but contribute no words and no prompt usage.
func Journaling(entries []JournalEntry) JournalingStats {
	type usage struct {
		count int
		typ   string
	}
	usageByPrompt := map[string]*usage{}
	var promptOrder []string

	totalWords := 0
	entriesWithText := 0
	var dates []time.Time

	for _, e := range entries {
		if e.CreatedAt != nil {
			dates = append(dates, *e.CreatedAt)
		}

		p := pinnedPrompt(e)
		if p == nil || p.Prompt == "" {
			continue
		}

		if u, ok := usageByPrompt[p.Prompt]; ok {
			u.count++
		} else {
			typ := p.Type
			if typ == "" {
				typ = "Unknown"
			}
			usageByPrompt[p.Prompt] = &usage{count: 1, typ: typ}
			promptOrder = append(promptOrder, p.Prompt)
		}

		if n := wordCount(p.Prompt); n > 0 {
			totalWords += n
			entriesWithText++
		}
	}

	avgWords := 0
	if entriesWithText > 0 {
		avgWords = int(math.Round(float64(totalWords) / float64(entriesWithText)))
	}

	frequency := "N/A"
	lastEntryDate := "N/A"

	if len(dates) > 1 {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		first, last := dates[0], dates[len(dates)-1]
		daysDiff := int(math.Ceil(last.Sub(first).Hours() / 24))

		if daysDiff > 0 {
			// entries-per-day spans all entries, dated or not
			perDay := float64(len(entries)) / float64(daysDiff)
			frequency = classifyFrequency(perDay)
		}
		lastEntryDate = last.Format("Jan 2, 2006")
	} else if len(dates) == 1 {
		frequency = "One entry only"
		lastEntryDate = dates[0].Format("Jan 2, 2006")
	}

	promptUsage := make([]PromptUsage, 0, len(promptOrder))
	for _, p := range promptOrder {
		u := usageByPrompt[p]
		promptUsage = append(promptUsage, PromptUsage{Prompt: p, Count: u.count, Type: u.typ})
	}
	sort.SliceStable(promptUsage, func(i, j int) bool {
		return promptUsage[i].Count > promptUsage[j].Count
	})
	if len(promptUsage) > promptUsageLimit {
		promptUsage = promptUsage[:promptUsageLimit]
	}

	return JournalingStats{
		EntriesCount:     len(entries),
		AverageWordCount: avgWords,
		Frequency:        frequency,
		LastEntryDate:    lastEntryDate,
		PromptUsage:      promptUsage,
	}
}

func pinnedPrompt(e JournalEntry) *JournalPrompt {
	if e.PinnedPromptIndex == nil {
		return nil
	}
	i := *e.PinnedPromptIndex
	if i < 0 || i >= len(e.Prompts) {
		return nil
	}
	return &e.Prompts[i]
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func classifyFrequency(perDay float64) string {
	switch {
	case perDay >= 0.8:
		return "Daily"
	case perDay >= 0.3:
		return "Several times per week"
	case perDay >= 0.14:
		return "Weekly"
	case perDay >= 0.06:
		return "Bi-weekly"
	default:
		return "Monthly or less"
	}
}
