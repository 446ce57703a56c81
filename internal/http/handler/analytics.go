package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sunlight-admin/internal/analytics"
	"sunlight-admin/internal/store"
)

type GrowthHandler struct {
	Store  *store.Store
	Policy analytics.GrowthPolicy
}

// Growth serves the signup time series and summary for the analytics page.
// month is 1-12, year a four-digit year; both default to the current date.
func (h *GrowthHandler) Growth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(n)
	}
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 9999 {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = n
	}

	users, err := h.Store.Users(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	records := make([]analytics.UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, analytics.UserRecord{
			UID:                 u.UID,
			CreatedAt:           u.CreatedAt,
			IsActive:            u.IsActive,
			EmailVerified:       u.EmailVerified,
			JournalEntriesCount: u.JournalEntriesCount,
		})
	}

	report := analytics.UserGrowth(records, month, year, h.Policy)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
