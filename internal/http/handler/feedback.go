package handler

import (
	"encoding/json"
	"net/http"

	"sunlight-admin/internal/store"
)

type FeedbackHandler struct {
	Store *store.Store
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.FeedbackEntries(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	page, perPage := pagination(r, 5)
	total := len(entries)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	totalPages := (total + perPage - 1) / perPage

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"feedback":    entries[start:end],
		"total":       total,
		"page":        page,
		"total_pages": totalPages,
	})
}
