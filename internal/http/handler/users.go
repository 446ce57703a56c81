package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sunlight-admin/internal/analytics"
	"sunlight-admin/internal/store"

	"github.com/go-chi/chi/v5"
)

type UsersHandler struct {
	Store *store.Store
}

type userDTO struct {
	UID                 string     `json:"uid"`
	Email               string     `json:"email"`
	DisplayName         string     `json:"displayName"`
	Username            string     `json:"username,omitempty"`
	ProfileImageURL     string     `json:"profileImageUrl,omitempty"`
	IsActive            bool       `json:"isActive"`
	SelectedPlan        string     `json:"selectedPlan,omitempty"`
	EmailVerified       bool       `json:"emailVerified"`
	SignInMethod        string     `json:"signInMethod,omitempty"`
	JournalEntriesCount int        `json:"journalEntriesCount"`
	CreatedAt           *time.Time `json:"createdAt"`
	DateOfLastActivity  *time.Time `json:"dateOfLastActivity"`
}

// List serves the user directory with the dashboard's status filter,
// search box, and pagination. Filtering happens in memory over the full
// directory because the filter UI needs active/inactive counts either way.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.Users(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	status := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("status"))) // "all"/"active"/"inactive"/""
	q := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("q")))

	activeCount, inactiveCount := 0, 0
	for _, u := range users {
		if u.IsActive {
			activeCount++
		} else {
			inactiveCount++
		}
	}

	filtered := make([]store.User, 0, len(users))
	for _, u := range users {
		if status == "active" && !u.IsActive {
			continue
		}
		if status == "inactive" && u.IsActive {
			continue
		}
		if q != "" && !matchesUser(u, q) {
			continue
		}
		filtered = append(filtered, u)
	}

	page, perPage := pagination(r, 20)
	total := len(filtered)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	out := make([]userDTO, 0, end-start)
	for _, u := range filtered[start:end] {
		out = append(out, userDTO{
			UID:                 u.UID,
			Email:               u.Email,
			DisplayName:         u.DisplayName,
			Username:            u.Username,
			ProfileImageURL:     u.ProfileImageURL,
			IsActive:            u.IsActive,
			SelectedPlan:        u.SelectedPlan,
			EmailVerified:       u.EmailVerified,
			SignInMethod:        u.SignInMethod,
			JournalEntriesCount: u.JournalEntriesCount,
			CreatedAt:           u.CreatedAt,
			DateOfLastActivity:  u.DateOfLastActivity,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"users":          out,
		"total":          total,
		"page":           page,
		"per_page":       perPage,
		"active_count":   activeCount,
		"inactive_count": inactiveCount,
	})
}

func (h *UsersHandler) Retention(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	u, err := h.Store.UserByID(r.Context(), uid)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	stats := analytics.Retention(u.DateOfLastActivity, time.Now())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

func matchesUser(u store.User, q string) bool {
	return strings.Contains(strings.ToLower(u.Email), q) ||
		strings.Contains(strings.ToLower(u.DisplayName), q) ||
		strings.Contains(strings.ToLower(u.Username), q)
}

func pagination(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = 1
	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	perPage = defaultPerPage
	if v := strings.TrimSpace(r.URL.Query().Get("per_page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			perPage = n
		}
	}
	return page, perPage
}
