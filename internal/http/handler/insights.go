package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"sunlight-admin/internal/insights"
	"sunlight-admin/internal/jobs"
	"sunlight-admin/internal/store"
	"sunlight-admin/internal/warehouse"

	"github.com/go-chi/chi/v5"
)

// InsightsHandler serves the per-user widgets. The coping-tools widget has
// three data sources in preference order: a fresh snapshot, the warehouse
// service, and a live store-side computation. Warehouse failures degrade to
// the store path instead of failing the widget.
type InsightsHandler struct {
	Svc         *insights.Service
	Store       *store.Store
	Jobs        *jobs.Repo
	Warehouse   *warehouse.Client // nil when no warehouse is configured
	SnapshotTTL time.Duration
}

func (h *InsightsHandler) Coping(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if snap, err := h.Store.InsightSnapshot(r.Context(), uid); err == nil {
		if time.Since(snap.ComputedAt) < h.SnapshotTTL {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"source":      "snapshot",
				"computed_at": snap.ComputedAt,
				"stats":       json.RawMessage(snap.Stats),
			})
			return
		}
	}

	if h.Warehouse != nil {
		stats, err := h.Warehouse.CopingTools(r.Context(), uid)
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"source": "warehouse",
				"stats":  stats,
			})
			return
		}
		// analytics unavailable, not a hard error
		log.Printf("warehouse unavailable for user %s: %v\n", uid, err)
	}

	stats, err := h.Svc.Coping(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// warm the snapshot for the next view
	if h.Jobs != nil {
		_ = h.Jobs.DropPendingRefresh(uid)
		if err := h.Jobs.EnqueueInsightsRefresh(uid, time.Now()); err != nil {
			log.Printf("failed to enqueue refresh for user %s: %v\n", uid, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"source": "store",
		"stats":  stats,
	})
}

func (h *InsightsHandler) Journaling(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	stats, err := h.Svc.Journaling(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

func (h *InsightsHandler) Community(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	stats, err := h.Svc.Community(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
