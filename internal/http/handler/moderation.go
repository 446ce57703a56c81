package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"sunlight-admin/internal/moderation"
	"sunlight-admin/internal/store"
)

type ModerationHandler struct {
	Store *store.Store
	Svc   *moderation.Service
}

// Flags lists the moderation queue: flag notifications collapsed into one
// unit per flagged post.
func (h *ModerationHandler) Flags(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Store.FlaggedNotifications(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	groups := moderation.GroupByPost(notifications)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"flags": groups,
		"total": len(groups),
	})
}

type moderationReq struct {
	GroupID string `json:"group_id"`
	PostID  string `json:"post_id"`
}

func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.Svc.Approve)
}

func (h *ModerationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.Svc.Delete)
}

func (h *ModerationHandler) act(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, groupID, postID string) error) {
	var req moderationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	err := fn(r.Context(), req.GroupID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrMissingIdentifiers):
			http.Error(w, "group_id and post_id required", http.StatusBadRequest)
		case errors.Is(err, moderation.ErrPostNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		default:
			http.Error(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"post_id": req.PostID,
		"cleared": true,
	})
}
