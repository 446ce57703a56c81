package handler

import (
	"encoding/json"
	"net/http"

	"sunlight-admin/internal/auth"

	"gorm.io/gorm"
)

type MeHandler struct {
	DB *gorm.DB
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.AdminIDFromContext(r.Context())

	var a auth.Admin
	if err := h.DB.First(&a, id).Error; err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"admin_id":     a.ID,
		"email":        a.Email,
		"display_name": a.DisplayName,
		"last_login":   a.LastLogin,
	})
}
