package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
	"github.com/AnshRaj112/life-reset-backend/internal/services"
)

type SyncResponse struct {
	Success      bool   `json:"success"`
	NotionPageID string `json:"notionPageId"`
	ExternalID   string `json:"externalId"`
	Message      string `json:"message"`
}

type SyncStatusResponse struct {
	Success         bool   `json:"success"`
	DatabaseName    string `json:"databaseName"`
	DestinationName string `json:"destinationName"`
	Message         string `json:"message"`
}

type SyncHistoryResponse struct {
	Success bool               `json:"success"`
	Events  []models.SyncEvent `json:"events"`
}

// SyncToNotion handles POST /api/notion-sync {type, data, userId}
func (h *Handler) SyncToNotion(w http.ResponseWriter, r *http.Request) {
	var req services.SyncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.syncer.Submit(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SyncResponse{
		Success:      true,
		NotionPageID: result.ExternalID,
		ExternalID:   result.ExternalID,
		Message:      string(result.Kind) + " synced to Notion successfully",
	})
}

// NotionStatus handles GET /api/notion-sync. It checks the destination
// without creating a page.
func (h *Handler) NotionStatus(w http.ResponseWriter, r *http.Request) {
	name, err := h.syncer.Status(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SyncStatusResponse{
		Success:         true,
		DatabaseName:    name,
		DestinationName: name,
		Message:         "Notion connection successful",
	})
}

// NotionSyncHistory handles GET /api/notion-sync/history?userId=&limit=
func (h *Handler) NotionSyncHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		h.writeError(w, r, apperrors.Configuration("Sync history not configured. Please set MONGODB_URI."))
		return
	}

	q := r.URL.Query()
	userID := strings.TrimSpace(q.Get("userId"))
	if userID == "" {
		h.writeError(w, r, apperrors.Validation("User ID is required"))
		return
	}

	limit := services.DefaultHistoryLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, r, apperrors.Validation("limit must be a positive integer"))
			return
		}
		limit = services.ClampHistoryLimit(n)
	}

	events, err := h.history.List(r.Context(), userID, limit)
	if err != nil {
		h.writeError(w, r, apperrors.Upstream("Internal server error", err))
		return
	}
	writeJSON(w, http.StatusOK, SyncHistoryResponse{Success: true, Events: events})
}
