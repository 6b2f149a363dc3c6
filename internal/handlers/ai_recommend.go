package handlers

import (
	"net/http"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

// GetSuggestion handles GET /api/ai-recommend?context=&userId=
func (h *Handler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	suggestion, err := h.coach.Suggest(r.Context(), q.Get("context"), q.Get("userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuggestionResponse{Suggestion: suggestion})
}

// GetInsights handles POST /api/ai-recommend with a daily log and optional
// goal and mind-reframe snapshots.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	var req models.InsightsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	insights, err := h.coach.Insights(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.InsightsResponse{Insights: insights})
}
