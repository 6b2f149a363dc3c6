package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
	"github.com/AnshRaj112/life-reset-backend/internal/services"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// SyncHistoryReader is implemented by *services.SyncHistory.
type SyncHistoryReader interface {
	List(ctx context.Context, userID string, limit int) ([]models.SyncEvent, error)
}

// Handler serves the HTTP API. It holds only shared, concurrency-safe handles.
type Handler struct {
	store   *services.RecordStore
	coach   *services.Coach
	syncer  *services.NotionSyncer
	history SyncHistoryReader
	logger  *slog.Logger
}

// New builds a Handler. history may be nil when MongoDB is not configured.
func New(store *services.RecordStore, coach *services.Coach, syncer *services.NotionSyncer, history SyncHistoryReader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, coach: coach, syncer: syncer, history: history, logger: logger}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps err to its status. Upstream causes are logged, never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindUpstream {
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, apperrors.HTTPStatus(err), ErrorResponse{
		Success: false,
		Error:   apperrors.PublicMessage(err),
		Code:    string(kind),
	})
}

// decodeJSON reads a bounded JSON body into dest.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return apperrors.Validation("Request body too large")
		case errors.Is(err, io.EOF):
			return apperrors.Validation("Request body is required")
		default:
			return apperrors.Validation("Invalid request body")
		}
	}
	return nil
}

type HealthResponse struct {
	Success  bool   `json:"success"`
	Database string `json:"database"`
	AI       bool   `json:"aiConfigured"`
	Notion   bool   `json:"notionConfigured"`
	History  bool   `json:"historyEnabled"`
	// NotionDatabase is the last destination name a status check saw.
	NotionDatabase string `json:"notionDatabase,omitempty"`
}

// Health reports store connectivity and which integrations are configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Success:  true,
		Database: "ok",
		AI:       h.coach.Configured(),
		Notion:   h.syncer.Configured(),
		History:  h.history != nil,

		NotionDatabase: h.syncer.LastKnownDestination(r.Context()),
	}
	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "health check: database unreachable", "error", err)
		resp.Success = false
		resp.Database = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
