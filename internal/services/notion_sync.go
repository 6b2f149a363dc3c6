package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const (
	notionTimeout = 15 * time.Second

	notionNotConfigured = "Notion integration not configured. Please set NOTION_KEY and NOTION_DB_ID environment variables."
	notionSyncFailed    = "Failed to sync to Notion. Please check your Notion configuration."
	notionStatusFailed  = "Failed to connect to Notion. Please check your configuration."

	unknownDatabaseName = "Unknown"
)

// NotionAPI is the destination the syncer writes pages to.
type NotionAPI interface {
	CreatePage(ctx context.Context, databaseID string, doc Document) (string, error)
	DatabaseTitle(ctx context.Context, databaseID string) (string, error)
}

// StatusCache is implemented by *CacheService.
type StatusCache interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetStringWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}

// SyncRecorder is implemented by *SyncHistory.
type SyncRecorder interface {
	Record(ctx context.Context, event *models.SyncEvent) error
}

// SyncRequest is the body of a sync submit.
type SyncRequest struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	UserID string          `json:"userId"`
}

// SyncResult identifies the page created for a submit.
type SyncResult struct {
	Kind       SyncKind
	ExternalID string
}

// NotionSyncer exports records to a single shared Notion database. The
// destination is not scoped per user; userId is kept only in sync history.
type NotionSyncer struct {
	api        NotionAPI
	databaseID string
	cache      StatusCache
	recorder   SyncRecorder
	now        func() time.Time
}

// NewNotionSyncer returns a syncer. A nil api or empty databaseID leaves it
// unconfigured.
func NewNotionSyncer(api NotionAPI, databaseID string) *NotionSyncer {
	return &NotionSyncer{api: api, databaseID: databaseID, now: time.Now}
}

// WithStatusCache keeps the last successful status result.
func (s *NotionSyncer) WithStatusCache(cache StatusCache) *NotionSyncer {
	s.cache = cache
	return s
}

// WithRecorder enables sync history.
func (s *NotionSyncer) WithRecorder(recorder SyncRecorder) *NotionSyncer {
	s.recorder = recorder
	return s
}

func (s *NotionSyncer) Configured() bool {
	return s != nil && s.api != nil && s.databaseID != ""
}

// Submit maps the request data to a page and creates it. Configuration and
// decoding are checked before any call to Notion.
func (s *NotionSyncer) Submit(ctx context.Context, req SyncRequest) (SyncResult, error) {
	result, err := s.submit(ctx, req)
	s.record(ctx, req, result, err)
	return result, err
}

func (s *NotionSyncer) submit(ctx context.Context, req SyncRequest) (SyncResult, error) {
	if !s.Configured() {
		return SyncResult{}, apperrors.Configuration(notionNotConfigured)
	}

	payload, err := DecodeSyncPayload(req.Type, req.Data)
	if err != nil {
		return SyncResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, notionTimeout)
	defer cancel()

	pageID, err := s.api.CreatePage(ctx, s.databaseID, payload.Document(s.now()))
	if err != nil {
		return SyncResult{}, apperrors.Upstream(notionSyncFailed, fmt.Errorf("create %s page: %w", payload.Kind(), err))
	}
	return SyncResult{Kind: payload.Kind(), ExternalID: pageID}, nil
}

// Status fetches the destination database title, or "Unknown" when it has
// none. Every call reaches Notion; a successful result is kept as the
// last-known destination name.
func (s *NotionSyncer) Status(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", apperrors.Configuration(notionNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, notionTimeout)
	defer cancel()

	name, err := s.api.DatabaseTitle(ctx, s.databaseID)
	if err != nil {
		return "", apperrors.Upstream(notionStatusFailed, fmt.Errorf("retrieve database: %w", err))
	}
	if name == "" {
		name = unknownDatabaseName
	}

	if s.cache != nil {
		if err := s.cache.SetStringWithTTL(ctx, s.statusKey(), name, NotionStatusTTL); err != nil {
			slog.Warn("notion status cache write failed", "error", err)
		}
	}
	return name, nil
}

// LastKnownDestination returns the name seen by the most recent successful
// Status call, without contacting Notion. It is empty when nothing is cached.
func (s *NotionSyncer) LastKnownDestination(ctx context.Context) string {
	if !s.Configured() || s.cache == nil {
		return ""
	}
	name, ok, err := s.cache.GetString(ctx, s.statusKey())
	if err != nil {
		slog.Warn("notion status cache read failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

func (s *NotionSyncer) statusKey() string {
	return CacheKey("notion:database", s.databaseID)
}

func (s *NotionSyncer) record(ctx context.Context, req SyncRequest, result SyncResult, err error) {
	if s.recorder == nil {
		return
	}

	event := &models.SyncEvent{
		CreatedAt:  s.now().UTC(),
		UserID:     req.UserID,
		Type:       req.Type,
		ExternalID: result.ExternalID,
		Success:    err == nil,
	}
	if err != nil {
		event.Error = apperrors.PublicMessage(err)
	}

	// The attempt is recorded even if the caller has gone away.
	if recErr := s.recorder.Record(context.WithoutCancel(ctx), event); recErr != nil {
		slog.Error("failed to record sync event", "type", req.Type, "error", recErr)
	}
}
