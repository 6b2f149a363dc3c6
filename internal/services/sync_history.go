package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnshRaj112/life-reset-backend/internal/models"
)

const (
	SyncEventsCollection = "sync_events"

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// SyncHistory keeps an append-only log of sync attempts in MongoDB.
type SyncHistory struct {
	collection *mongo.Collection
}

func NewSyncHistory(db *mongo.Database) *SyncHistory {
	return &SyncHistory{collection: db.Collection(SyncEventsCollection)}
}

// EnsureIndexes creates the indexes List sorts and filters on.
func (h *SyncHistory) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_created"),
		},
	}

	for _, m := range indexes {
		if _, err := h.collection.Indexes().CreateOne(ctx, m); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Record appends one sync attempt.
func (h *SyncHistory) Record(ctx context.Context, event *models.SyncEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert sync event: %w", err)
	}
	return nil
}

// List returns a user's recent attempts, newest first.
func (h *SyncHistory) List(ctx context.Context, userID string, limit int) ([]models.SyncEvent, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	limit = ClampHistoryLimit(limit)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
	findOptions.SetLimit(int64(limit))

	cursor, err := h.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find sync events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]models.SyncEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode sync events: %w", err)
	}
	return events, nil
}

// ClampHistoryLimit applies the default and maximum page size.
func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
