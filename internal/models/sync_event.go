package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncEvent records one attempt to export a record to Notion.
type SyncEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UserID     string             `bson:"user_id" json:"userId"`
	Type       string             `bson:"type" json:"type"`
	ExternalID string             `bson:"external_id,omitempty" json:"externalId,omitempty"`
	Success    bool               `bson:"success" json:"success"`
	// Error is the caller-facing message only, never the upstream detail.
	Error string `bson:"error,omitempty" json:"error,omitempty"`
}
