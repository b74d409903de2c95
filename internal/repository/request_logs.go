package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestLogDocument represents a persisted HTTP request log entry.
type RequestLogDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method" json:"method"`
	Path       string             `bson:"path" json:"path"`
	StatusCode int                `bson:"status_code" json:"status_code"`
	Duration   int64              `bson:"duration_ms" json:"duration_ms"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
}

// RequestLogsRepository persists request logs for auditing. Entries expire
// via the TTL index created by MongoDB.SetRequestLogsTTL.
type RequestLogsRepository struct {
	collection *mongo.Collection
}

// NewRequestLogsRepository creates a new request logs repository.
func NewRequestLogsRepository(db *MongoDB) *RequestLogsRepository {
	return &RequestLogsRepository{collection: db.RequestLogs}
}

// Create inserts a new request log document.
func (r *RequestLogsRepository) Create(ctx context.Context, entry *RequestLogDocument) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}
