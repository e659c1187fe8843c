// Package repository holds helpers shared by the MongoDB repositories.
package repository

import (
	"context"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultTimeout bounds a single store operation when none is configured.
const DefaultTimeout = 5 * time.Second

// WithTimeout derives a per-operation context from the caller's context.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// IDString renders a driver-generated id for API responses.
func IDString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

// FromInsert converts an insert result.
func FromInsert(res *mongo.InsertOneResult) models.WriteResult {
	return models.WriteResult{Acknowledged: true, InsertedID: IDString(res.InsertedID)}
}

// FromUpdate converts an update result.
func FromUpdate(res *mongo.UpdateResult) models.WriteResult {
	return models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    IDString(res.UpsertedID),
	}
}

// FromDelete converts a delete result.
func FromDelete(res *mongo.DeleteResult) models.WriteResult {
	return models.WriteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
