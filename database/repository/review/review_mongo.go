package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
}

type MongoReviewRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoReviewRepo(db *mongo.Database, timeout time.Duration) *MongoReviewRepo {
	return &MongoReviewRepo{coll: db.Collection("reviews"), timeout: timeout}
}

// GetAll returns reviews newest first.
func (r *MongoReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %w", err)
	}
	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	review.ID = primitive.NewObjectID()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		review.ID = primitive.NilObjectID
		return fmt.Errorf("error creating review: %w", err)
	}
	return nil
}
