package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/database/repository"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection("services"), timeout: timeout}
}

func (r *MongoServiceRepo) GetAll(ctx context.Context, fields []string) ([]models.Service, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find()
	if len(fields) > 0 {
		proj := bson.M{}
		for _, f := range fields {
			proj[f] = 1
		}
		opts.SetProjection(proj)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, bson.M{"name": name}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up service %s: %w", name, err)
	}
	return true, nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	service.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.WriteResult{}, fmt.Errorf("service %q already exists: %w", service.Name, utils.ErrInvalidInput)
		}
		return models.WriteResult{}, fmt.Errorf("failed to create service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		service.ID = oid
	}
	return repository.FromInsert(res), nil
}

func (r *MongoServiceRepo) DeleteByName(ctx context.Context, name string) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("failed to delete service %s: %w", name, err)
	}
	return repository.FromDelete(res), nil
}

// EnsureIndexes makes service names unique so treatments resolve to one service.
func (r *MongoServiceRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := r.coll.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
