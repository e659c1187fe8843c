package doctorRepo

import (
	"context"
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

type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error)
	EnsureIndexes(ctx context.Context) error
}

type MongoDoctorRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoDoctorRepo(db *mongo.Database, timeout time.Duration) *MongoDoctorRepo {
	return &MongoDoctorRepo{coll: db.Collection("doctors"), timeout: timeout}
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding doctors: %w", err)
	}
	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("error decoding doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	doctor.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		doctor.ID = primitive.NilObjectID
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("doctor %s already exists: %w", doctor.Email, utils.ErrInvalidInput)
		}
		return fmt.Errorf("error creating doctor: %w", err)
	}
	return nil
}

// DeleteByEmail removes the doctor. Deleting an unknown email is not an error;
// the result reports deletedCount 0.
func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("error deleting doctor %s: %w", email, err)
	}
	return repository.FromDelete(res), nil
}

func (r *MongoDoctorRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create doctor index: %w", err)
	}
	return nil
}
