package paymentRepo

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

type MongoPaymentRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoPaymentRepo(db *mongo.Database, timeout time.Duration) *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: db.Collection("payments"), timeout: timeout}
}

func (r *MongoPaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	payment.ID = primitive.NewObjectID()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		payment.ID = primitive.NilObjectID
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePayment
		}
		return fmt.Errorf("error recording payment: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id.Hex())
}

func (r *MongoPaymentRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"transactionId": transactionID}, transactionID)
}

func (r *MongoPaymentRepo) findOne(ctx context.Context, filter bson.M, ref string) (*models.Payment, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, filter).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("payment %s: %w", ref, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching payment %s: %w", ref, err)
	}
	return &payment, nil
}

// MarkSettled flags the entry once its booking has been marked paid.
func (r *MongoPaymentRepo) MarkSettled(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"settled": true, "settledAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error settling payment %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("payment %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return nil
}

func (r *MongoPaymentRepo) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "booking", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
