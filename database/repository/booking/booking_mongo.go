package bookingRepo

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
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings"), timeout: timeout}
}

// Insert inserts a new booking document, assigning its id.
func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		booking.ID = primitive.NilObjectID
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking for %s on %s: %w", treatment, date, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching booking: %w", err)
	}
	return &booking, nil
}

// FindByDate returns every booking on the date, across all treatments.
func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *MongoBookingRepo) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a booking by its ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}
	return nil
}
