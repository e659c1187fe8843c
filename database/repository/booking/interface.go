package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateBooking is returned by Insert when the patient already holds a
// booking for the same treatment on the same date.
var ErrDuplicateBooking = errors.New("booking already exists for treatment, date and patient")

// BookingRepository is the booking ledger.
type BookingRepository interface {
	// Insert stores a new booking atomically against the unique
	// (treatment, date, patient) index.
	Insert(ctx context.Context, booking *models.Booking) error
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	// MarkPaid sets paid=true and the transaction id. Repeating it is harmless.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error
	EnsureIndexes(ctx context.Context) error
}
