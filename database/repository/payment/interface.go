package paymentRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicatePayment is returned by Insert when the transaction id is
// already recorded.
var ErrDuplicatePayment = errors.New("payment already recorded for transaction")

// PaymentRepository is the append-only payment ledger. Entries are never
// deleted; only the settled flag moves.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	MarkSettled(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}
