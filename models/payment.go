package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an entry in the append-only payment ledger. Settled turns true
// once the referenced booking has been marked paid.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookingID     primitive.ObjectID `bson:"booking" json:"booking"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	Amount        float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Patient       string             `bson:"patient,omitempty" json:"patient,omitempty"`
	Settled       bool               `bson:"settled" json:"settled"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	SettledAt     *time.Time         `bson:"settledAt,omitempty" json:"settledAt,omitempty"`
}

// PaymentReceipt is returned after recording a payment. Settled is false when
// the booking update failed and was queued for retry.
type PaymentReceipt struct {
	PaymentID     string `json:"paymentId"`
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
	Paid          bool   `json:"paid"`
	Settled       bool   `json:"settled"`
}

// PaymentIntentRequest carries the price the client wants to charge.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}
