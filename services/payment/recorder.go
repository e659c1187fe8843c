package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Recorder writes payments to the ledger and marks their bookings paid.
//
// A payment is first stored unsettled. Marking the booking paid and then the
// entry settled follow; both writes are idempotent, so a failure between them
// is repaired by queueing Settle instead of rolling back.
type Recorder struct {
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Queue    SettlementQueue
	Logger   *zap.Logger
}

func NewRecorder(bookings bookingRepo.BookingRepository, payments paymentRepo.PaymentRepository, queue SettlementQueue, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{Bookings: bookings, Payments: payments, Queue: queue, Logger: logger}
}

// Record appends payment for the booking with bookingID. The receipt reports
// Settled=false when the booking update was deferred to the retry queue.
func (r *Recorder) Record(ctx context.Context, bookingID string, payment models.Payment) (*models.PaymentReceipt, error) {
	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %v", bookingID, err)
	}
	payment.TransactionID = strings.TrimSpace(payment.TransactionID)
	if payment.TransactionID == "" {
		return nil, fmt.Errorf("transactionId is required: %w", utils.ErrInvalidInput)
	}

	booking, err := r.Bookings.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	entry, err := r.append(ctx, booking, payment)
	if err != nil {
		return nil, err
	}
	if entry.Settled {
		return receipt(entry, true), nil
	}

	logger := r.Logger.With(zap.String("paymentID", entry.ID.Hex()), zap.String("bookingID", bookingID))
	if err := r.Bookings.MarkPaid(ctx, entry.BookingID, entry.TransactionID); err != nil {
		return r.deferSettlement(ctx, logger, entry, false, err)
	}
	if err := r.Payments.MarkSettled(ctx, entry.ID); err != nil {
		return r.deferSettlement(ctx, logger, entry, true, err)
	}

	entry.Settled = true
	logger.Info("Payment recorded", zap.String("transactionID", entry.TransactionID))
	return receipt(entry, true), nil
}

// append stores the ledger entry. A transaction id that is already recorded
// for the same booking reuses that entry.
func (r *Recorder) append(ctx context.Context, booking *models.Booking, payment models.Payment) (*models.Payment, error) {
	payment.BookingID = booking.ID
	payment.Settled = false
	payment.SettledAt = nil
	if payment.Patient == "" {
		payment.Patient = booking.Patient
	}

	err := r.Payments.Insert(ctx, &payment)
	if err == nil {
		return &payment, nil
	}
	if !errors.Is(err, paymentRepo.ErrDuplicatePayment) {
		return nil, err
	}

	existing, err := r.Payments.GetByTransactionID(ctx, payment.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recorded payment: %w", err)
	}
	if existing.BookingID != booking.ID {
		return nil, fmt.Errorf("transaction %s already paid booking %s: %w",
			payment.TransactionID, existing.BookingID.Hex(), utils.ErrInvalidInput)
	}
	return existing, nil
}

func (r *Recorder) deferSettlement(ctx context.Context, logger *zap.Logger, entry *models.Payment, paid bool, cause error) (*models.PaymentReceipt, error) {
	logger.Warn("Payment not settled, queueing retry", zap.Bool("bookingPaid", paid), zap.Error(cause))

	var enqueueErr error
	if r.Queue == nil {
		enqueueErr = errors.New("settlement queue not configured")
	} else {
		enqueueErr = r.Queue.EnqueueSettlement(ctx, entry.ID.Hex())
	}
	if enqueueErr != nil {
		logger.Error("Partial payment: retry could not be queued", zap.Error(enqueueErr))
		return nil, &PartialPaymentError{
			PaymentID:  entry.ID.Hex(),
			BookingID:  entry.BookingID.Hex(),
			Cause:      cause,
			EnqueueErr: enqueueErr,
		}
	}
	return receipt(entry, paid), nil
}

// Settle finishes a recorded payment. Settled payments are left alone.
func (r *Recorder) Settle(ctx context.Context, paymentID string) error {
	oid, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return fmt.Errorf("invalid payment id %q: %w", paymentID, utils.ErrInvalidInput)
	}
	entry, err := r.Payments.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if entry.Settled {
		return nil
	}
	if err := r.Bookings.MarkPaid(ctx, entry.BookingID, entry.TransactionID); err != nil {
		return fmt.Errorf("settle %s: %w", paymentID, err)
	}
	if err := r.Payments.MarkSettled(ctx, entry.ID); err != nil {
		return fmt.Errorf("settle %s: %w", paymentID, err)
	}
	r.Logger.Info("Payment settled", zap.String("paymentID", paymentID))
	return nil
}

func receipt(p *models.Payment, paid bool) *models.PaymentReceipt {
	return &models.PaymentReceipt{
		PaymentID:     p.ID.Hex(),
		BookingID:     p.BookingID.Hex(),
		TransactionID: p.TransactionID,
		Paid:          paid,
		Settled:       p.Settled,
	}
}
