package payment

import (
	"context"
	"errors"
	"fmt"

	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memBookings struct {
	bookings    map[primitive.ObjectID]*models.Booking
	markPaidErr error
	markCalls   int
}

func (m *memBookings) Insert(ctx context.Context, b *models.Booking) error { return nil }

func (m *memBookings) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return nil, utils.ErrNotFound
}

func (m *memBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookings) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookings) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}
	copied := *b
	return &copied, nil
}

func (m *memBookings) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	m.markCalls++
	if m.markPaidErr != nil {
		return m.markPaidErr
	}
	b, ok := m.bookings[id]
	if !ok {
		return utils.ErrNotFound
	}
	b.Paid = true
	b.TransactionID = transactionID
	return nil
}

func (m *memBookings) EnsureIndexes(ctx context.Context) error { return nil }

type memPayments struct {
	entries []*models.Payment
}

func (m *memPayments) Insert(ctx context.Context, p *models.Payment) error {
	for _, e := range m.entries {
		if e.TransactionID == p.TransactionID {
			return paymentRepo.ErrDuplicatePayment
		}
	}
	p.ID = primitive.NewObjectID()
	stored := *p
	m.entries = append(m.entries, &stored)
	return nil
}

func (m *memPayments) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	for _, e := range m.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("payment: %w", utils.ErrNotFound)
}

func (m *memPayments) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("payment: %w", utils.ErrNotFound)
}

func (m *memPayments) MarkSettled(ctx context.Context, id primitive.ObjectID) error {
	for _, e := range m.entries {
		if e.ID == id {
			e.Settled = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (m *memPayments) EnsureIndexes(ctx context.Context) error { return nil }

type recordingQueue struct {
	queued []string
	err    error
}

func (q *recordingQueue) EnqueueSettlement(ctx context.Context, paymentID string) error {
	if q.err != nil {
		return q.err
	}
	q.queued = append(q.queued, paymentID)
	return nil
}

var errStoreDown = errors.New("server selection timeout")
