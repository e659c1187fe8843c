package booking

import (
	"context"
	"fmt"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memBookings mimics the unique (treatment, date, patient) index.
type memBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
	findErr  error
}

func key(b models.Booking) string {
	return b.Treatment + "|" + b.Date + "|" + b.Patient
}

func (m *memBookings) Insert(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.bookings {
		if key(existing) == key(*b) {
			return bookingRepo.ErrDuplicateBooking
		}
	}
	b.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookings) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("booking: %w", utils.ErrNotFound)
}

func (m *memBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.filter(func(b models.Booking) bool { return b.Date == date }), nil
}

func (m *memBookings) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Patient == patient }), nil
}

func (m *memBookings) filter(keep func(models.Booking) bool) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (m *memBookings) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
}

func (m *memBookings) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	return nil
}

func (m *memBookings) EnsureIndexes(ctx context.Context) error { return nil }

type memServices struct {
	services []models.Service
}

func (m *memServices) GetAll(ctx context.Context, fields []string) ([]models.Service, error) {
	out := make([]models.Service, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *memServices) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, s := range m.services {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memServices) Create(ctx context.Context, s *models.Service) (models.WriteResult, error) {
	m.services = append(m.services, *s)
	return models.WriteResult{Acknowledged: true}, nil
}

func (m *memServices) DeleteByName(ctx context.Context, name string) (models.WriteResult, error) {
	return models.WriteResult{Acknowledged: true}, nil
}

func (m *memServices) EnsureIndexes(ctx context.Context) error { return nil }
