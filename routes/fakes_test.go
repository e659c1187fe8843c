package routes

import (
	"context"
	"fmt"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memStore struct {
	mu       sync.Mutex
	services []models.Service
	bookings []*models.Booking
	users    map[string]*models.User
	payments []*models.Payment
	doctors  []models.Doctor
	reviews  []models.Review
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*models.User{}}
}

type services struct{ *memStore }

func (s services) GetAll(ctx context.Context, fields []string) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s services) ExistsByName(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s services) Create(ctx context.Context, svc *models.Service) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = primitive.NewObjectID()
	s.services = append(s.services, *svc)
	return models.WriteResult{Acknowledged: true, InsertedID: svc.ID.Hex()}, nil
}

func (s services) DeleteByName(ctx context.Context, name string) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, svc := range s.services {
		if svc.Name == name {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.WriteResult{Acknowledged: true}, nil
}

func (s services) EnsureIndexes(ctx context.Context) error { return nil }

type bookings struct{ *memStore }

func (s bookings) Insert(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.bookings {
		if e.Treatment == b.Treatment && e.Date == b.Date && e.Patient == b.Patient {
			return bookingRepo.ErrDuplicateBooking
		}
	}
	b.ID = primitive.NewObjectID()
	stored := *b
	s.bookings = append(s.bookings, &stored)
	return nil
}

func (s bookings) FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	return s.first(func(b *models.Booking) bool {
		return b.Treatment == treatment && b.Date == date && b.Patient == patient
	})
}

func (s bookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.all(func(b *models.Booking) bool { return b.Date == date }), nil
}

func (s bookings) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	return s.all(func(b *models.Booking) bool { return b.Patient == patient }), nil
}

func (s bookings) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return s.first(func(b *models.Booking) bool { return b.ID == id })
}

func (s bookings) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			b.Paid = true
			b.TransactionID = transactionID
			return nil
		}
	}
	return utils.ErrNotFound
}

func (s bookings) EnsureIndexes(ctx context.Context) error { return nil }

func (s bookings) first(match func(*models.Booking) bool) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if match(b) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("booking: %w", utils.ErrNotFound)
}

func (s bookings) all(match func(*models.Booking) bool) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if match(b) {
			out = append(out, *b)
		}
	}
	return out
}

type users struct{ *memStore }

func (s users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s users) GetAll(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s users) UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[email]; ok {
		u.Name = profile.Name
		return models.WriteResult{Acknowledged: true, MatchedCount: 1}, nil
	}
	s.users[email] = &models.User{Email: email, Name: profile.Name, Role: models.RoleRegular}
	return models.WriteResult{Acknowledged: true, UpsertedCount: 1}, nil
}

func (s users) SetRole(ctx context.Context, email string, role models.Role) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return models.WriteResult{Acknowledged: true}, nil
	}
	u.Role = role
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s users) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; !ok {
		return models.WriteResult{Acknowledged: true}, nil
	}
	delete(s.users, email)
	return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s users) EnsureIndexes(ctx context.Context) error { return nil }

type payments struct{ *memStore }

func (s payments) Insert(ctx context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.payments {
		if e.TransactionID == p.TransactionID {
			return paymentRepo.ErrDuplicatePayment
		}
	}
	p.ID = primitive.NewObjectID()
	stored := *p
	s.payments = append(s.payments, &stored)
	return nil
}

func (s payments) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	return s.find(func(p *models.Payment) bool { return p.ID == id })
}

func (s payments) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	return s.find(func(p *models.Payment) bool { return p.TransactionID == transactionID })
}

func (s payments) find(match func(*models.Payment) bool) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if match(p) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("payment: %w", utils.ErrNotFound)
}

func (s payments) MarkSettled(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			p.Settled = true
			return nil
		}
	}
	return utils.ErrNotFound
}

func (s payments) EnsureIndexes(ctx context.Context) error { return nil }

type doctors struct{ *memStore }

func (s doctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Doctor{}, s.doctors...), nil
}

func (s doctors) Create(ctx context.Context, d *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = primitive.NewObjectID()
	s.doctors = append(s.doctors, *d)
	return nil
}

func (s doctors) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.doctors {
		if d.Email == email {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return models.WriteResult{Acknowledged: true}, nil
}

func (s doctors) EnsureIndexes(ctx context.Context) error { return nil }

type reviews struct{ *memStore }

func (s reviews) GetAll(ctx context.Context) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Review{}, s.reviews...), nil
}

func (s reviews) Create(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *r)
	return nil
}
