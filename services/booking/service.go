package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingService covers availability, admission and booking reads.
type BookingService interface {
	// Availability lists every service with the slots still free on date.
	Availability(ctx context.Context, date string) ([]models.ServiceAvailability, error)
	// Admit stores a booking unless the patient already holds one for the
	// same treatment and date, in which case that booking is returned with
	// Success=false.
	Admit(ctx context.Context, candidate models.Booking) (*models.AdmissionResult, error)
	// ListForPatient returns the bookings of patient. The requester must be
	// the patient.
	ListForPatient(ctx context.Context, requester, patient string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services catalogRepo.ServiceRepository
	Logger   *zap.Logger
}

func NewBookingService(bookings bookingRepo.BookingRepository, services catalogRepo.ServiceRepository, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{Bookings: bookings, Services: services, Logger: logger}
}

func (s *DefaultBookingService) Availability(ctx context.Context, date string) ([]models.ServiceAvailability, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, fmt.Errorf("date is required: %w", utils.ErrInvalidInput)
	}

	services, err := s.Services.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return ComputeAvailability(services, bookings), nil
}

func (s *DefaultBookingService) Admit(ctx context.Context, candidate models.Booking) (*models.AdmissionResult, error) {
	candidate.Treatment = strings.TrimSpace(candidate.Treatment)
	candidate.Date = strings.TrimSpace(candidate.Date)
	candidate.Slot = strings.TrimSpace(candidate.Slot)
	candidate.Patient = strings.TrimSpace(candidate.Patient)
	if candidate.Treatment == "" || candidate.Date == "" || candidate.Slot == "" || candidate.Patient == "" {
		return nil, fmt.Errorf("treatment, date, slot and patient are required: %w", utils.ErrInvalidInput)
	}

	exists, err := s.Services.ExistsByName(ctx, candidate.Treatment)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("unknown treatment %q: %w", candidate.Treatment, utils.ErrInvalidInput)
	}

	// Payment state is only ever set by the payment recorder.
	candidate.Paid = false
	candidate.TransactionID = ""

	err = s.Bookings.Insert(ctx, &candidate)
	if err == nil {
		s.Logger.Info("Booking admitted",
			zap.String("bookingID", candidate.ID.Hex()),
			zap.String("treatment", candidate.Treatment),
			zap.String("date", candidate.Date),
			zap.String("slot", candidate.Slot))
		return &models.AdmissionResult{Success: true, Booking: &candidate}, nil
	}
	if !errors.Is(err, bookingRepo.ErrDuplicateBooking) {
		return nil, err
	}

	existing, err := s.Bookings.FindByKey(ctx, candidate.Treatment, candidate.Date, candidate.Patient)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicting booking: %w", err)
	}
	s.Logger.Info("Duplicate booking rejected",
		zap.String("existingID", existing.ID.Hex()),
		zap.String("treatment", candidate.Treatment),
		zap.String("date", candidate.Date))
	return &models.AdmissionResult{Success: false, Booking: existing}, nil
}

func (s *DefaultBookingService) ListForPatient(ctx context.Context, requester, patient string) ([]models.Booking, error) {
	if requester == "" {
		return nil, utils.ErrUnauthenticated
	}
	if patient != requester {
		return nil, fmt.Errorf("%s may not read bookings of %q: %w", requester, patient, utils.ErrForbidden)
	}
	return s.Bookings.FindByPatient(ctx, patient)
}

// GetByID loads one booking. A malformed id is a plain error and surfaces
// as a server failure; an unknown id is ErrNotFound.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %v", id, err)
	}
	return s.Bookings.GetByID(ctx, oid)
}
