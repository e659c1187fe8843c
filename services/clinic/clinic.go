// Package clinic manages the directory data of the portal: the services on
// offer, the doctors and patient reviews.
package clinic

import (
	"context"
	"fmt"
	"strings"

	catalogRepo "doctorsportal/database/repository/catalog"
	doctorRepo "doctorsportal/database/repository/doctor"
	reviewRepo "doctorsportal/database/repository/review"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// DefaultServiceFields is the projection used when a listing names no fields.
var DefaultServiceFields = []string{"name"}

var serviceFields = map[string]bool{"name": true, "price": true, "slots": true}

type Service struct {
	Services catalogRepo.ServiceRepository
	Doctors  doctorRepo.DoctorRepository
	Reviews  reviewRepo.ReviewRepository
	Logger   *zap.Logger
}

func NewService(services catalogRepo.ServiceRepository, doctors doctorRepo.DoctorRepository, reviews reviewRepo.ReviewRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Services: services, Doctors: doctors, Reviews: reviews, Logger: logger}
}

// ParseFields turns a comma separated field list into a projection.
// Unknown names are rejected; an empty list yields DefaultServiceFields.
func ParseFields(raw string) ([]string, error) {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !serviceFields[f] {
			return nil, fmt.Errorf("unknown service field %q: %w", f, utils.ErrInvalidInput)
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return DefaultServiceFields, nil
	}
	return fields, nil
}

func (s *Service) ListServices(ctx context.Context, fields []string) ([]models.Service, error) {
	return s.Services.GetAll(ctx, fields)
}

func (s *Service) CreateService(ctx context.Context, service models.Service) (models.WriteResult, error) {
	service.Name = strings.TrimSpace(service.Name)
	if service.Name == "" {
		return models.WriteResult{}, fmt.Errorf("service name is required: %w", utils.ErrInvalidInput)
	}
	if service.Price < 0 {
		return models.WriteResult{}, fmt.Errorf("service price cannot be negative: %w", utils.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(service.Slots))
	for _, slot := range service.Slots {
		if seen[slot] {
			return models.WriteResult{}, fmt.Errorf("slot %q listed twice: %w", slot, utils.ErrInvalidInput)
		}
		seen[slot] = true
	}

	result, err := s.Services.Create(ctx, &service)
	if err != nil {
		return models.WriteResult{}, err
	}
	s.Logger.Info("Service created", zap.String("name", service.Name), zap.Int("slots", len(service.Slots)))
	return result, nil
}

func (s *Service) DeleteService(ctx context.Context, name string) (models.WriteResult, error) {
	return s.Services.DeleteByName(ctx, name)
}

func (s *Service) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Doctors.GetAll(ctx)
}

func (s *Service) AddDoctor(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	doctor.Email = strings.TrimSpace(doctor.Email)
	doctor.Name = strings.TrimSpace(doctor.Name)
	if doctor.Email == "" || doctor.Name == "" {
		return nil, fmt.Errorf("doctor name and email are required: %w", utils.ErrInvalidInput)
	}
	if err := s.Doctors.Create(ctx, &doctor); err != nil {
		return nil, err
	}
	s.Logger.Info("Doctor added", zap.String("email", doctor.Email))
	return &doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, email string) (models.WriteResult, error) {
	return s.Doctors.DeleteByEmail(ctx, email)
}

func (s *Service) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.Reviews.GetAll(ctx)
}

func (s *Service) AddReview(ctx context.Context, review models.Review) (*models.Review, error) {
	if review.Rating < 0 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5: %w", utils.ErrInvalidInput)
	}
	if err := s.Reviews.Create(ctx, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
