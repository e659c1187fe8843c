package catalogRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository stores the services the clinic offers.
type ServiceRepository interface {
	// GetAll lists services. A non-empty fields list projects the documents
	// onto those fields (the id is always returned).
	GetAll(ctx context.Context, fields []string) ([]models.Service, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, service *models.Service) (models.WriteResult, error)
	DeleteByName(ctx context.Context, name string) (models.WriteResult, error)
	EnsureIndexes(ctx context.Context) error
}
