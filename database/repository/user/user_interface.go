package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access. Users are keyed by email.
type UserRepository interface {
	// GetByEmail returns nil, nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpsertProfile creates the user or updates its profile fields.
	UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, error)
	// SetRole changes the role of an existing user.
	SetRole(ctx context.Context, email string, role models.Role) (models.WriteResult, error)
	// DeleteByEmail removes the user with the email.
	DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error)
	EnsureIndexes(ctx context.Context) error
}
