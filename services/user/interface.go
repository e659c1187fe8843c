package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/auth"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// UserService defines business logic for user operations.
type UserService interface {
	// UpsertProfile creates or updates the user with email and issues a
	// fresh access token for it.
	UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (*ProfileResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes a user. Callers must have checked admin rights.
	DeleteUser(ctx context.Context, email string) (models.WriteResult, error)
	// MakeAdmin promotes an existing user. Callers must have checked admin rights.
	MakeAdmin(ctx context.Context, email string) (models.WriteResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// ProfileResponse is returned by the profile upsert.
type ProfileResponse struct {
	Result models.WriteResult `json:"result"`
	Token  string             `json:"token"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenManager
	Roles  *auth.RoleAuthorizer
	Logger *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenManager, roles *auth.RoleAuthorizer, logger *zap.Logger) *DefaultUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultUserService{Repo: repo, Tokens: tokens, Roles: roles, Logger: logger}
}
