package user

import (
	"context"
	"fmt"
	"strings"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// UpsertProfile writes the client-editable profile of email. The stored role
// is never touched here.
func (s *DefaultUserService) UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (*ProfileResponse, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, utils.ErrInvalidInput)
	}
	profile.Name = strings.TrimSpace(profile.Name)

	result, err := s.Repo.UpsertProfile(ctx, email, profile)
	if err != nil {
		return nil, err
	}
	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.Logger.Debug("Profile upserted", zap.String("email", email), zap.Int64("upserted", result.UpsertedCount))
	return &ProfileResponse{Result: result, Token: token}, nil
}

// GetAllUsers lists every user.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, email string) (models.WriteResult, error) {
	result, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return models.WriteResult{}, err
	}
	s.Roles.Invalidate(ctx, email)
	s.Logger.Info("User deleted", zap.String("email", email), zap.Int64("deleted", result.DeletedCount))
	return result, nil
}
