package user

import (
	"context"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (models.WriteResult, error) {
	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return models.WriteResult{}, err
	}
	if result.MatchedCount == 0 {
		return result, fmt.Errorf("user %s: %w", email, utils.ErrNotFound)
	}
	s.Roles.Invalidate(ctx, email)
	s.Logger.Info("User promoted to admin", zap.String("email", email))
	return result, nil
}

// IsAdmin reports whether email belongs to an admin. Unknown emails are not.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.Roles.IsAdmin(ctx, email)
}
