package auth

import (
	"context"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// RoleAuthorizer decides whether an authenticated email holds the admin role.
type RoleAuthorizer struct {
	Users  userRepo.UserRepository
	Cache  RoleCache
	Logger *zap.Logger
}

func NewRoleAuthorizer(users userRepo.UserRepository, cache RoleCache, logger *zap.Logger) *RoleAuthorizer {
	if cache == nil {
		cache = NoopRoleCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleAuthorizer{Users: users, Cache: cache, Logger: logger}
}

// RequireAdmin passes only when a user record exists for email and its role
// is admin. Everything else, unknown emails included, is ErrForbidden.
func (a *RoleAuthorizer) RequireAdmin(ctx context.Context, email string) error {
	role, found, err := a.roleOf(ctx, email)
	if err != nil {
		return err
	}
	if !found || !role.IsAdmin() {
		return fmt.Errorf("%s is not an admin: %w", email, utils.ErrForbidden)
	}
	return nil
}

// IsAdmin reports the admin flag for email. Unknown emails are not admins.
func (a *RoleAuthorizer) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, found, err := a.roleOf(ctx, email)
	if err != nil {
		return false, err
	}
	return found && role.IsAdmin(), nil
}

// Invalidate drops the cached role of email after its record changed.
func (a *RoleAuthorizer) Invalidate(ctx context.Context, email string) {
	if err := a.Cache.Delete(ctx, email); err != nil {
		a.Logger.Warn("Failed to invalidate cached role", zap.String("email", email), zap.Error(err))
	}
}

func (a *RoleAuthorizer) roleOf(ctx context.Context, email string) (models.Role, bool, error) {
	if email == "" {
		return "", false, nil
	}
	role, ok, err := a.Cache.Get(ctx, email)
	if err != nil {
		a.Logger.Warn("Role cache unavailable, reading directory", zap.Error(err))
	} else if ok {
		return role, true, nil
	}

	user, err := a.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", false, fmt.Errorf("role lookup for %s: %w", email, err)
	}
	if user == nil {
		return "", false, nil
	}
	if err := a.Cache.Set(ctx, email, user.Role); err != nil {
		a.Logger.Warn("Failed to cache role", zap.String("email", email), zap.Error(err))
	}
	return user.Role, true, nil
}
