package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctorsportal/models"
	"doctorsportal/services/auth"
	"doctorsportal/utils"
)

type memUsers struct {
	users map[string]*models.User
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) GetAll(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, error) {
	if u, ok := m.users[email]; ok {
		if profile.Name != "" {
			u.Name = profile.Name
		}
		return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	m.users[email] = &models.User{Email: email, Name: profile.Name, Role: models.RoleRegular}
	return models.WriteResult{Acknowledged: true, UpsertedCount: 1}, nil
}

func (m *memUsers) SetRole(ctx context.Context, email string, role models.Role) (models.WriteResult, error) {
	u, ok := m.users[email]
	if !ok {
		return models.WriteResult{Acknowledged: true}, nil
	}
	u.Role = role
	return models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memUsers) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	if _, ok := m.users[email]; !ok {
		return models.WriteResult{Acknowledged: true}, nil
	}
	delete(m.users, email)
	return models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memUsers) EnsureIndexes(ctx context.Context) error { return nil }

type mapCache map[string]models.Role

func (c mapCache) Get(ctx context.Context, email string) (models.Role, bool, error) {
	r, ok := c[email]
	return r, ok, nil
}

func (c mapCache) Set(ctx context.Context, email string, role models.Role) error {
	c[email] = role
	return nil
}

func (c mapCache) Delete(ctx context.Context, email string) error {
	delete(c, email)
	return nil
}

func newService() (*DefaultUserService, *memUsers, mapCache) {
	users := &memUsers{users: map[string]*models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
	}}
	cache := mapCache{}
	roles := auth.NewRoleAuthorizer(users, cache, nil)
	tokens := utils.NewTokenManager("user-service-secret", time.Hour)
	return NewUserService(users, tokens, roles, nil), users, cache
}

func TestUpsertProfile_IssuesToken(t *testing.T) {
	svc, users, _ := newService()

	resp, err := svc.UpsertProfile(context.Background(), "new@x.com", models.UserProfile{Name: "New"})
	if err != nil {
		t.Fatalf("UpsertProfile: %v", err)
	}
	if resp.Result.UpsertedCount != 1 {
		t.Errorf("expected an upsert, got %+v", resp.Result)
	}
	claims, err := svc.Tokens.ValidateToken(resp.Token)
	if err != nil || claims.Email != "new@x.com" {
		t.Errorf("expected token for new@x.com, got %v, %v", claims, err)
	}
	if users.users["new@x.com"].Role != models.RoleRegular {
		t.Errorf("expected new users to be regular, got %q", users.users["new@x.com"].Role)
	}
}

func TestUpsertProfile_KeepsRole(t *testing.T) {
	svc, users, _ := newService()
	if _, err := svc.UpsertProfile(context.Background(), "admin@x.com", models.UserProfile{Name: "Boss"}); err != nil {
		t.Fatal(err)
	}
	if users.users["admin@x.com"].Role != models.RoleAdmin {
		t.Error("expected profile upsert to leave the role alone")
	}
}

func TestUpsertProfile_InvalidEmail(t *testing.T) {
	svc, users, _ := newService()
	for _, email := range []string{"", "not-an-email", "Ann <ann@x.com>", "ann@"} {
		if _, err := svc.UpsertProfile(context.Background(), email, models.UserProfile{}); !errors.Is(err, utils.ErrInvalidInput) {
			t.Errorf("%q: expected ErrInvalidInput, got %v", email, err)
		}
	}
	if _, ok := users.users["Ann <ann@x.com>"]; ok {
		t.Error("expected display-name address to be rejected before storing")
	}
}

func TestMakeAdmin(t *testing.T) {
	svc, _, cache := newService()
	ctx := context.Background()

	if _, err := svc.UpsertProfile(ctx, "doc@x.com", models.UserProfile{}); err != nil {
		t.Fatal(err)
	}
	if ok, _ := svc.IsAdmin(ctx, "doc@x.com"); ok {
		t.Fatal("expected regular user")
	}
	if _, ok := cache["doc@x.com"]; !ok {
		t.Fatal("expected role to be cached after lookup")
	}

	if _, err := svc.MakeAdmin(ctx, "doc@x.com"); err != nil {
		t.Fatalf("MakeAdmin: %v", err)
	}
	if ok, _ := svc.IsAdmin(ctx, "doc@x.com"); !ok {
		t.Error("expected promoted user to be admin despite earlier cached role")
	}
	if _, err := svc.MakeAdmin(ctx, "ghost@x.com"); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestDeleteUser_InvalidatesRole(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	if ok, _ := svc.IsAdmin(ctx, "admin@x.com"); !ok {
		t.Fatal("expected admin")
	}
	res, err := svc.DeleteUser(ctx, "admin@x.com")
	if err != nil || res.DeletedCount != 1 {
		t.Fatalf("DeleteUser: %+v, %v", res, err)
	}
	if ok, _ := svc.IsAdmin(ctx, "admin@x.com"); ok {
		t.Error("expected deleted admin to lose access")
	}
}
