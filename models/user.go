// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level of a user.
type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// Normalize maps stored values onto a known role. Records written before
// roles existed carry no role and are regular users.
func (r Role) Normalize() Role {
	switch r {
	case RoleAdmin:
		return RoleAdmin
	case RoleRegular:
		return RoleRegular
	default:
		return RoleRegular
	}
}

// IsAdmin reports whether the role grants elevated privilege.
func (r Role) IsAdmin() bool {
	switch r.Normalize() {
	case RoleAdmin:
		return true
	case RoleRegular:
		return false
	}
	return false
}

// User represents a portal user, keyed by email.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserProfile is the client-editable part of a user. It deliberately has no
// role field: roles change only through the admin route.
type UserProfile struct {
	Name string `json:"name"`
}
