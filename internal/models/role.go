package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleUser     Role = "user"
	RoleReviewer Role = "reviewer"
	RoleApproval Role = "approval"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser, RoleReviewer, RoleApproval:
		return true
	}
	return false
}

// UserRole holds the single role assigned to a user. Created lazily with
// role "user" the first time a user is resolved. user_id is the primary
// key, so the role-assignment upsert conflicts on it.
type UserRole struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
