package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin panel account. RoleID is a weak reference to a Role;
// a user without a resolvable role has no permissions.
type User struct {
	ID           uuid.UUID  `json:"id"`
	UserName     string     `json:"userName"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	RoleID       *uuid.UUID `json:"roleId,omitempty"`
	TOTPSecret   *string    `json:"-"`
	TOTPEnabled  bool       `json:"totpEnabled"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// HasTOTP reports whether the account has completed 2FA enrollment.
func (u *User) HasTOTP() bool {
	return u.TOTPEnabled && u.TOTPSecret != nil
}
