package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is a user account. Identities are never hard-deleted; they are deactivated.
type Identity struct {
	ID                 uuid.UUID  `json:"id"`
	EmployeeID         string     `json:"employeeId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone,omitempty"`
	Role               Role       `json:"role"`
	IsActive           bool       `json:"isActive"`
	Territory          string     `json:"territory,omitempty"`
	Region             string     `json:"region,omitempty"`
	City               string     `json:"city,omitempty"`
	ReportingManagerID *uuid.UUID `json:"reportingManagerId,omitempty"`
	MustChangePassword bool       `json:"mustChangePassword"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	// PasswordHash is only ever written by the identity repository.
	PasswordHash string `json:"-"`

	plainPassword string
}

// SetPassword records a new plaintext credential. It is hashed exactly once,
// when the identity is next persisted.
func (i *Identity) SetPassword(plain string) {
	i.plainPassword = plain
}

// PendingPassword returns the plaintext set since the last save, if any.
func (i *Identity) PendingPassword() (string, bool) {
	return i.plainPassword, i.plainPassword != ""
}

// ClearPendingPassword drops the plaintext after it has been hashed.
func (i *Identity) ClearPendingPassword() {
	i.plainPassword = ""
}

// NormalizeEmail lower-cases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
