package entity

import "github.com/google/uuid"

// Principal is the authenticated caller bound to a request.
// It is resolved once by the authentication gate and read everywhere else.
type Principal struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Territory string    `json:"territory,omitempty"`
	Region    string    `json:"region,omitempty"`
	City      string    `json:"city,omitempty"`
}

// NewPrincipal normalizes an identity into a Principal. Unknown role strings
// collapse to MR so that a malformed record never gains privileges.
func NewPrincipal(identity *Identity) *Principal {
	if identity == nil {
		return nil
	}

	role, ok := ParseRole(string(identity.Role))
	if !ok {
		role = RoleMR
	}

	return &Principal{
		ID:        identity.ID,
		Role:      role,
		Name:      identity.Name,
		Email:     identity.Email,
		Territory: identity.Territory,
		Region:    identity.Region,
		City:      identity.City,
	}
}

// IsAdmin reports whether the principal holds the Admin role. A nil principal is never admin.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}
