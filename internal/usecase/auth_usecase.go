// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"medrep/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an identity to log in.
// Role is optional; when present it must match the stored role.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// ChangePasswordInput replaces the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

// --- Output DTOs ---

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      *entity.Identity `json:"user"`
}

// AuthUsecase covers login and the authentication gate.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer token to the caller. It never writes.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)

	Me(ctx context.Context, principal *entity.Principal) (*entity.Identity, error)
	ChangePassword(ctx context.Context, principal *entity.Principal, input *ChangePasswordInput) error
}
