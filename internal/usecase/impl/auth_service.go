package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "medrep/internal/delivery/context"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/repository"
	"medrep/internal/domain/service"
	"medrep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identity, err := srv.identityRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	// password first: only the account owner learns it is inactive
	if !srv.hasher.Check(input.Password, identity.PasswordHash) {
		srv.log(ctx).Info("Login rejected: wrong password", slog.String("identity_id", identity.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !identity.IsActive {
		return nil, domainerrors.ErrIdentityInactive
	}

	if requested := strings.TrimSpace(input.Role); requested != "" && !identity.Role.Is(entity.Role(requested)) {
		srv.log(ctx).Info("Login rejected: role mismatch",
			slog.String("identity_id", identity.ID.String()),
			slog.String("requested_role", requested),
		)

		return nil, domainerrors.ErrRoleMismatch
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(identity.ID, identity.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	now := utcNow()
	if err := srv.identityRepo.UpdateLastLogin(ctx, identity.ID, now); err != nil {
		srv.log(ctx).Warn("Failed to record last login", slog.String("identity_id", identity.ID.String()), slog.Any("error", err))
	} else {
		identity.LastLoginAt = &now
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("identity_id", identity.ID.String()), slog.String("role", identity.Role.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      identity,
	}, nil
}

// Authenticate resolves a bearer token to a Principal.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, domainerrors.ErrTokenInvalid
	}

	identity, err := srv.identityRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrIdentityNotFound) {
		return nil, domainerrors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load identity")
	}

	if !identity.IsActive {
		return nil, domainerrors.ErrIdentityInactive
	}

	return entity.NewPrincipal(identity), nil
}

// Me returns the caller's own identity.
func (srv *authService) Me(ctx context.Context, principal *entity.Principal) (*entity.Identity, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	identity, err := srv.identityRepo.FindByID(ctx, principal.ID)

	return identity, storeError(err, repository.ErrIdentityNotFound, domainerrors.ErrIdentityNotFound, "failed to load identity")
}

// ChangePassword verifies the current password and stores the new one.
func (srv *authService) ChangePassword(ctx context.Context, principal *entity.Principal, input *usecase.ChangePasswordInput) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	identity, err := srv.identityRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return storeError(err, repository.ErrIdentityNotFound, domainerrors.ErrIdentityNotFound, "failed to load identity")
	}

	if !srv.hasher.Check(input.CurrentPassword, identity.PasswordHash) {
		return domainerrors.ErrCurrentPasswordIncorrect
	}

	identity.SetPassword(input.NewPassword)
	identity.MustChangePassword = false

	if err := srv.identityRepo.Update(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("identity_id", identity.ID.String()))

	return nil
}
