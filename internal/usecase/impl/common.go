// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"medrep/config"
	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/policy"
	"medrep/internal/domain/query"
	"medrep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authorize evaluates the policy and returns the denial as a domain error.
func authorize(principal *entity.Principal, kind policy.Kind, op policy.Operation, target *policy.Target) (policy.Decision, error) {
	decision := policy.Authorize(principal, kind, op, target)

	return decision, decision.Err()
}

// stripRestricted drops fields the caller may not set and logs what was dropped.
func stripRestricted(ctx context.Context, logger *slog.Logger, principal *entity.Principal, payload any) {
	dropped := policy.StripRestricted(principal, payload)
	if len(dropped) > 0 {
		logger.DebugContext(ctx, "Dropped restricted fields",
			slog.Any("fields", dropped),
			slog.String("principal_id", principal.ID.String()),
		)
	}
}

// storeError maps a repository lookup sentinel to its domain error.
// Domain errors pass through; anything else is an unexpected store failure.
func storeError(err, notFound error, mapped error, op string) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, notFound) {
		return mapped
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, op)
}

func newQueryBuilder(cfg *config.Config) *query.Builder {
	if cfg == nil || cfg.Pagination == nil {
		return query.NewBuilder(0, 0)
	}

	return query.NewBuilder(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)
}

// utcNow is replaced in tests.
var utcNow = func() time.Time {
	return time.Now().UTC()
}

// referenceError reports a missing referenced record as a bad request.
func referenceError(err, notFound error, field string) error {
	if errors.Is(err, notFound) {
		return domainerrors.ErrInvalidReference.WithDetails(field + " does not exist")
	}

	return storeError(err, nil, nil, "failed to load "+field)
}

// loadReportableDoctor resolves the doctor a report refers to.
// MRs may only report against doctors they are assigned to.
func loadReportableDoctor(ctx context.Context, doctorRepo repository.DoctorRepository, principal *entity.Principal, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, referenceError(err, repository.ErrDoctorNotFound, "doctor")
	}

	if _, err := authorize(principal, policy.KindDoctor, policy.OpRead, doctorTarget(doctor)); err != nil {
		if errors.Is(err, domainerrors.ErrForbidden) {
			return nil, domainerrors.ErrForbidden.WithDetails("Doctor is not assigned to you")
		}

		return nil, err
	}

	return doctor, nil
}

// staleError reports a lost compare-and-swap.
func staleError(err, notFound error, mapped error, op string) error {
	if errors.Is(err, repository.ErrStaleState) {
		return domainerrors.ErrInvalidState.WithDetails("The record was changed by someone else, reload and try again")
	}

	return storeError(err, notFound, mapped, op)
}

// resolveOwner picks the owner of a new record and checks that an admin-chosen owner exists.
func resolveOwner(ctx context.Context, identityRepo repository.IdentityRepository, principal *entity.Principal, decision policy.Decision, requested uuid.UUID) (uuid.UUID, error) {
	owner := policy.ResolveOwner(principal, decision, requested)
	if owner == principal.ID {
		return owner, nil
	}

	if _, err := identityRepo.FindByID(ctx, owner); err != nil {
		return uuid.Nil, referenceError(err, repository.ErrIdentityNotFound, "mr")
	}

	return owner, nil
}
