// Package policy decides who may see or change which records.
// Every handler calls Authorize; no other code compares roles or owners.
package policy

import (
	"slices"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
)

// Kind is a resource kind.
type Kind string

const (
	KindIdentity        Kind = "identity"
	KindDoctor          Kind = "doctor"
	KindProduct         Kind = "product"
	KindVisitReport     Kind = "visit_report"
	KindOrder           Kind = "order"
	KindMRTarget        Kind = "mr_target"
	KindMRPerformance   Kind = "mr_performance"
	KindProductActivity Kind = "product_activity"
	KindMRRequest       Kind = "mr_request"
	KindDashboard       Kind = "dashboard"
)

// Operation is an action on a resource.
type Operation string

const (
	OpList       Operation = "list"
	OpRead       Operation = "read"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpApprove    Operation = "approve"
	OpReject     Operation = "reject"
	OpAssign     Operation = "assign"
	OpCancel     Operation = "cancel"
	OpTransition Operation = "transition"
	OpAggregate  Operation = "aggregate"
	OpOverview   Operation = "overview"
)

// Effect is the outcome of a decision.
type Effect int

const (
	Deny Effect = iota
	Allow
)

// Reason explains a denial.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
	ReasonInvalidState    Reason = "invalid_state"
)

// Target describes the existing record an operation acts on.
type Target struct {
	// Owners are the identities that own the record. Most kinds have one.
	Owners []uuid.UUID
	// State is the current status for state-machine resources.
	State string
}

// OwnedBy builds a single-owner target.
func OwnedBy(owner uuid.UUID, state string) *Target {
	return &Target{Owners: []uuid.UUID{owner}, State: state}
}

// Decision is the result of Authorize.
type Decision struct {
	Effect Effect
	Reason Reason
	// Scope must be merged into every list or aggregate query.
	Scope query.Scope
	// Owner is the forced owner of a record created by a non-admin caller.
	Owner uuid.UUID
}

// Allowed reports whether the decision permits the operation.
func (d Decision) Allowed() bool {
	return d.Effect == Allow
}

// Err maps a denial to its domain error. It returns nil for allowed decisions.
func (d Decision) Err() error {
	if d.Allowed() {
		return nil
	}

	switch d.Reason {
	case ReasonUnauthenticated:
		return domainerrors.ErrUnauthenticated
	case ReasonInvalidState:
		return domainerrors.ErrInvalidState
	default:
		return domainerrors.ErrForbidden
	}
}

type rule struct {
	// owned kinds restrict non-admin callers to their own records
	owned     bool
	adminOnly []Operation
	public    []Operation
	// mutable lists states in which owners may update, delete or cancel; empty means any
	mutable []string
}

var rules = map[Kind]rule{
	KindIdentity: {
		owned:     true,
		adminOnly: []Operation{OpList, OpCreate, OpDelete, OpAssign},
	},
	KindDoctor: {
		owned:     true,
		adminOnly: []Operation{OpDelete, OpAssign},
	},
	KindProduct: {
		adminOnly: []Operation{OpCreate, OpUpdate, OpDelete},
	},
	KindVisitReport: {
		owned:     true,
		adminOnly: []Operation{OpApprove, OpReject},
		mutable:   entity.VisitMutableStatuses,
	},
	KindOrder: {
		owned:     true,
		adminOnly: []Operation{OpTransition},
		mutable:   entity.OrderMutableStatuses,
	},
	KindMRTarget: {
		owned:     true,
		adminOnly: []Operation{OpCreate, OpUpdate, OpDelete},
	},
	KindMRPerformance: {
		owned:     true,
		adminOnly: []Operation{OpCreate, OpUpdate, OpDelete, OpTransition},
	},
	KindProductActivity: {
		owned:     true,
		adminOnly: []Operation{OpUpdate, OpDelete},
	},
	KindMRRequest: {
		public:    []Operation{OpCreate},
		adminOnly: []Operation{OpList, OpRead, OpUpdate, OpDelete, OpApprove, OpReject},
	},
	KindDashboard: {
		owned:     true,
		adminOnly: []Operation{OpOverview},
	},
}

// Authorize evaluates the policy for one operation.
// target is required for read, update, delete and cancel on owned kinds; it is ignored otherwise.
func Authorize(principal *entity.Principal, kind Kind, op Operation, target *Target) Decision {
	r, known := rules[kind]

	if principal == nil {
		if known && slices.Contains(r.public, op) {
			return allow(query.Unrestricted())
		}

		return deny(ReasonUnauthenticated)
	}

	if principal.IsAdmin() {
		return allow(query.Unrestricted())
	}

	if !known || slices.Contains(r.adminOnly, op) {
		return deny(ReasonForbidden)
	}

	if slices.Contains(r.public, op) {
		return allow(query.Unrestricted())
	}

	if !r.owned {
		// ownerless kinds only reach here for reads
		if op == OpList || op == OpRead {
			return allow(query.Unrestricted())
		}

		return deny(ReasonForbidden)
	}

	self := principal.ID

	switch op {
	case OpList, OpAggregate:
		return allow(query.OwnedBy(self))

	case OpCreate:
		d := allow(query.OwnedBy(self))
		d.Owner = self

		return d

	case OpRead:
		if !ownedBy(target, self) {
			return deny(ReasonForbidden)
		}

		return allow(query.OwnedBy(self))

	case OpUpdate, OpDelete, OpCancel:
		if !ownedBy(target, self) {
			return deny(ReasonForbidden)
		}
		if len(r.mutable) > 0 && !slices.Contains(r.mutable, target.State) {
			return deny(ReasonInvalidState)
		}

		return allow(query.OwnedBy(self))

	default:
		return deny(ReasonForbidden)
	}
}

// ResolveOwner returns the owner a new record must carry.
// Admins may create on behalf of anyone and default to themselves; everyone else always owns what they create.
func ResolveOwner(principal *entity.Principal, decision Decision, requested uuid.UUID) uuid.UUID {
	if principal.IsAdmin() {
		if requested == uuid.Nil {
			return principal.ID
		}

		return requested
	}

	if decision.Owner != uuid.Nil {
		return decision.Owner
	}

	return principal.ID
}

func allow(scope query.Scope) Decision {
	return Decision{Effect: Allow, Scope: scope}
}

func deny(reason Reason) Decision {
	return Decision{Effect: Deny, Reason: reason}
}

func ownedBy(target *Target, id uuid.UUID) bool {
	return target != nil && slices.Contains(target.Owners, id)
}
