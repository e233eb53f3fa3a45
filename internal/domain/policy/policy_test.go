package policy

import (
	"testing"

	"medrep/internal/domain/entity"
	domainerrors "medrep/internal/domain/errors"
	"medrep/internal/domain/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrincipal(role entity.Role) *entity.Principal {
	return &entity.Principal{ID: uuid.New(), Role: role}
}

func TestAuthorize_NoPrincipal(t *testing.T) {
	d := Authorize(nil, KindMRRequest, OpCreate, nil)
	assert.True(t, d.Allowed())
	assert.False(t, d.Scope.Restricted)

	d = Authorize(nil, KindVisitReport, OpList, nil)
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonUnauthenticated, d.Reason)
	assert.ErrorIs(t, d.Err(), domainerrors.ErrUnauthenticated)
}

func TestAuthorize_AdminAllowedEverywhere(t *testing.T) {
	for _, role := range []entity.Role{"Admin", "admin", "ADMIN"} {
		admin := newPrincipal(role)
		for kind := range rules {
			for _, op := range []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete, OpApprove, OpReject, OpAssign, OpCancel, OpTransition, OpAggregate, OpOverview} {
				d := Authorize(admin, kind, op, OwnedBy(uuid.New(), "Approved"))
				require.True(t, d.Allowed(), "role %s kind %s op %s", role, kind, op)
				assert.Equal(t, query.Unrestricted(), d.Scope)
			}
		}
	}
}

func TestAuthorize_AdminOnlyOperations(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)
	own := OwnedBy(mr.ID, "Draft")

	cases := []struct {
		kind Kind
		op   Operation
	}{
		{KindIdentity, OpList},
		{KindIdentity, OpCreate},
		{KindIdentity, OpDelete},
		{KindDoctor, OpDelete},
		{KindDoctor, OpAssign},
		{KindProduct, OpCreate},
		{KindProduct, OpUpdate},
		{KindProduct, OpDelete},
		{KindVisitReport, OpApprove},
		{KindVisitReport, OpReject},
		{KindOrder, OpTransition},
		{KindMRTarget, OpCreate},
		{KindMRPerformance, OpUpdate},
		{KindMRPerformance, OpTransition},
		{KindMRRequest, OpList},
		{KindMRRequest, OpApprove},
		{KindDashboard, OpOverview},
	}

	for _, tc := range cases {
		d := Authorize(mr, tc.kind, tc.op, own)
		assert.False(t, d.Allowed(), "kind %s op %s", tc.kind, tc.op)
		assert.Equal(t, ReasonForbidden, d.Reason)
		assert.ErrorIs(t, d.Err(), domainerrors.ErrForbidden)
	}
}

func TestAuthorize_ManagerGetsMRRules(t *testing.T) {
	manager := newPrincipal(entity.RoleManager)

	d := Authorize(manager, KindVisitReport, OpApprove, nil)
	assert.False(t, d.Allowed())

	d = Authorize(manager, KindVisitReport, OpList, nil)
	require.True(t, d.Allowed())
	assert.Equal(t, query.OwnedBy(manager.ID), d.Scope)
}

func TestAuthorize_ListScopedToSelf(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	for _, kind := range []Kind{KindDoctor, KindVisitReport, KindOrder, KindMRTarget, KindMRPerformance, KindProductActivity} {
		d := Authorize(mr, kind, OpList, nil)
		require.True(t, d.Allowed(), kind)
		assert.True(t, d.Scope.Restricted)
		assert.Equal(t, mr.ID, d.Scope.OwnerID)
	}

	d := Authorize(mr, KindProductActivity, OpAggregate, nil)
	require.True(t, d.Allowed())
	assert.Equal(t, query.OwnedBy(mr.ID), d.Scope)
}

func TestAuthorize_ProductReadableByAnyone(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	d := Authorize(mr, KindProduct, OpList, nil)
	require.True(t, d.Allowed())
	assert.False(t, d.Scope.Restricted)

	d = Authorize(mr, KindProduct, OpRead, nil)
	assert.True(t, d.Allowed())
}

func TestAuthorize_ReadRequiresOwnership(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	d := Authorize(mr, KindOrder, OpRead, OwnedBy(mr.ID, "Shipped"))
	assert.True(t, d.Allowed())

	d = Authorize(mr, KindOrder, OpRead, OwnedBy(uuid.New(), "Pending"))
	assert.False(t, d.Allowed())
	assert.Equal(t, ReasonForbidden, d.Reason)

	d = Authorize(mr, KindOrder, OpRead, nil)
	assert.False(t, d.Allowed())
}

func TestAuthorize_DoctorOwnedThroughAssignments(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)
	target := &Target{Owners: []uuid.UUID{uuid.New(), mr.ID}}

	assert.True(t, Authorize(mr, KindDoctor, OpRead, target).Allowed())
	assert.True(t, Authorize(mr, KindDoctor, OpUpdate, target).Allowed())
	assert.False(t, Authorize(mr, KindDoctor, OpUpdate, &Target{Owners: []uuid.UUID{uuid.New()}}).Allowed())
}

func TestAuthorize_MutableStates(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	cases := []struct {
		name    string
		kind    Kind
		op      Operation
		state   string
		allowed bool
	}{
		{"visit draft update", KindVisitReport, OpUpdate, "Draft", true},
		{"visit submitted delete", KindVisitReport, OpDelete, "Submitted", true},
		{"visit approved update", KindVisitReport, OpUpdate, "Approved", false},
		{"visit rejected delete", KindVisitReport, OpDelete, "Rejected", false},
		{"order pending cancel", KindOrder, OpCancel, "Pending", true},
		{"order confirmed update", KindOrder, OpUpdate, "Confirmed", true},
		{"order shipped cancel", KindOrder, OpCancel, "Shipped", false},
		{"order delivered delete", KindOrder, OpDelete, "Delivered", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(mr, tc.kind, tc.op, OwnedBy(mr.ID, tc.state))
			assert.Equal(t, tc.allowed, d.Allowed())
			if !tc.allowed {
				assert.Equal(t, ReasonInvalidState, d.Reason)
				assert.ErrorIs(t, d.Err(), domainerrors.ErrInvalidState)
			}
		})
	}
}

func TestAuthorize_NonOwnerCheckedBeforeState(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	d := Authorize(mr, KindVisitReport, OpUpdate, OwnedBy(uuid.New(), "Approved"))
	assert.Equal(t, ReasonForbidden, d.Reason)
}

func TestAuthorize_CreateForcesOwner(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	d := Authorize(mr, KindOrder, OpCreate, nil)
	require.True(t, d.Allowed())
	assert.Equal(t, mr.ID, d.Owner)

	assert.Equal(t, mr.ID, ResolveOwner(mr, d, uuid.New()))
}

func TestResolveOwner_Admin(t *testing.T) {
	admin := newPrincipal(entity.RoleAdmin)
	d := Authorize(admin, KindOrder, OpCreate, nil)

	other := uuid.New()
	assert.Equal(t, other, ResolveOwner(admin, d, other))
	assert.Equal(t, admin.ID, ResolveOwner(admin, d, uuid.Nil))
}

func TestAuthorize_UnknownKind(t *testing.T) {
	mr := newPrincipal(entity.RoleMR)

	d := Authorize(mr, Kind("invoice"), OpList, nil)
	assert.False(t, d.Allowed())
}
