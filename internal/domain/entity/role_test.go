package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{" mr ", RoleMR, true},
		{"manager", RoleManager, true},
		{"root", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, Role("aDmIn").IsAdmin())
	assert.False(t, RoleManager.IsAdmin())
	assert.True(t, Role("mr").IsValid())
	assert.False(t, Role("superuser").IsValid())
}

func TestNewPrincipal(t *testing.T) {
	id := uuid.New()

	p := NewPrincipal(&Identity{ID: id, Role: "admin", Name: "Asha", Email: "asha@example.com", Territory: "North"})
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, RoleAdmin, p.Role)
	assert.Equal(t, "North", p.Territory)
	assert.True(t, p.IsAdmin())

	unknown := NewPrincipal(&Identity{ID: id, Role: "owner"})
	assert.Equal(t, RoleMR, unknown.Role)
	assert.False(t, unknown.IsAdmin())

	assert.Nil(t, NewPrincipal(nil))

	var nobody *Principal
	assert.False(t, nobody.IsAdmin())
}

func TestFormatBusinessID(t *testing.T) {
	assert.Equal(t, "ORD000042", FormatBusinessID(SequenceOrder, 42))
	assert.Equal(t, "EMP000001", FormatBusinessID(SequenceEmployee, 1))
	assert.Equal(t, "VIS1234567", FormatBusinessID(SequenceVisit, 1234567))
}

func TestIdentity_PendingPassword(t *testing.T) {
	identity := &Identity{}

	_, ok := identity.PendingPassword()
	assert.False(t, ok)

	identity.SetPassword("s3cret-pass")
	plain, ok := identity.PendingPassword()
	assert.True(t, ok)
	assert.Equal(t, "s3cret-pass", plain)

	identity.ClearPendingPassword()
	_, ok = identity.PendingPassword()
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "mr.one@example.com", NormalizeEmail("  MR.One@Example.COM "))
}
