package query

import (
	"testing"
	"time"

	domainerrors "medrep/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = Spec{
	Filters: map[string]Filter{
		"status": {Column: "status", Allowed: []string{"Draft", "Submitted", "Approved", "Rejected"}},
		"doctor": {Column: "doctor_id", Kind: KindUUID},
		"active": {Column: "is_active", Kind: KindBool},
		"month":  {Column: "month", Kind: KindInt},
	},
	SearchFields: []string{"purpose", "notes"},
	DateColumn:   "visit_date",
	SortColumns:  map[string]string{"visitDate": "visit_date", "createdAt": "created_at"},
	DefaultSort:  "visit_date DESC",
}

func TestBuild_RestrictedScopeIgnoresOwnerParam(t *testing.T) {
	self := uuid.New()

	criteria, err := Build(OwnedBy(self), testSpec, Params{Owner: uuid.New().String()})

	require.NoError(t, err)
	require.NotNil(t, criteria.OwnerID)
	assert.Equal(t, self, *criteria.OwnerID)
}

func TestBuild_RestrictedScopeIgnoresMalformedOwnerParam(t *testing.T) {
	self := uuid.New()

	criteria, err := Build(OwnedBy(self), testSpec, Params{Owner: "not-a-uuid"})

	require.NoError(t, err)
	assert.Equal(t, self, *criteria.OwnerID)
}

func TestBuild_UnrestrictedOwnerParamNarrows(t *testing.T) {
	owner := uuid.New()

	criteria, err := Build(Unrestricted(), testSpec, Params{Owner: owner.String()})
	require.NoError(t, err)
	require.NotNil(t, criteria.OwnerID)
	assert.Equal(t, owner, *criteria.OwnerID)

	criteria, err = Build(Unrestricted(), testSpec, Params{})
	require.NoError(t, err)
	assert.Nil(t, criteria.OwnerID)
}

func TestBuild_FiltersAndSearchAreANDed(t *testing.T) {
	doctor := uuid.New()

	criteria, err := Build(OwnedBy(uuid.New()), testSpec, Params{
		Search: "  cardio  ",
		Filters: map[string]string{
			"status":  "approved",
			"doctor":  doctor.String(),
			"unknown": "ignored",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, criteria.Search)
	assert.Equal(t, "cardio", criteria.Search.Term)
	assert.Equal(t, []string{"purpose", "notes"}, criteria.Search.Fields)
	assert.Equal(t, []Condition{
		{Field: "doctor_id", Op: OpEq, Value: doctor},
		{Field: "status", Op: OpEq, Value: "Approved"},
	}, criteria.Conditions)
}

func TestBuild_MultiValueFilter(t *testing.T) {
	criteria, err := Build(Unrestricted(), testSpec, Params{Filters: map[string]string{"status": "Draft, Submitted"}})

	require.NoError(t, err)
	require.Len(t, criteria.Conditions, 1)
	assert.Equal(t, OpIn, criteria.Conditions[0].Op)
	assert.Equal(t, []any{"Draft", "Submitted"}, criteria.Conditions[0].Value)
}

func TestBuild_DateRange(t *testing.T) {
	criteria, err := Build(Unrestricted(), testSpec, Params{From: "2024-03-01", To: "2024-03-31"})

	require.NoError(t, err)
	require.Len(t, criteria.Conditions, 2)
	assert.Equal(t, Condition{Field: "visit_date", Op: OpGte, Value: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, criteria.Conditions[0])
	// date-only upper bounds include the whole day
	assert.Equal(t, Condition{Field: "visit_date", Op: OpLt, Value: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}, criteria.Conditions[1])
}

func TestBuild_CollectsEveryValidationError(t *testing.T) {
	_, err := Build(Unrestricted(), testSpec, Params{
		Owner:   "bad",
		From:    "yesterday",
		Filters: map[string]string{"doctor": "nope", "active": "maybe", "status": "Lost"},
	})

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"mr", "from", "doctor", "active", "status"}, fields)
}

func TestBuild_Pagination(t *testing.T) {
	b := NewBuilder(20, 100)

	criteria, err := b.Build(Unrestricted(), testSpec, Params{})
	require.NoError(t, err)
	assert.Equal(t, 1, criteria.Page)
	assert.Equal(t, 20, criteria.Limit)
	assert.Equal(t, 0, criteria.Offset())

	criteria, err = b.Build(Unrestricted(), testSpec, Params{Page: 3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, criteria.Limit)
	assert.Equal(t, 200, criteria.Offset())

	criteria, err = b.Build(Unrestricted(), testSpec, Params{Page: -2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, criteria.Page)
	assert.Equal(t, 5, criteria.Limit)
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(0, 0)
	assert.Equal(t, DefaultLimit, b.defaultLimit)
	assert.Equal(t, MaxLimit, b.maxLimit)

	b = NewBuilder(50, 10)
	assert.Equal(t, 10, b.defaultLimit)
}

func TestBuild_Sort(t *testing.T) {
	criteria, err := Build(Unrestricted(), testSpec, Params{Sort: "-createdAt"})
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", criteria.OrderBy)

	criteria, err = Build(Unrestricted(), testSpec, Params{Sort: "visitDate"})
	require.NoError(t, err)
	assert.Equal(t, "visit_date ASC", criteria.OrderBy)

	criteria, err = Build(Unrestricted(), testSpec, Params{Sort: "password"})
	require.NoError(t, err)
	assert.Equal(t, "visit_date DESC", criteria.OrderBy)
}

func TestNewPage(t *testing.T) {
	page := NewPage[int](nil, &Criteria{Page: 2, Limit: 20}, 41)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, Pagination{Page: 2, Limit: 20, Total: 41, Pages: 3}, page.Pagination)
}
