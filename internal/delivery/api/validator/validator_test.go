package validator

import (
	"testing"

	domainerrors "medrep/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineInput struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type sampleInput struct {
	Email string      `json:"email" validate:"required,email"`
	Name  string      `json:"name" validate:"min=2,max=5"`
	Kind  string      `json:"kind" validate:"omitempty,oneof=Draft Submitted"`
	Month int         `json:"month" validate:"required,period_month"`
	Items []lineInput `json:"items" validate:"min=1,dive"`
	Notes string      `json:"-" validate:"max=3"`
}

func TestRequestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{
		Email: "asha@example.com",
		Name:  "Asha",
		Kind:  "Draft",
		Month: 12,
		Items: []lineInput{{Quantity: 1}},
	})

	assert.NoError(t, err)
}

func TestRequestValidator_FieldMessages(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{
		Email: "not-an-email",
		Name:  "A",
		Kind:  "Unknown",
		Month: 13,
		Items: []lineInput{{Quantity: 0}},
		Notes: "too long",
	})
	require.Error(t, err)

	verr, ok := err.(*domainerrors.ValidationError)
	require.True(t, ok)

	got := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		got[f.Field] = f.Message
	}

	assert.Equal(t, "must be a valid email address", got["email"])
	assert.Equal(t, "must be at least 2 characters", got["name"])
	assert.Equal(t, "must be one of Draft, Submitted", got["kind"])
	assert.Equal(t, "must be a month between 1 and 12", got["month"])
	assert.Equal(t, "must be greater than 0", got["items[0].quantity"])
	assert.Equal(t, "must be at most 3 characters", got["Notes"])
}

func TestRequestValidator_EmptySlice(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{
		Email: "asha@example.com",
		Name:  "Asha",
		Month: 1,
	})
	require.Error(t, err)

	verr, ok := err.(*domainerrors.ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, domainerrors.FieldError{Field: "items", Message: "must contain at least 1 item(s)"}, verr.Fields[0])
}
