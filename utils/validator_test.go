package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	type payload struct {
		TitleEN string  `json:"title_en" validate:"required"`
		Price   float64 `json:"price" validate:"gte=0"`
	}

	v := NewRequestValidator()
	err := v.Validate(&payload{Price: -1})
	require.Error(t, err)

	details := ValidationDetails(err)
	require.Len(t, details, 2)
	assert.Equal(t, "title_en", details[0].Field)
	assert.Equal(t, "required", details[0].Constraint)
	assert.Equal(t, "price", details[1].Field)
	assert.Equal(t, "gte=0", details[1].Constraint)
	assert.Equal(t, "float64", details[1].Received)
}

func TestValidateAcceptsValidStruct(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	assert.NoError(t, NewRequestValidator().Validate(&payload{Name: "ok"}))
}

func TestValidationDetailsWithPlainError(t *testing.T) {
	details := ValidationDetails(errors.New("boom"))
	require.Len(t, details, 1)
	assert.Equal(t, "boom", details[0].Constraint)
}
