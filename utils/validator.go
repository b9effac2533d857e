package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Validator hook.
// Violations are reported under the json field names clients actually sent.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldViolation is one entry of the structured validation detail returned
// with a 400: which field, which constraint, and the kind of value received.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Received   string `json:"received"`
}

// ValidationDetails flattens a validator error into field-level violations.
// Non-validator errors yield a single entry carrying the raw message.
func ValidationDetails(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldViolation{{Constraint: err.Error()}}
	}
	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		out = append(out, FieldViolation{
			Field:      fe.Field(),
			Constraint: constraint,
			Received:   fe.Kind().String(),
		})
	}
	return out
}
