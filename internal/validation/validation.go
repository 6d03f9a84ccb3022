package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator checks inbound payloads against the validate tags declared on
// the models. One shared instance serves every handler.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Check validates v and returns nil when it conforms. On failure it returns
// one entry per violated field, so a payload missing three fields reports
// all three at once rather than failing on the first.
func (v *Validator) Check(payload interface{}) map[string]string {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": err.Error()}
	}

	problems := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		problems[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return problems
}
