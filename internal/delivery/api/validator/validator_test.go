package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `validate:"required,email"`
	Code  string `validate:"omitempty,len=6,numeric"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(sample{Email: "a@example.com"}))
	assert.NoError(t, v.Validate(sample{Email: "a@example.com", Code: "123456"}))

	err := v.Validate(sample{Email: "nope", Code: "12"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
