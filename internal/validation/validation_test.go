package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	FullName string `json:"fullName" validate:"min=2"`
	Email    string `json:"email" validate:"required,email"`
	Pin      string `json:"pin,omitempty" validate:"omitempty,len=6,numeric"`
}

func TestDetails(t *testing.T) {
	v := New()

	err := v.Struct(form{FullName: "A", Email: "nope", Pin: "12ab56"})
	require.Error(t, err)

	got := Details(fmt.Errorf("wrapped: %w", err))
	assert.Equal(t, map[string]string{
		"fullName": "Must be at least 2 characters",
		"email":    "Invalid email address",
		"pin":      "Must contain digits only",
	}, got)
}

func TestDetails_Valid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(form{FullName: "Ada", Email: "ada@example.com"}))
	assert.Nil(t, Details(errors.New("plain")))
	assert.Nil(t, Details(nil))
}
