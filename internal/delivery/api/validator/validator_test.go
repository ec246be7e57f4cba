package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,maxbytes=72"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Password: "secret1"}))

	err := v.Validate(&sample{Email: "a@b.com"})
	assert.Error(t, err)
	assert.True(t, HasMissingField(err))

	err = v.Validate(&sample{Email: "not-an-email", Password: "secret1"})
	assert.Error(t, err)
	assert.False(t, HasMissingField(err))

	assert.False(t, HasMissingField(nil))
}

func TestCustomValidator_MaxBytes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Password: strings.Repeat("a", 72)}))
	assert.NoError(t, v.Validate(&sample{Email: "a@b.com", Password: strings.Repeat("é", 36)}))

	err := v.Validate(&sample{Email: "a@b.com", Password: strings.Repeat("a", 73)})
	assert.Error(t, err)
	assert.False(t, HasMissingField(err))

	// Within 72 characters but 80 bytes.
	err = v.Validate(&sample{Email: "a@b.com", Password: strings.Repeat("é", 40)})
	assert.Error(t, err)
	assert.False(t, HasMissingField(err))
}
