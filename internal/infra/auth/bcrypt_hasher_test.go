package auth

import (
	"strings"
	"testing"

	"partnerdash/config"
	domainerrors "partnerdash/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_Salted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_MalformedVerifier(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, verifier := range []string{"", "not-a-hash", "$2a$10$short", strings.Repeat("x", 60)} {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("secret1", verifier))
		})
	}
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	// Out of range costs are clamped rather than failing at hash time.
	clamped := NewBcryptHasherWithCost(1).(*bcryptHasher)
	assert.Equal(t, bcrypt.MinCost, clamped.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Run("no policy accepts anything", func(t *testing.T) {
		hasher := NewBcryptHasher(&config.Config{})
		assert.NoError(t, hasher.ValidatePasswordStrength("secret1"))
	})

	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	assert.NoError(t, hasher.ValidatePasswordStrength("StrongPass123!"))

	weakPasswords := []string{
		"Ab1!",         // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password123",  // No special characters
	}
	for _, weak := range weakPasswords {
		err := hasher.ValidatePasswordStrength(weak)
		require.Error(t, err, weak)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), weak)
		assert.Equal(t, 400, appErr.HTTPCode())
	}
}
