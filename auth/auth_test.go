package auth

import (
	"testing"
	"time"

	"slingshot/errors"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-key", 24*time.Hour)

	token, err := manager.Generate("user-123", []string{"user", "admin"})
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := manager.Validate(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)
	req.Equal([]string{"user", "admin"}, claims.Roles)
	req.Equal("slingshot", claims.Issuer)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-key", -1*time.Minute)

	token, err := manager.Generate("user-123", []string{"user"})
	req.NoError(err)

	_, err = manager.Validate(token)
	req.Error(err)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("secret-a", 24*time.Hour)
	other := NewTokenManager("secret-b", 24*time.Hour)

	token, err := manager.Generate("user-123", []string{"user"})
	req.NoError(err)

	_, err = other.Validate(token)
	req.Error(err)
}

func TestHashPassword_CompareRoundtrip(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("Sup3rSecret!Pass")
	req.NoError(err)
	req.Contains(hash, "$argon2id$")

	match, err := ComparePassword("Sup3rSecret!Pass", hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword1!", hash)
	req.NoError(err)
	req.False(match)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("Sup3rSecret!Pass")
	req.NoError(err)
	second, err := HashPassword("Sup3rSecret!Pass")
	req.NoError(err)
	req.NotEqual(first, second)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-an-encoded-hash")
	req.Error(err)
}

func TestValidateRegister(t *testing.T) {
	t.Run("should accept a complex password and valid email", func(t *testing.T) {
		req := require.New(t)
		err := ValidateRegister(RegisterRequest{Email: "user@example.com", Password: "ComplexPass123!"})
		req.NoError(err)
	})

	t.Run("should reject an invalid email", func(t *testing.T) {
		req := require.New(t)
		err := ValidateRegister(RegisterRequest{Email: "not-an-email", Password: "ComplexPass123!"})
		req.Error(err)
	})

	t.Run("should reject a short password", func(t *testing.T) {
		req := require.New(t)
		err := ValidateRegister(RegisterRequest{Email: "user@example.com", Password: "Short1!"})
		req.Error(err)
	})

	t.Run("should reject a long but simple password", func(t *testing.T) {
		req := require.New(t)
		err := ValidateRegister(RegisterRequest{Email: "user@example.com", Password: "alllowercasenodigits"})
		req.ErrorIs(err, errors.ErrInvalidPassword)
	})
}
