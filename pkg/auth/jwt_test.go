package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewTokenService(Config{Secret: "test-secret", ExpiryHours: 1})

	userID := uuid.New()
	token, tokenID, err := svc.Generate(userID, "admin@medicalcenter.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@medicalcenter.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService(Config{Secret: "secret-a", ExpiryHours: 1})
	verifier := NewTokenService(Config{Secret: "secret-b", ExpiryHours: 1})

	token, _, err := issuer.Generate(uuid.New(), "a@b.com", "doctor")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService(Config{Secret: "test-secret", ExpiryHours: 1})

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiryDefaultsTo24Hours(t *testing.T) {
	svc := NewTokenService(Config{Secret: "test-secret"})
	assert.Equal(t, 24*time.Hour, svc.Expiry())

	svc = NewTokenService(Config{Secret: "test-secret", ExpiryHours: 2})
	assert.Equal(t, 2*time.Hour, svc.Expiry())
}
