package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHMACService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "assessment-service",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestJWTService_GenerateAndValidate_HMAC(t *testing.T) {
	svc := newHMACService(t)

	userID := uuid.New()
	tenantID := uuid.New()

	token, err := svc.GenerateToken(userID, tenantID, []string{RoleAnalyst, RoleReviewer})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.True(t, claims.HasRole(RoleAnalyst))
	assert.True(t, claims.HasRole(RoleReviewer))
	assert.False(t, claims.HasRole(RoleApprover))
}

func TestJWTService_GenerateAndValidate_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{
		PrivateKeyPEM: string(privPEM),
		Issuer:        "assessment-service",
		Expiration:    time.Hour,
	})
	require.NoError(t, err)

	validator, err := NewJWTService(JWTConfig{
		PublicKeyPEM: string(pubPEM),
		Issuer:       "assessment-service",
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), uuid.New(), []string{RoleApprover})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.HasRole(RoleApprover))

	// Validation-only mode must refuse to sign.
	_, err = validator.GenerateToken(uuid.New(), uuid.New(), nil)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newHMACService(t)

	token, err := svc.GenerateToken(uuid.New(), uuid.New(), []string{RoleAnalyst})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	other, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key",
		Issuer:     "some-other-service",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	svc := newHMACService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
