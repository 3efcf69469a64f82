//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"doctors-portal/internal/pkg/clock"
	"doctors-portal/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-token-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour, clock.NewRealClock())

	token, err := svc.GenerateToken("patient@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient@example.com", claims.Email)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour, clock.NewRealClock())

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", time.Hour, clock.NewRealClock())
		token, err := other.GenerateToken("patient@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestValidateToken_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc := jwt.NewService(testSecret, time.Hour, clock.NewMockClock(issuedAt))

	token, err := svc.GenerateToken("patient@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
