package auth

import (
	"testing"
	"time"

	"civicradar/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	return &config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}}
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateToken_Success(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":   userID.String(),
		"type":  "access",
		"roles": []string{"citizen"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	}, testSecret)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"citizen"}, claims.Roles)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New().String()
	future := time.Now().Add(time.Minute).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: signToken(t, jwt.MapClaims{"sub": userID, "exp": future}, "another-secret")},
		{name: "expired", token: signToken(t, jwt.MapClaims{"sub": userID, "exp": time.Now().Add(-time.Minute).Unix()}, testSecret)},
		{name: "no expiry", token: signToken(t, jwt.MapClaims{"sub": userID}, testSecret)},
		{name: "refresh token", token: signToken(t, jwt.MapClaims{"sub": userID, "type": "refresh", "exp": future}, testSecret)},
		{name: "subject not uuid", token: signToken(t, jwt.MapClaims{"sub": "alice", "exp": future}, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
