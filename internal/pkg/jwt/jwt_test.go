package jwt

import (
	"context"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService(t *testing.T) Service {
	svc, err := NewJWTService(testSecret, "1h", "24h", false)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService(testSecret, "soon", "24h", false)
	assert.Error(t, err)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService(t)

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "hr@giu.edu", user.RoleHRManager)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "hr@giu.edu", claims["email"])
	assert.Equal(t, "hr_manager", claims["role"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestStreamToken_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	tokenString, expiresIn, err := svc.GenerateStreamToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateStreamToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestStreamToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService(t)

	access, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(access)
	assert.Error(t, err)
}

func TestStreamToken_RejectsForeignSignature(t *testing.T) {
	other, err := NewJWTService("another-secret", "1h", "24h", false)
	require.NoError(t, err)
	tokenString, _, err := other.GenerateStreamToken("user-1")
	require.NoError(t, err)

	_, err = newTestService(t).ValidateStreamToken(tokenString)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService(t)
	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService(t)
	cookie := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)

	cleared := svc.ClearRefreshTokenCookie()
	assert.Equal(t, -1, cleared.MaxAge)
}
