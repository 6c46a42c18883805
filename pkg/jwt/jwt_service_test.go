package jwt

import (
	"testing"
	"time"

	"FreshStock-Backend/domain"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return NewJWTService()
}

func TestTokenRoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTamperedTokenRejected(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = service.GetUserIDByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := newTestService(t)

	claims := jwtUserClaim{
		"user-123",
		gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "FRESHSTOCK",
		},
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.GetUserIDByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestWrongSigningMethodRejected(t *testing.T) {
	service := newTestService(t)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
		"user_id": "user-123",
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.GetUserIDByToken(unsigned)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
