package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanadaily/arcana-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-long-enough-for-hmac",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	}
}

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), userID, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.Premium)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(context.Background(), userID, false)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.False(t, claims.Premium)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeMismatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	access, err := svc.GenerateToken(context.Background(), userID, false)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(context.Background(), userID, false)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.GenerateToken(context.Background(), uuid.New(), false)
	require.NoError(t, err)

	// Jump past the lifetime plus the allowed clock skew.
	svc.timeFunc = func() time.Time {
		return issued.Add(svc.tokenLifetime + svc.clockSkew + time.Minute)
	}
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestClockSkewTolerated(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.GenerateToken(context.Background(), uuid.New(), false)
	require.NoError(t, err)

	// Just past expiry but inside the skew window still validates.
	svc.timeFunc = func() time.Time {
		return issued.Add(svc.tokenLifetime + time.Minute)
	}
	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestGarbageAndForeignTokensRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret-also-long-enough-ok"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	foreign, err := other.GenerateToken(context.Background(), uuid.New(), false)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptVerifierRoundTrip(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier()
	hashed, err := v.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.NoError(t, v.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, v.Compare(hashed, "wrong password"))
}
