package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:          "0123456789abcdef0123456789abcdef",
		TokenLifetimeHours: 1,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.ValidateToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewJWTService(config.AuthConfig{
		JWTSecret:          "ffffffffffffffffffffffffffffffff",
		TokenLifetimeHours: 1,
	})
	require.NoError(t, err)
	token, err := other.GenerateToken(ctx, 7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token signed with a different secret")
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	t.Parallel()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)
	ctx := context.Background()

	issuedAt := time.Now().Add(-2 * time.Hour)
	impl.clock = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(ctx, 42)
	require.NoError(t, err)

	impl.clock = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestNewJWTService_ValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeHours: 1})
	assert.Error(t, err)

	cfg := testAuthConfig()
	cfg.TokenLifetimeHours = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()
	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast

	hashed, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.NoError(t, hasher.Compare(hashed, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hashed, "wrong password"))
}
