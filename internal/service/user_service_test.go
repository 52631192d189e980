package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
	"github.com/phrazzld/nihongo-api/internal/service/auth"
	"github.com/phrazzld/nihongo-api/internal/store"
)

func newUserService(t *testing.T) (UserService, *memstore.UserStore) {
	t.Helper()
	users := memstore.NewUserStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserService(users, auth.NewBcryptHasher(4), logger), users
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	svc, users := newUserService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.HashedPassword)
	assert.NotEmpty(t, stored.HashedPassword)
}

func TestRegister_RejectsBadInput(t *testing.T) {
	t.Parallel()
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, "alice", "not-an-email", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown email and wrong password are indistinguishable")
}

func TestAwardPoints(t *testing.T) {
	t.Parallel()
	svc, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	user, err := svc.AwardPoints(ctx, created.ID, 75)
	require.NoError(t, err)
	assert.Equal(t, 75, user.TotalPoints)

	_, err = svc.AwardPoints(ctx, created.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStreak(t *testing.T) {
	t.Parallel()
	users := memstore.NewUserStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewUserService(users, auth.NewBcryptHasher(4), logger).(*userService)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)

	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }
	user, err := svc.UpdateStreak(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, user.StreakDays, "first study day starts the streak at 1")

	// Same day again: no change.
	svc.now = func() time.Time { return day1.Add(6 * time.Hour) }
	user, err = svc.UpdateStreak(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, user.StreakDays)

	// Next day extends.
	svc.now = func() time.Time { return day1.Add(24 * time.Hour) }
	user, err = svc.UpdateStreak(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, user.StreakDays)

	// A three-day gap resets.
	svc.now = func() time.Time { return day1.Add(4 * 24 * time.Hour) }
	user, err = svc.UpdateStreak(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, user.StreakDays)
}
