package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
)

func TestAchievementService_UnlockAndList(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAchievementService(memstore.NewAchievementStore(), logger)
	ctx := context.Background()

	first, err := svc.Unlock(ctx, 1, "streak", "First Steps", "Study for one day", "flame")
	require.NoError(t, err)
	assert.Positive(t, first.ID)

	_, err = svc.Unlock(ctx, 1, "mastery", "Scholar", "Master ten words", "book")
	require.NoError(t, err)

	unlocks, err := svc.UserAchievements(ctx, 1)
	require.NoError(t, err)
	require.Len(t, unlocks, 2)

	other, err := svc.UserAchievements(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAchievementService_RejectsInvalid(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAchievementService(memstore.NewAchievementStore(), logger)

	_, err := svc.Unlock(context.Background(), 1, "", "First Steps", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Unlock(context.Background(), 1, "streak", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
