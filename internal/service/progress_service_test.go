package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/catalog"
	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/platform/memstore"
	"github.com/phrazzld/nihongo-api/internal/store"
)

type progressFixture struct {
	users    *memstore.UserStore
	words    *memstore.VocabularyStore
	progress *memstore.ProgressStore
	svc      ProgressService
	userID   int64
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	users := memstore.NewUserStore()
	words := memstore.NewVocabularyStore()
	progress := memstore.NewProgressStore()
	require.NoError(t, catalog.Load(ctx, words, memstore.NewCultureStore(), logger))

	user, err := domain.NewUser("learner", "learner@example.com", "hashed")
	require.NoError(t, err)
	created, err := users.Create(ctx, user)
	require.NoError(t, err)

	return &progressFixture{
		users:    users,
		words:    words,
		progress: progress,
		svc:      NewProgressService(progress, words, users, logger),
		userID:   created.ID,
	}
}

func TestRecordReview_CorrectAnswer(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordReview(ctx, f.userID, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Correct)
	assert.Equal(t, 0, p.Incorrect)
	assert.Equal(t, 2, p.MasteryLevel, "a single correct review reaches level 2")
	assert.False(t, p.LastReviewed.IsZero())

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 10, user.TotalPoints, "a correct review awards 10 points")
}

func TestRecordReview_IncorrectAnswerAwardsNothing(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	p, err := f.svc.RecordReview(ctx, f.userID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Correct)
	assert.Equal(t, 1, p.Incorrect)
	assert.Equal(t, 1, p.MasteryLevel)

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Zero(t, user.TotalPoints)
}

func TestRecordReview_UnknownWord(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)

	_, err := f.svc.RecordReview(context.Background(), f.userID, 9999, true)
	assert.ErrorIs(t, err, store.ErrWordNotFound)
}

func TestRecordReview_MasteryProgression(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	// Nine correct and one incorrect: 90% accuracy over ten reviews.
	var p *domain.UserProgress
	var err error
	for i := 0; i < 9; i++ {
		p, err = f.svc.RecordReview(ctx, f.userID, 5, true)
		require.NoError(t, err)
	}
	p, err = f.svc.RecordReview(ctx, f.userID, 5, false)
	require.NoError(t, err)

	assert.Equal(t, 9, p.Correct)
	assert.Equal(t, 1, p.Incorrect)
	assert.Equal(t, 5, p.MasteryLevel)
}

func TestRecordReview_SingleRecordPerWord(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.svc.RecordReview(ctx, f.userID, 2, i%2 == 0)
		require.NoError(t, err)
	}

	records, err := f.svc.ListProgress(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].TotalReviews())
}

func TestListProgressByType(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	// Word 1 is hiragana; the kanji block starts after 46 hiragana and 10
	// katakana entries.
	_, err := f.svc.RecordReview(ctx, f.userID, 1, true)
	require.NoError(t, err)
	_, err = f.svc.RecordReview(ctx, f.userID, 57, true)
	require.NoError(t, err)

	hiragana, err := f.svc.ListProgressByType(ctx, f.userID, domain.WordTypeHiragana)
	require.NoError(t, err)
	require.Len(t, hiragana, 1)
	assert.Equal(t, int64(1), hiragana[0].WordID)

	kanji, err := f.svc.ListProgressByType(ctx, f.userID, domain.WordTypeKanji)
	require.NoError(t, err)
	require.Len(t, kanji, 1)
	assert.Equal(t, int64(57), kanji[0].WordID)

	_, err = f.svc.ListProgressByType(ctx, f.userID, "romaji")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStats_NoReviews(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)

	stats, err := f.svc.GetStats(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalWords)
	assert.Zero(t, stats.MasteredWords)
	assert.Zero(t, stats.Accuracy, "accuracy is 0 when no reviews exist")
}

func TestGetStats_Aggregates(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)
	ctx := context.Background()

	// Word 1: 3 correct of 3 -> level 5 (mastered).
	for i := 0; i < 3; i++ {
		_, err := f.svc.RecordReview(ctx, f.userID, 1, true)
		require.NoError(t, err)
	}
	// Word 2: 1 correct, 2 incorrect -> level 1.
	_, err := f.svc.RecordReview(ctx, f.userID, 2, true)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = f.svc.RecordReview(ctx, f.userID, 2, false)
		require.NoError(t, err)
	}

	stats, err := f.svc.GetStats(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalWords)
	assert.Equal(t, 1, stats.MasteredWords)
	// 4 correct of 6 attempts = 66.67%, rounded to 67.
	assert.Equal(t, 67, stats.Accuracy)
	assert.Equal(t, 40, stats.TotalPoints, "4 correct reviews at 10 points each")
}

func TestGetStats_UnknownUser(t *testing.T) {
	t.Parallel()
	f := newProgressFixture(t)

	_, err := f.svc.GetStats(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
