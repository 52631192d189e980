package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/store"
)

func newTestUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "hashed-password")
	require.NoError(t, err)
	return user
}

func TestUserStore_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	first, err := s.Create(ctx, newTestUser(t, "alice", "alice@example.com"))
	require.NoError(t, err)
	second, err := s.Create(ctx, newTestUser(t, "bob", "bob@example.com"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestUserStore_CreateRejectsDuplicates(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, newTestUser(t, "alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = s.Create(ctx, newTestUser(t, "alice2", "ALICE@example.com"))
	assert.ErrorIs(t, err, store.ErrEmailExists, "email comparison ignores case")

	_, err = s.Create(ctx, newTestUser(t, "alice", "other@example.com"))
	assert.ErrorIs(t, err, store.ErrUsernameExists)
}

func TestUserStore_GetByEmailIgnoresCase(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	created, err := s.Create(ctx, newTestUser(t, "alice", "Alice@Example.com"))
	require.NoError(t, err)

	found, err := s.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUserStore_AddPoints(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	user, err := s.Create(ctx, newTestUser(t, "alice", "alice@example.com"))
	require.NoError(t, err)

	updated, err := s.AddPoints(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.TotalPoints)

	updated, err = s.AddPoints(ctx, user.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 35, updated.TotalPoints)

	_, err = s.AddPoints(ctx, user.ID, -5)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.AddPoints(ctx, 999, 10)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStore_AddPointsConcurrent(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	user, err := s.Create(ctx, newTestUser(t, "alice", "alice@example.com"))
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddPoints(ctx, user.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, final.TotalPoints, "no award may be lost under concurrency")
}

func TestUserStore_SetStreakReturnsCopy(t *testing.T) {
	t.Parallel()
	s := NewUserStore()
	ctx := context.Background()

	user, err := s.Create(ctx, newTestUser(t, "alice", "alice@example.com"))
	require.NoError(t, err)

	studiedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	updated, err := s.SetStreak(ctx, user.ID, 3, studiedAt)
	require.NoError(t, err)
	require.NotNil(t, updated.LastStudyDate)
	assert.Equal(t, studiedAt, *updated.LastStudyDate)

	// Mutating the returned record must not leak into store state.
	*updated.LastStudyDate = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	updated.StreakDays = 99

	fresh, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.StreakDays)
	assert.Equal(t, studiedAt, *fresh.LastStudyDate)
}

func TestProgressStore_UpsertCreatesOnce(t *testing.T) {
	t.Parallel()
	s := NewProgressStore()
	ctx := context.Background()

	recordCorrect := func(p *domain.UserProgress) { p.Correct++ }

	first, err := s.Upsert(ctx, 1, 42, recordCorrect)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, 1, first.Correct)

	second, err := s.Upsert(ctx, 1, 42, recordCorrect)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (user, word) pair must reuse the record")
	assert.Equal(t, 2, second.Correct)

	other, err := s.Upsert(ctx, 1, 43, recordCorrect)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestProgressStore_UpsertConcurrentSamePair(t *testing.T) {
	t.Parallel()
	s := NewProgressStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.Upsert(ctx, 7, 3, func(p *domain.UserProgress) {
				if n%2 == 0 {
					p.Correct++
				} else {
					p.Incorrect++
				}
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := s.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 1, "concurrent upserts for one pair must never create two records")
	assert.Equal(t, workers, records[0].TotalReviews())
	assert.Equal(t, workers/2, records[0].Correct)
}

func TestProgressStore_GetByUserAndWord(t *testing.T) {
	t.Parallel()
	s := NewProgressStore()
	ctx := context.Background()

	_, err := s.GetByUserAndWord(ctx, 1, 1)
	assert.ErrorIs(t, err, store.ErrProgressNotFound)

	created, err := s.Upsert(ctx, 1, 1, func(p *domain.UserProgress) { p.Incorrect++ })
	require.NoError(t, err)

	found, err := s.GetByUserAndWord(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 1, found.Incorrect)
}

func TestProgressStore_ListByUserIsolatesUsers(t *testing.T) {
	t.Parallel()
	s := NewProgressStore()
	ctx := context.Background()

	for wordID := int64(1); wordID <= 3; wordID++ {
		_, err := s.Upsert(ctx, 1, wordID, func(p *domain.UserProgress) { p.Correct++ })
		require.NoError(t, err)
	}
	_, err := s.Upsert(ctx, 2, 1, func(p *domain.UserProgress) { p.Correct++ })
	require.NoError(t, err)

	mine, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, p := range mine {
		assert.Equal(t, int64(1), p.UserID)
	}
}

func TestVocabularyStore_ListFilters(t *testing.T) {
	t.Parallel()
	s := NewVocabularyStore()
	ctx := context.Background()

	seed := []domain.VocabularyWord{
		{Character: "あ", Romanji: "a", Meaning: "vowel a", Type: domain.WordTypeHiragana, Level: 1},
		{Character: "ア", Romanji: "a", Meaning: "vowel a", Type: domain.WordTypeKatakana, Level: 1},
		{Character: "水", Romanji: "mizu", Meaning: "water", Type: domain.WordTypeKanji, Level: 2},
	}
	for i := range seed {
		_, err := s.Put(ctx, &seed[i])
		require.NoError(t, err)
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID, "list is ordered by ID")

	kanji, err := s.ListByType(ctx, domain.WordTypeKanji)
	require.NoError(t, err)
	require.Len(t, kanji, 1)
	assert.Equal(t, "水", kanji[0].Character)

	level1, err := s.ListByLevel(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, level1, 2)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrWordNotFound)
}

func TestVocabularyStore_PutRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := NewVocabularyStore()

	_, err := s.Put(context.Background(), &domain.VocabularyWord{
		Character: "あ", Romanji: "a", Meaning: "vowel a",
		Type: "runes", Level: 1,
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestCultureStore_TagsAreNotShared(t *testing.T) {
	t.Parallel()
	s := NewCultureStore()
	ctx := context.Background()

	created, err := s.Put(ctx, &domain.CulturalContent{
		Title:       "Tea Ceremony",
		Description: "The way of tea",
		Category:    domain.CultureCategoryTraditionalArt,
		Tags:        []string{"tradition", "tea"},
	})
	require.NoError(t, err)

	created.Tags[0] = "mutated"

	entries, err := s.ListByCategory(ctx, domain.CultureCategoryTraditionalArt)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"tradition", "tea"}, entries[0].Tags)
}

func TestQuizStore_HistoryIsMostRecentFirst(t *testing.T) {
	t.Parallel()
	s := NewQuizStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(2 * time.Hour), base.Add(time.Hour)}
	for _, ts := range times {
		quiz := &domain.Quiz{UserID: 1, Score: 8, TotalQuestions: 10, Type: domain.QuizTypeHiragana, CompletedAt: ts}
		_, err := s.Append(ctx, quiz)
		require.NoError(t, err)
	}

	history, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].CompletedAt.After(history[1].CompletedAt))
	assert.True(t, history[1].CompletedAt.After(history[2].CompletedAt))
}

func TestQuizStore_TimestampTiesBreakByDescendingID(t *testing.T) {
	t.Parallel()
	s := NewQuizStore()
	ctx := context.Background()

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		quiz := &domain.Quiz{UserID: 1, Score: i, TotalQuestions: 10, Type: domain.QuizTypeKanji, CompletedAt: at}
		_, err := s.Append(ctx, quiz)
		require.NoError(t, err)
	}

	history, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(3), history[0].ID)
	assert.Equal(t, int64(2), history[1].ID)
	assert.Equal(t, int64(1), history[2].ID)
}

func TestQuizStore_AppendRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := NewQuizStore()

	_, err := s.Append(context.Background(), &domain.Quiz{
		UserID: 1, Score: 11, TotalQuestions: 10,
		Type: domain.QuizTypeHiragana, CompletedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestGameScoreStore_LeaderboardOrdering(t *testing.T) {
	t.Parallel()
	s := NewGameScoreStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	rounds := []struct {
		userID   int64
		score    int
		playedAt time.Time
	}{
		{1, 50, base.Add(time.Hour)},
		{2, 80, base},
		{3, 80, base.Add(2 * time.Hour)}, // ties with user 2, played later
		{4, 10, base},
	}
	for _, r := range rounds {
		gs := &domain.GameScore{UserID: r.userID, GameType: "word_jumble", Score: r.score, Level: 1, PlayedAt: r.playedAt}
		_, err := s.Append(ctx, gs)
		require.NoError(t, err)
	}

	board, err := s.Leaderboard(ctx, "word_jumble", 3)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, int64(2), board[0].UserID, "tie goes to the earlier play")
	assert.Equal(t, int64(3), board[1].UserID)
	assert.Equal(t, int64(1), board[2].UserID)
}

func TestGameScoreStore_LeaderboardFiltersGameType(t *testing.T) {
	t.Parallel()
	s := NewGameScoreStore()
	ctx := context.Background()

	for _, gameType := range []string{"word_jumble", "memory_match"} {
		gs := &domain.GameScore{UserID: 1, GameType: gameType, Score: 100, Level: 1, PlayedAt: time.Now().UTC()}
		_, err := s.Append(ctx, gs)
		require.NoError(t, err)
	}

	board, err := s.Leaderboard(ctx, "word_jumble", 10)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "word_jumble", board[0].GameType)
}

func TestGameScoreStore_ListByUserAndType(t *testing.T) {
	t.Parallel()
	s := NewGameScoreStore()
	ctx := context.Background()

	now := time.Now().UTC()
	for _, score := range []int{30, 90, 60} {
		gs := &domain.GameScore{UserID: 1, GameType: "word_jumble", Score: score, Level: 1, PlayedAt: now}
		_, err := s.Append(ctx, gs)
		require.NoError(t, err)
	}
	other := &domain.GameScore{UserID: 2, GameType: "word_jumble", Score: 999, Level: 1, PlayedAt: now}
	_, err := s.Append(ctx, other)
	require.NoError(t, err)

	scores, err := s.ListByUserAndType(ctx, 1, "word_jumble")
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 90, scores[0].Score)
	assert.Equal(t, 60, scores[1].Score)
	assert.Equal(t, 30, scores[2].Score)
}

func TestAchievementStore_ListByUser(t *testing.T) {
	t.Parallel()
	s := NewAchievementStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"First Steps", "On Fire", "Scholar"} {
		a := &domain.Achievement{
			UserID: 1, Type: "streak", Title: title,
			UnlockedAt: base.Add(time.Duration(i) * time.Hour),
		}
		_, err := s.Append(ctx, a)
		require.NoError(t, err)
	}

	unlocks, err := s.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, unlocks, 3)
	assert.Equal(t, "Scholar", unlocks[0].Title, "most recent unlock first")
	assert.Equal(t, "First Steps", unlocks[2].Title)
}

func TestChatStore_ListByUserHonorsLimit(t *testing.T) {
	t.Parallel()
	s := NewChatStore()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		m := &domain.ChatMessage{
			UserID: 1, Message: "konnichiwa", Response: "hello!",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		_, err := s.Append(ctx, m)
		require.NoError(t, err)
	}

	recent, err := s.ListByUser(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(5), recent[0].ID)
	assert.Equal(t, int64(4), recent[1].ID)

	all, err := s.ListByUser(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit returns the full history")
}
