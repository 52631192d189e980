package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		username       string
		email          string
		hashedPassword string
		wantErr        error
	}{
		{"valid user", "yuki", "yuki@example.com", "hashed", nil},
		{"empty username", "", "yuki@example.com", "hashed", ErrEmptyUsername},
		{"whitespace username", "   ", "yuki@example.com", "hashed", ErrEmptyUsername},
		{"empty email", "yuki", "", "hashed", ErrEmptyEmail},
		{"email without at sign", "yuki", "yuki.example.com", "hashed", ErrInvalidEmail},
		{"email without domain dot", "yuki", "yuki@example", "hashed", ErrInvalidEmail},
		{"email with trailing at", "yuki", "yuki@", "hashed", ErrInvalidEmail},
		{"empty hashed password", "yuki", "yuki@example.com", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tt.username, tt.email, tt.hashedPassword)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
			assert.Zero(t, user.ID, "store assigns the ID")
			assert.Zero(t, user.TotalPoints)
			assert.Nil(t, user.LastStudyDate)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestUserValidateRejectsNegativeCounters(t *testing.T) {
	t.Parallel()

	user, err := NewUser("yuki", "yuki@example.com", "hashed")
	require.NoError(t, err)

	user.TotalPoints = -1
	assert.ErrorIs(t, user.Validate(), ErrNegativePoints)

	user.TotalPoints = 0
	user.StreakDays = -1
	assert.ErrorIs(t, user.Validate(), ErrNegativeStreak)
}

func TestVocabularyWordValidate(t *testing.T) {
	t.Parallel()

	valid := VocabularyWord{Character: "あ", Romanji: "a", Meaning: "a sound", Type: WordTypeHiragana, Level: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(w *VocabularyWord)
		wantErr error
	}{
		{"empty character", func(w *VocabularyWord) { w.Character = "" }, ErrEmptyCharacter},
		{"empty romanji", func(w *VocabularyWord) { w.Romanji = "" }, ErrEmptyRomanji},
		{"empty meaning", func(w *VocabularyWord) { w.Meaning = "" }, ErrEmptyMeaning},
		{"unknown type", func(w *VocabularyWord) { w.Type = "runes" }, ErrInvalidWordType},
		{"level below range", func(w *VocabularyWord) { w.Level = 0 }, ErrInvalidLevel},
		{"level above range", func(w *VocabularyWord) { w.Level = 6 }, ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := valid
			tt.mutate(&w)
			assert.ErrorIs(t, w.Validate(), tt.wantErr)
		})
	}
}

func TestNewQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  int64
		score   int
		total   int
		qType   QuizType
		wantErr error
	}{
		{"valid quiz", 1, 4, 5, QuizTypeHiragana, nil},
		{"perfect score", 1, 5, 5, QuizTypeKanji, nil},
		{"zero score", 1, 0, 5, QuizTypeVocabulary, nil},
		{"missing user", 0, 4, 5, QuizTypeHiragana, ErrEmptyQuizUserID},
		{"zero questions", 1, 0, 0, QuizTypeHiragana, ErrNoQuestions},
		{"score above total", 1, 6, 5, QuizTypeHiragana, ErrScoreOutOfRange},
		{"negative score", 1, -1, 5, QuizTypeHiragana, ErrScoreOutOfRange},
		{"unknown type", 1, 4, 5, "trivia", ErrInvalidQuizType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quiz, err := NewQuiz(tt.userID, tt.score, tt.total, tt.qType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.False(t, quiz.CompletedAt.IsZero())
		})
	}
}

func TestNewGameScore(t *testing.T) {
	t.Parallel()

	gs, err := NewGameScore(1, "matching", 300, 2)
	require.NoError(t, err)
	assert.Equal(t, "matching", gs.GameType)
	assert.False(t, gs.PlayedAt.IsZero())

	_, err = NewGameScore(0, "matching", 300, 2)
	assert.ErrorIs(t, err, ErrEmptyGameUserID)

	_, err = NewGameScore(1, "", 300, 2)
	assert.ErrorIs(t, err, ErrEmptyGameType)

	_, err = NewGameScore(1, "matching", -1, 2)
	assert.ErrorIs(t, err, ErrNegativeGameScore)

	_, err = NewGameScore(1, "matching", 300, 0)
	assert.ErrorIs(t, err, ErrInvalidGameLevel)
}

func TestNewAchievement(t *testing.T) {
	t.Parallel()

	a, err := NewAchievement(1, "first_quiz", "Quiz Beginner", "Completed your first quiz", "trophy")
	require.NoError(t, err)
	assert.False(t, a.UnlockedAt.IsZero())

	_, err = NewAchievement(0, "first_quiz", "Quiz Beginner", "", "")
	assert.ErrorIs(t, err, ErrEmptyAchievementUserID)

	_, err = NewAchievement(1, "", "Quiz Beginner", "", "")
	assert.ErrorIs(t, err, ErrEmptyAchievementType)

	_, err = NewAchievement(1, "first_quiz", "", "", "")
	assert.ErrorIs(t, err, ErrEmptyAchievementTitle)
}

func TestNewChatMessage(t *testing.T) {
	t.Parallel()

	m, err := NewChatMessage(1, "How do I say hello?", "こんにちは (konnichiwa)!")
	require.NoError(t, err)
	assert.False(t, m.Timestamp.IsZero())

	_, err = NewChatMessage(0, "hello", "reply")
	assert.ErrorIs(t, err, ErrEmptyChatUserID)

	_, err = NewChatMessage(1, "", "reply")
	assert.ErrorIs(t, err, ErrEmptyChatMessage)
}

func TestNewUserProgress(t *testing.T) {
	t.Parallel()

	p, err := NewUserProgress(1, 2)
	require.NoError(t, err)
	assert.Zero(t, p.Correct)
	assert.Zero(t, p.Incorrect)
	assert.Zero(t, p.MasteryLevel)
	assert.True(t, p.LastReviewed.IsZero())

	_, err = NewUserProgress(0, 2)
	assert.Error(t, err)

	_, err = NewUserProgress(1, 0)
	assert.Error(t, err)
}

func TestCulturalContentValidate(t *testing.T) {
	t.Parallel()

	valid := CulturalContent{
		Title:       "Tea Ceremony",
		Description: "The Japanese way of tea",
		ImageURL:    "https://example.com/tea.jpg",
		Category:    CultureCategoryTraditionalArt,
		Tags:        []string{"tradition"},
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Category = "folklore"
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidCultureCategory)
}
