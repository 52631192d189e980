// Package generation defines the interface to the external text-generation
// collaborator used by the tutor chat and the quiz question generator.
// Implementations live under internal/platform; the services depend only on
// the Generator interface so that failures and fallbacks can be exercised
// without network access.
package generation

import "context"

// Lesson is an optional mini-lesson attached to a tutor reply: a single
// character with its transliteration, meaning, and an example usage.
type Lesson struct {
	Character string `json:"character,omitempty"`
	Romanji   string `json:"romanji,omitempty"`
	Meaning   string `json:"meaning,omitempty"`
	Example   string `json:"example,omitempty"`
}

// Reply is a structured tutor chat response.
type Reply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Lesson      *Lesson  `json:"lesson,omitempty"`
}

// Question is a generated multiple-choice quiz question. CorrectIndex is the
// zero-based index into Options.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Generator produces tutor replies and quiz questions from an external
// language model. Implementations must be safe for concurrent use.
type Generator interface {
	// GenerateReply produces a tutor response to the learner's message.
	GenerateReply(ctx context.Context, message string) (*Reply, error)

	// GenerateQuestions produces count quiz questions for the given subject
	// at the given difficulty (1-5).
	GenerateQuestions(ctx context.Context, quizType string, difficulty, count int) ([]Question, error)

	// AnalyzeProgress produces free-form encouraging feedback for the given
	// learner statistics summary.
	AnalyzeProgress(ctx context.Context, statsSummary string) (string, error)
}
