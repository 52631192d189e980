package gemini

import "fmt"

// tutorPrompt frames the learner's message for the tutor persona. The model
// must answer with a JSON object matching generation.Reply.
func tutorPrompt(message string) string {
	return fmt.Sprintf(`You are Nihongo Sensei, a friendly and encouraging Japanese language teacher.

The learner said: %q

Respond as a helpful Japanese language teacher. If the learner asks about
Japanese, provide educational content. If they want to practice, give them
exercises. If they need encouragement, be supportive. Include Japanese
characters when relevant, always with romanji and English translations.

Respond with JSON in this format:
{
  "message": "Your response message",
  "suggestions": ["suggestion1", "suggestion2", "suggestion3"],
  "lesson": {
    "character": "Japanese character if teaching one",
    "romanji": "romanji pronunciation",
    "meaning": "English meaning",
    "example": "example usage"
  }
}

Keep responses encouraging, educational, and culturally appropriate.`, message)
}

// quizPrompt asks for count multiple-choice questions as a JSON object with
// a "questions" array matching generation.Question.
func quizPrompt(quizType string, difficulty, count int) string {
	return fmt.Sprintf(`Generate %d Japanese language quiz questions for %s at difficulty level %d (1-5).

Respond with JSON in this format:
{
  "questions": [
    {
      "question": "What does あ mean?",
      "options": ["a", "i", "u", "e"],
      "correct": 0,
      "explanation": "あ is the first hiragana character, pronounced 'a'"
    }
  ]
}

Make questions educational and progressively challenging.`, count, quizType, difficulty)
}

// analysisPrompt asks for free-form feedback on a learner's statistics.
func analysisPrompt(statsSummary string) string {
	return fmt.Sprintf(`Analyze this Japanese learner's progress and provide encouraging feedback with specific recommendations:

Stats: %s

Provide personalized advice in a supportive tone, mentioning specific areas to focus on.`, statsSummary)
}
