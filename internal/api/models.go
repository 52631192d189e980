package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// ReviewRequest defines the payload for recording one review outcome.
type ReviewRequest struct {
	WordID  int64 `json:"word_id" validate:"required,gt=0"`
	Correct *bool `json:"correct" validate:"required"`
}

// QuizSubmitRequest defines the payload for submitting a completed quiz.
type QuizSubmitRequest struct {
	Score          int    `json:"score"           validate:"gte=0"`
	TotalQuestions int    `json:"total_questions" validate:"required,gt=0"`
	Type           string `json:"type"            validate:"required"`
}

// GameScoreRequest defines the payload for submitting a finished game round.
type GameScoreRequest struct {
	GameType string `json:"game_type" validate:"required"`
	Score    int    `json:"score"     validate:"gte=0"`
	Level    int    `json:"level"     validate:"required,gte=1"`
}

// AchievementRequest defines the payload for unlocking an achievement.
type AchievementRequest struct {
	Type        string `json:"type"        validate:"required"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
}

// ChatRequest defines the payload for sending a tutor chat message.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}
