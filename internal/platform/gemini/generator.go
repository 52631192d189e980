// Package gemini implements generation.Generator against Google's Gemini
// API. Calls retry transient failures with exponential backoff and jitter;
// permanent failures (blocked content, unparseable output) return
// immediately so callers can fall back to static content.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/nihongo-api/internal/config"
	"github.com/phrazzld/nihongo-api/internal/generation"
)

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator. The API key and model name
// must be set in the configuration.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// GenerateReply implements generation.Generator.GenerateReply.
func (g *Generator) GenerateReply(ctx context.Context, message string) (*generation.Reply, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", generation.ErrInvalidResponse)
	}

	text, err := g.callWithRetry(ctx, tutorPrompt(message), true)
	if err != nil {
		return nil, err
	}

	var reply generation.Reply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("%w: failed to parse reply JSON: %v", generation.ErrInvalidResponse, err)
	}

	if reply.Message == "" {
		return nil, fmt.Errorf("%w: reply has no message", generation.ErrInvalidResponse)
	}

	return &reply, nil
}

// GenerateQuestions implements generation.Generator.GenerateQuestions.
func (g *Generator) GenerateQuestions(ctx context.Context, quizType string, difficulty, count int) ([]generation.Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive", generation.ErrInvalidResponse)
	}

	text, err := g.callWithRetry(ctx, quizPrompt(quizType, difficulty, count), true)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []generation.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse question JSON: %v", generation.ErrInvalidResponse, err)
	}

	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in response", generation.ErrInvalidResponse)
	}

	for i, q := range parsed.Questions {
		if q.Question == "" || len(q.Options) < 2 {
			return nil, fmt.Errorf("%w: question %d is malformed", generation.ErrInvalidResponse, i)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d answer index out of range", generation.ErrInvalidResponse, i)
		}
	}

	return parsed.Questions, nil
}

// AnalyzeProgress implements generation.Generator.AnalyzeProgress.
func (g *Generator) AnalyzeProgress(ctx context.Context, statsSummary string) (string, error) {
	text, err := g.callWithRetry(ctx, analysisPrompt(statsSummary), false)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty analysis", generation.ErrInvalidResponse)
	}
	return text, nil
}

// callWithRetry sends the prompt to the Gemini API, retrying transient
// failures with exponential backoff and jitter up to config.MaxRetries
// additional attempts. Permanent errors return immediately.
func (g *Generator) callWithRetry(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 3
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var genConfig *genai.GenerateContentConfig
	if wantJSON {
		genConfig = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "calling gemini api",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", maxRetries+1))

		text, err := g.callOnce(ctx, prompt, genConfig)
		if err == nil {
			return text, nil
		}

		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			g.logger.WarnContext(ctx, "permanent gemini error, not retrying", slog.Any("error", err))
			return "", err
		}

		if attempt >= maxRetries {
			g.logger.WarnContext(ctx, "gemini retry budget exhausted",
				slog.Int("max_retries", maxRetries), slog.Any("error", err))
			return "", fmt.Errorf("%w: exceeded %d attempts: %v",
				generation.ErrTransientFailure, maxRetries+1, err)
		}

		// delay = base * 2^attempt * jitter in [0.5, 1.0)
		backoff := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5) * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying gemini call",
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", delay))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single GenerateContent call and classifies the result.
func (g *Generator) callOnce(ctx context.Context, prompt string, genConfig *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: safety filters rejected the prompt", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	return text, nil
}
