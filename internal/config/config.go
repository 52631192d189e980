// Package config loads and validates application configuration from a
// config file and environment variables.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains the database settings. URL is optional: when it is
// empty the server runs against the in-memory backend, which suits local
// development and tests.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// UsePostgres reports whether a database URL was configured.
func (c DatabaseConfig) UsePostgres() bool {
	return c.URL != ""
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
	BCryptCost         int    `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}

// LLMConfig contains the text-generation settings. GeminiAPIKey is optional:
// when it is empty the server uses static fallback content instead of
// calling the Gemini API.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"`
	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// UseGemini reports whether a Gemini API key was configured.
func (c LLMConfig) UseGemini() bool {
	return c.GeminiAPIKey != ""
}
