package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Draw     DrawConfig     `mapstructure:"draw"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// DrawConfig contains the daily draw policy settings.
type DrawConfig struct {
	// DailyLimit is the number of draws an account may record per calendar
	// day. The idempotent replay of an existing draw does not count.
	DailyLimit int `mapstructure:"daily_limit" validate:"required,gt=0"`

	// LedgerDir is the directory for the file-backed fallback ledger.
	LedgerDir string `mapstructure:"ledger_dir" validate:"required"`
}

// LLMConfig contains settings for the enhanced interpretation generator.
// The API key may be empty, in which case enhanced interpretations are
// disabled and the endpoint reports the feature unavailable.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"`
}
