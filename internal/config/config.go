package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"console"`
	Output     string `envconfig:"LOG_OUTPUT" default:"stdout"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"logs/storebot.log"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"rfc3339"`
}

// CompletionConfig selects and tunes the completion backend.
type CompletionConfig struct {
	Provider    string  `envconfig:"COMPLETION_PROVIDER" default:"openai"`
	Model       string  `envconfig:"CHAT_MODEL" default:"gpt-3.5-turbo"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.7"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"500"`
	BaseURL     string  `envconfig:"OPENAI_BASE_URL"`
	OllamaURL   string  `envconfig:"OLLAMA_BASE_URL" default:"http://localhost:11434"`
}

// ModerationConfig tunes the moderation gate. Policy "open" lets
// traffic through when the classifier is unavailable, "closed" blocks
// it; the trade-off is deliberate and visible here rather than being a
// hardcoded default.
type ModerationConfig struct {
	Model  string `envconfig:"MODERATION_MODEL" default:"omni-moderation-latest"`
	Policy string `envconfig:"MODERATION_POLICY" default:"open"`
}

// SessionConfig controls the caller-side history store. RedisURL empty
// means the in-memory store is used.
type SessionConfig struct {
	RedisURL string        `envconfig:"REDIS_URL"`
	TTL      time.Duration `envconfig:"SESSION_TTL" default:"1h"`
}

// Config is the full process configuration, read once at startup.
type Config struct {
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	CatalogPath  string `envconfig:"CATALOG_PATH"`
	ListenAddr   string `envconfig:"LISTEN_ADDR" default:":8080"`

	Log        LogConfig        `envconfig:""`
	Completion CompletionConfig `envconfig:""`
	Moderation ModerationConfig `envconfig:""`
	Session    SessionConfig    `envconfig:""`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	switch cfg.Moderation.Policy {
	case "open", "closed":
	default:
		return nil, fmt.Errorf("invalid MODERATION_POLICY %q: must be \"open\" or \"closed\"", cfg.Moderation.Policy)
	}

	switch cfg.Completion.Provider {
	case "openai", "ollama":
	default:
		return nil, fmt.Errorf("invalid COMPLETION_PROVIDER %q: must be \"openai\" or \"ollama\"", cfg.Completion.Provider)
	}

	return &cfg, nil
}
