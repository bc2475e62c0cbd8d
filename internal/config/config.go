package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup from the environment (and .env, loaded by
// the caller).
type Config struct {
	Port   string
	AppEnv string

	CompletionProvider string
	CompletionModel    string
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	GeminiAPIKey       string
	ImproveTimeout     time.Duration
	ImproveRateLimit   int

	CORSOrigins     string
	DatabaseURL     string
	ChromePath      string
	RenderTimeout   time.Duration
	SessionTTL      time.Duration
	DefaultLanguage string
}

// MinSessionTTL is the shortest accepted SESSION_TTL.
const MinSessionTTL = time.Second

func Load() (Config, error) {
	cfg := Config{
		Port:               getEnv("PORT", "3000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		CompletionProvider: strings.ToLower(getEnv("COMPLETION_PROVIDER", "openai")),
		CompletionModel:    os.Getenv("COMPLETION_MODEL"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:5173"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ChromePath:         os.Getenv("CHROME_PATH"),
		DefaultLanguage:    strings.ToLower(getEnv("DEFAULT_LANGUAGE", "en")),
	}

	var err error
	if cfg.ImproveTimeout, err = getDuration("IMPROVE_TIMEOUT", 30*time.Second); err != nil {
		return cfg, err
	}
	if cfg.RenderTimeout, err = getDuration("RENDER_TIMEOUT", 60*time.Second); err != nil {
		return cfg, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return cfg, err
	}
	// the sweeper ticks every SessionTTL/4
	if cfg.SessionTTL < MinSessionTTL {
		return cfg, fmt.Errorf("SESSION_TTL: must be at least %s", MinSessionTTL)
	}
	if cfg.ImproveRateLimit, err = getInt("IMPROVE_RATE_LIMIT", 20); err != nil {
		return cfg, err
	}
	if cfg.ImproveRateLimit == 0 {
		return cfg, fmt.Errorf("IMPROVE_RATE_LIMIT: must be positive")
	}

	switch cfg.CompletionProvider {
	case "openai", "gemini":
	default:
		return cfg, fmt.Errorf("COMPLETION_PROVIDER: unsupported provider %q", cfg.CompletionProvider)
	}
	return cfg, nil
}

// APIKey returns the key of the selected provider.
func (c Config) APIKey() string {
	if c.CompletionProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func (c Config) IsProduction() bool { return c.AppEnv == "production" }

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}
