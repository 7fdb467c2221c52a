package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/tractis/proposal-engine/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Database configuration (optional; without it finished proposals are
	// not archived and the result endpoints are disabled)
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// LLM provider configurations
	ParserLLMCfg ParserLLMConfig `envPrefix:"PARSER_LLM_"`
	ChatLLMCfg   ChatLLMConfig   `envPrefix:"CHAT_LLM_"`

	// External service configurations
	ExtractionConnectorCfg ExtractionConnectorConfig `envPrefix:"EXTRACTION_"`
	BrandingConnectorCfg   BrandingConnectorConfig   `envPrefix:"BRANDING_"`

	// Enrichment session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Input limits
	LimitsCfg LimitsConfig `envPrefix:"LIMITS_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// ParserLLMConfig configures the structured-output provider used by the
// parser stage. Defaults target the Groq OpenAI-compatible endpoint.
type ParserLLMConfig struct {
	APIKey      string        `env:"API_KEY"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model       string        `env:"MODEL" envDefault:"llama-3.3-70b-versatile"`
	Temperature float64       `env:"TEMPERATURE" envDefault:"0.1"`
	MaxTokens   int64         `env:"MAX_TOKENS" envDefault:"8000"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"120s"`
}

// ChatLLMConfig configures the Anthropic provider used by the enrichment and
// designer stages. BaseURL is empty in normal operation and only set to route
// through a proxy.
type ChatLLMConfig struct {
	APIKey    string        `env:"API_KEY"`
	BaseURL   string        `env:"BASE_URL"`
	Model     string        `env:"MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	MaxTokens int64         `env:"MAX_TOKENS" envDefault:"8000"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"180s"`
}

type ExtractionConnectorConfig struct {
	HTTPClientConfig
	ExtractEndpoint string               `env:"EXTRACT_ENDPOINT" envDefault:"/extract"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type BrandingConnectorConfig struct {
	HTTPClientConfig
	PaletteEndpoint string               `env:"PALETTE_ENDPOINT" envDefault:"/palette"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"30s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// SessionConfig bounds the lifetime of enrichment sessions.
type SessionConfig struct {
	TTL           time.Duration `env:"TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
}

// LimitsConfig bounds caller input and conversation growth.
type LimitsConfig struct {
	MinDocumentChars   int `env:"MIN_DOCUMENT_CHARS" envDefault:"50"`
	MaxDocumentChars   int `env:"MAX_DOCUMENT_CHARS" envDefault:"100000"`
	MaxMessageChars    int `env:"MAX_MESSAGE_CHARS" envDefault:"10000"`
	MaxTranscriptChars int `env:"MAX_TRANSCRIPT_CHARS" envDefault:"400000"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	// API keys are only needed when real providers are wired in.
	if !cfg.EnableMocks {
		if cfg.ParserLLMCfg.APIKey == "" {
			return fmt.Errorf("PARSER_LLM_API_KEY is required when mocks are disabled")
		}
		if cfg.ChatLLMCfg.APIKey == "" {
			return fmt.Errorf("CHAT_LLM_API_KEY is required when mocks are disabled")
		}
	}

	if cfg.DatabaseURL != "" {
		if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
			return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
		}
		if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
		}
	}

	if cfg.SessionCfg.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL)
	}
	if cfg.SessionCfg.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", cfg.SessionCfg.SweepInterval)
	}

	if cfg.LimitsCfg.MinDocumentChars < 1 || cfg.LimitsCfg.MinDocumentChars >= cfg.LimitsCfg.MaxDocumentChars {
		return fmt.Errorf("LIMITS_MIN_DOCUMENT_CHARS must be between 1 and LIMITS_MAX_DOCUMENT_CHARS(%d), got %d",
			cfg.LimitsCfg.MaxDocumentChars, cfg.LimitsCfg.MinDocumentChars)
	}
	if cfg.LimitsCfg.MaxMessageChars < 1 {
		return fmt.Errorf("LIMITS_MAX_MESSAGE_CHARS must be positive, got %d", cfg.LimitsCfg.MaxMessageChars)
	}

	if cfg.ParserLLMCfg.Temperature < 0 || cfg.ParserLLMCfg.Temperature > 2 {
		return fmt.Errorf("PARSER_LLM_TEMPERATURE must be between 0 and 2, got %f", cfg.ParserLLMCfg.Temperature)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
