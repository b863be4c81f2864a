package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	Port       string `env:"PORT"`
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`

	MaxFileSize    int64    `env:"MAX_FILE_SIZE" envDefault:"52428800" validate:"gt=0"` // 50MB default
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat      string   `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	LLMProvider       string        `env:"LLM_PROVIDER" envDefault:"gemini" validate:"oneof=gemini openai"`
	GCPProjectID      string        `env:"GCP_PROJECT_ID" validate:"required_if=LLMProvider gemini"`
	GCPLocation       string        `env:"GCP_LOCATION" envDefault:"us-central1"`
	GeminiModel       string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	OpenAIKey         string        `env:"OPENAI_API_KEY" validate:"required_if=LLMProvider openai"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL" validate:"omitempty,url"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s" validate:"gt=0"`

	PDFEngine string `env:"PDF_ENGINE" envDefault:"fitz" validate:"oneof=fitz pure"`
}

// NewConfig reads the configuration from the environment, applying defaults.
func NewConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Load reads and validates the configuration. It is the single startup check.
func Load() (*AppConfig, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and that the selected provider has credentials.
func (c *AppConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	if c.Port != "" {
		return c.Port
	}
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log encoding, json or console
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetLLMProvider returns the generation backend name
func (c *AppConfig) GetLLMProvider() string {
	return c.LLMProvider
}

// GetGCPProjectID returns the Vertex AI project
func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

// GetGCPLocation returns the Vertex AI region
func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

// GetGeminiModel returns the Gemini model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetOpenAIKey returns the OpenAI API key
func (c *AppConfig) GetOpenAIKey() string {
	return c.OpenAIKey
}

// GetOpenAIModel returns the OpenAI chat model name
func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

// GetOpenAIBaseURL returns the OpenAI-compatible endpoint override, if any
func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetGenerationTimeout returns the per-call generation timeout
func (c *AppConfig) GetGenerationTimeout() time.Duration {
	return c.GenerationTimeout
}

// GetPDFEngine returns the PDF text engine name
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}
