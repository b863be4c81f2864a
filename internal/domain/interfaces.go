package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetAllowedOrigins() []string
	GetLLMProvider() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetGeminiModel() string
	GetOpenAIKey() string
	GetOpenAIModel() string
	GetOpenAIBaseURL() string
	GetGenerationTimeout() time.Duration
	GetPDFEngine() string
}
