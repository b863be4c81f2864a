// Package genai adapts external text-completion backends to domain.Generator.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doc-digest/internal/domain"

	"github.com/openai/openai-go/v3"
)

// Provider names accepted by NewGenerator.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ErrEmptyResponse is returned when the backend answered with no text.
var ErrEmptyResponse = errors.New("empty response from model")

// ClosableGenerator is a Generator holding a connection that must be released.
type ClosableGenerator interface {
	domain.Generator
	Close() error
}

// NewGenerator builds the generator selected by cfg.GetLLMProvider().
func NewGenerator(ctx context.Context, cfg domain.Config, logger domain.Logger) (ClosableGenerator, error) {
	switch strings.ToLower(cfg.GetLLMProvider()) {
	case ProviderGemini:
		return NewVertexGenerator(ctx, VertexOptions{
			ProjectID: cfg.GetGCPProjectID(),
			Location:  cfg.GetGCPLocation(),
			Model:     cfg.GetGeminiModel(),
			Timeout:   cfg.GetGenerationTimeout(),
		}, logger)
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIOptions{
			APIKey:  cfg.GetOpenAIKey(),
			Model:   openai.ChatModel(cfg.GetOpenAIModel()),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Timeout: cfg.GetGenerationTimeout(),
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.GetLLMProvider())
	}
}

// replyFrom wraps non-blank text as a reply.
func replyFrom(text string) (*domain.RawReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}
	return &domain.RawReply{Text: text}, nil
}
