package genai

import (
	"context"
	"fmt"
	"time"

	"doc-digest/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIOptions configures the OpenAI Chat Completions backend.
type OpenAIOptions struct {
	APIKey  string
	Model   openai.ChatModel
	BaseURL string
	Timeout time.Duration
}

// OpenAIGenerator calls the OpenAI Chat Completions API.
type OpenAIGenerator struct {
	model   openai.ChatModel
	client  *openai.Client
	timeout time.Duration
	logger  domain.Logger
}

// NewOpenAIGenerator builds a client against api.openai.com, or BaseURL when set.
// SDK retries are disabled: a failed call is reported once.
func NewOpenAIGenerator(opts OpenAIOptions, logger domain.Logger) (*OpenAIGenerator, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if opts.Model == "" {
		opts.Model = openai.ChatModelGPT4oMini
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGenerationTimeout
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	cli := openai.NewClient(reqOpts...)

	logger.Info("OpenAI client initialized", "model", opts.Model)
	return &OpenAIGenerator{
		model:   opts.Model,
		client:  &cli,
		timeout: opts.Timeout,
		logger:  logger,
	}, nil
}

// Generate sends the prompt as a single user message.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (*domain.RawReply, error) {
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	g.logger.Debug("OpenAI usage",
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)
	return replyFrom(resp.Choices[0].Message.Content)
}

// Close is a no-op; the HTTP client needs no teardown.
func (g *OpenAIGenerator) Close() error {
	return nil
}
