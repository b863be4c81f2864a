package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doc-digest/internal/domain"

	"cloud.google.com/go/vertexai/genai"
)

const defaultGenerationTimeout = 60 * time.Second

// VertexOptions configures the Gemini backend on Vertex AI.
type VertexOptions struct {
	ProjectID string
	Location  string
	Model     string
	Timeout   time.Duration
}

// VertexGenerator calls Gemini through Vertex AI using application default credentials.
type VertexGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  domain.Logger
}

// NewVertexGenerator creates a Vertex AI client for the given project.
func NewVertexGenerator(ctx context.Context, opts VertexOptions, logger domain.Logger) (*VertexGenerator, error) {
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("gcp project id required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGenerationTimeout
	}

	client, err := genai.NewClient(ctx, opts.ProjectID, opts.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	logger.Info("Vertex AI client initialized", "project", opts.ProjectID, "location", opts.Location, "model", opts.Model)
	return &VertexGenerator{
		client:  client,
		model:   opts.Model,
		timeout: opts.Timeout,
		logger:  logger,
	}, nil
}

// Generate sends the prompt as a single-turn request.
func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (*domain.RawReply, error) {
	reqCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(reqCtx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}
	if resp.UsageMetadata != nil {
		g.logger.Debug("Gemini usage",
			"prompt_tokens", resp.UsageMetadata.PromptTokenCount,
			"candidate_tokens", resp.UsageMetadata.CandidatesTokenCount,
		)
	}
	return replyFrom(candidateText(resp))
}

// Close releases the underlying client.
func (g *VertexGenerator) Close() error {
	return g.client.Close()
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
