package service

import (
	"context"
	"errors"
	"time"

	"doc-digest/internal/domain"
)

// DigestService sequences extraction, prompting, generation and formatting.
// It holds no per-request state.
type DigestService struct {
	extractor domain.TextExtractor
	generator domain.Generator
	logger    domain.Logger
}

// NewDigestService creates a new digest service
func NewDigestService(extractor domain.TextExtractor, generator domain.Generator, logger domain.Logger) *DigestService {
	return &DigestService{
		extractor: extractor,
		generator: generator,
		logger:    logger,
	}
}

// Summarize produces a bullet-point summary of the document.
func (s *DigestService) Summarize(ctx context.Context, doc *domain.Document, level domain.DetailLevel) (*domain.DigestResult, error) {
	return s.run(ctx, doc, domain.TaskSummary, level)
}

// Answerize produces question/answer blocks about the document.
func (s *DigestService) Answerize(ctx context.Context, doc *domain.Document, level domain.DetailLevel) (*domain.DigestResult, error) {
	return s.run(ctx, doc, domain.TaskQA, level)
}

func (s *DigestService) run(ctx context.Context, doc *domain.Document, task domain.TaskKind, level domain.DetailLevel) (*domain.DigestResult, error) {
	if doc == nil {
		return nil, domain.ErrMissingInput
	}

	extracted, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(domain.GenerationRequest{
		Text:        extracted.Text,
		Task:        task,
		DetailLevel: level,
	})

	start := time.Now()
	reply, err := s.generator.Generate(ctx, prompt)
	latency := time.Since(start)
	if err == nil && reply == nil {
		err = errors.New("no reply")
	}
	if err != nil {
		s.logger.Error("Generation failed", err,
			"task", string(task),
			"detail_level", string(level),
			"latency_ms", latency.Milliseconds(),
		)
		return nil, &domain.GenerationError{Fallback: FailureText(task), Cause: err}
	}

	s.logger.Info("Digest generated",
		"task", string(task),
		"detail_level", string(level),
		"format", string(extracted.Format),
		"units", extracted.Units,
		"prompt_chars", len(prompt),
		"latency_ms", latency.Milliseconds(),
	)

	return &domain.DigestResult{
		Task:   task,
		Markup: FormatReply(task, reply),
	}, nil
}
