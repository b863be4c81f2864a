package config

import (
	"context"

	"doc-digest/internal/domain"
	"doc-digest/internal/infra/genai"
	"doc-digest/internal/service"
	"doc-digest/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	Extractor     domain.TextExtractor
	Generator     domain.Generator
	DigestService domain.DigestService

	closeGenerator func() error
}

// NewContainer creates a new dependency injection container with the
// generator selected by the configuration.
func NewContainer(ctx context.Context, cfg domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	generator, err := genai.NewGenerator(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	c := NewContainerWithGenerator(cfg, appLogger, generator)
	c.closeGenerator = generator.Close
	return c, nil
}

// NewContainerWithGenerator wires the pipeline around an existing generator.
func NewContainerWithGenerator(cfg domain.Config, appLogger domain.Logger, generator domain.Generator) *Container {
	pageReader := service.NewPageReader(cfg.GetPDFEngine(), appLogger)
	extractor := service.NewDocumentExtractor(pageReader, appLogger)
	digestService := service.NewDigestService(extractor, generator, appLogger)

	return &Container{
		Config:        cfg,
		Logger:        appLogger,
		Extractor:     extractor,
		Generator:     generator,
		DigestService: digestService,
	}
}

// Close releases the generator connection and flushes buffered log entries.
func (c *Container) Close() error {
	var err error
	if c.closeGenerator != nil {
		err = c.closeGenerator()
	}
	if syncer, ok := c.Logger.(interface{ Sync() error }); ok {
		// Syncing stderr fails with EINVAL on some platforms; that is not a
		// shutdown error.
		_ = syncer.Sync()
	}
	return err
}
