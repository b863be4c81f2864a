// Command digest summarizes a document, or turns it into question/answer
// pairs, from the command line.
//
// Usage:
//
//	digest -task summary -detail medium report.pdf
//	digest -task qa deck.pptx
//
// Configuration is read from the environment (and .env) exactly as the
// server does; the formatted markup is written to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"doc-digest/internal/config"
	"doc-digest/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	task := flag.String("task", "summary", "what to produce: summary or qa")
	detail := flag.String("detail", string(domain.DefaultDetailLevel), "detail level: small, medium or large")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-task summary|qa] [-detail small|medium|large] <file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, *task, *detail, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "digest: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, rawTask, rawDetail, path string) error {
	task, err := domain.ParseTaskKind(rawTask)
	if err != nil {
		return err
	}
	level, err := domain.ParseDetailLevel(rawDetail)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	container, err := config.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	doc := &domain.Document{Name: filepath.Base(path), Bytes: data}

	var result *domain.DigestResult
	if task == domain.TaskQA {
		result, err = container.DigestService.Answerize(ctx, doc, level)
	} else {
		result, err = container.DigestService.Summarize(ctx, doc, level)
	}
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			fmt.Fprintln(out, genErr.Fallback)
		}
		return err
	}

	_, err = fmt.Fprintln(out, result.Markup)
	return err
}
