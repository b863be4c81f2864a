package domain

import (
	"context"
	"strings"
)

// FormatKind identifies the container type of an uploaded document.
type FormatKind string

const (
	FormatUnknown FormatKind = ""
	FormatPDF     FormatKind = "pdf"
	FormatDOCX    FormatKind = "docx"
	FormatPPTX    FormatKind = "pptx"
)

// SupportedFormats lists every format the extractor understands, in display order.
func SupportedFormats() []FormatKind {
	return []FormatKind{FormatPDF, FormatDOCX, FormatPPTX}
}

// TaskKind selects the prompt family and formatter mode.
type TaskKind string

const (
	TaskSummary TaskKind = "summary"
	TaskQA      TaskKind = "qa"
)

// ParseTaskKind maps a raw task name to a TaskKind.
func ParseTaskKind(raw string) (TaskKind, error) {
	switch TaskKind(strings.ToLower(strings.TrimSpace(raw))) {
	case TaskSummary:
		return TaskSummary, nil
	case TaskQA:
		return TaskQA, nil
	default:
		return "", &ValidationError{Field: "task", Message: "task must be one of summary, qa", Err: ErrInvalidTaskKind}
	}
}

// DetailLevel controls requested verbosity (summary) or density (qa).
type DetailLevel string

const (
	DetailSmall  DetailLevel = "small"
	DetailMedium DetailLevel = "medium"
	DetailLarge  DetailLevel = "large"
)

// DefaultDetailLevel is used when a request does not name one.
const DefaultDetailLevel = DetailSmall

// ParseDetailLevel maps a raw detail level to a DetailLevel. Blank input
// yields DefaultDetailLevel.
func ParseDetailLevel(raw string) (DetailLevel, error) {
	switch DetailLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return DefaultDetailLevel, nil
	case DetailSmall:
		return DetailSmall, nil
	case DetailMedium:
		return DetailMedium, nil
	case DetailLarge:
		return DetailLarge, nil
	default:
		return "", &ValidationError{Field: "detail_level", Message: "detail level must be one of small, medium, large", Err: ErrInvalidDetailLevel}
	}
}

// Document is an uploaded file. It lives for a single request only.
type Document struct {
	Name  string
	Bytes []byte
}

// ExtractedText is the source-ordered text of every content unit in a document.
type ExtractedText struct {
	Format FormatKind
	Text   string
	// Units is the number of text-bearing pages, shapes or paragraphs read.
	Units int
}

// GenerationRequest is the immutable input to the prompt builder.
type GenerationRequest struct {
	Text        string
	Task        TaskKind
	DetailLevel DetailLevel
}

// RawReply is the unprocessed text returned by the generation backend.
// A nil *RawReply means the backend produced no answer.
type RawReply struct {
	Text string
}

// DigestResult is the formatted outcome of a summarize or answerize call.
type DigestResult struct {
	Task   TaskKind `json:"-"`
	Markup string   `json:"-"`
}

// TextExtractor turns a document into a single linear text stream.
type TextExtractor interface {
	Extract(doc *Document) (*ExtractedText, error)
}

// Generator is the boundary to the external text-completion backend.
// It returns a nil reply (and a non-nil error) when no answer was produced.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*RawReply, error)
}

// DigestService runs the extraction, prompting and formatting pipeline.
type DigestService interface {
	Summarize(ctx context.Context, doc *Document, level DetailLevel) (*DigestResult, error)
	Answerize(ctx context.Context, doc *Document, level DetailLevel) (*DigestResult, error)
}
