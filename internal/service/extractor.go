package service

import (
	"fmt"
	"strings"

	"doc-digest/internal/domain"
)

// DocumentExtractor implements domain.TextExtractor for PDF, DOCX and PPTX.
type DocumentExtractor struct {
	pdf    PageReader
	logger domain.Logger
}

// NewDocumentExtractor creates an extractor that renders PDFs with the given engine.
func NewDocumentExtractor(pdf PageReader, logger domain.Logger) *DocumentExtractor {
	return &DocumentExtractor{
		pdf:    pdf,
		logger: logger,
	}
}

// Extract returns the document's content units joined in source order.
//
// PDF page texts are concatenated as rendered (each page already carries its
// own line endings). Slide shapes and paragraphs are joined one per line.
// The format is decided from the file name before any byte is read.
func (e *DocumentExtractor) Extract(doc *domain.Document) (*domain.ExtractedText, error) {
	if doc == nil || strings.TrimSpace(doc.Name) == "" {
		return nil, domain.ErrMissingInput
	}

	format := DetectFormat(doc.Name)
	if format == domain.FormatUnknown {
		return nil, fmt.Errorf("extract %q: %w", doc.Name, domain.ErrUnsupportedFormat)
	}

	var (
		text  string
		units int
		err   error
	)
	switch format {
	case domain.FormatPDF:
		text, units, err = e.extractPDF(doc.Bytes)
	case domain.FormatDOCX:
		text, units, err = e.extractDOCX(doc.Bytes)
	case domain.FormatPPTX:
		text, units, err = e.extractPPTX(doc.Bytes)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w: %v", format, domain.ErrUnreadableDocument, err)
	}

	text = sanitizeText(text)
	e.logger.Debug("Document extracted", "format", string(format), "units", units, "chars", len(text))

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("extract %s: %w", format, domain.ErrEmptyContent)
	}

	return &domain.ExtractedText{
		Format: format,
		Text:   text,
		Units:  units,
	}, nil
}

func (e *DocumentExtractor) extractPDF(b []byte) (string, int, error) {
	pages, err := e.pdf.PageTexts(b)
	if err != nil {
		return "", 0, err
	}
	var sb strings.Builder
	units := 0
	for _, page := range pages {
		if strings.TrimSpace(page) != "" {
			units++
		}
		sb.WriteString(page)
	}
	return sb.String(), units, nil
}

func (e *DocumentExtractor) extractDOCX(b []byte) (string, int, error) {
	paragraphs, err := docxParagraphs(b)
	if err != nil {
		return "", 0, err
	}
	return strings.Join(paragraphs, "\n"), countNonBlank(paragraphs), nil
}

func (e *DocumentExtractor) extractPPTX(b []byte) (string, int, error) {
	slides, err := pptxSlides(b)
	if err != nil {
		return "", 0, err
	}
	var shapes []string
	for _, slide := range slides {
		shapes = append(shapes, slide...)
	}
	return strings.Join(shapes, "\n"), len(shapes), nil
}

func countNonBlank(items []string) int {
	n := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// sanitizeText drops invalid UTF-8, NUL and non-whitespace control
// characters so the text is safe to embed in a prompt and in JSON.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// control character
		case r >= 0xD800 && r <= 0xDFFF:
			// surrogate
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
