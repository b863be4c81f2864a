package service

import (
	"bytes"
	"fmt"
	"strings"

	"doc-digest/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// PDF engine names accepted by NewPageReader.
const (
	PDFEngineFitz = "fitz"
	PDFEnginePure = "pure"
)

// PageReader renders every page of a PDF to plain text, in page order.
type PageReader interface {
	PageTexts(pdfBytes []byte) ([]string, error)
}

// NewPageReader returns the PDF engine selected by name. Unknown names fall
// back to MuPDF.
func NewPageReader(engine string, logger domain.Logger) PageReader {
	if strings.EqualFold(engine, PDFEnginePure) {
		return &PurePageReader{logger: logger}
	}
	return &FitzPageReader{logger: logger}
}

// FitzPageReader extracts page text with MuPDF.
type FitzPageReader struct {
	logger domain.Logger
}

// PageTexts opens the PDF from memory and returns one string per page.
// A page that fails to render is logged and contributes an empty string.
func (p *FitzPageReader) PageTexts(pdfBytes []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// PurePageReader extracts page text without cgo.
type PurePageReader struct {
	logger domain.Logger
}

// PageTexts returns one string per page. Pages without a content stream
// yield an empty string.
func (p *PurePageReader) PageTexts(pdfBytes []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum, "total", numPages, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
