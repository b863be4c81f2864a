// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"doc-digest/internal/domain"
	"doc-digest/internal/service"
	apperrors "doc-digest/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// multipartOverhead is the slack allowed on top of the file limit for form
// boundaries and the other fields.
const multipartOverhead = 1 << 20

// maxMemory caps how much of a multipart form is held in memory; the rest
// spills to temporary files.
const maxMemory = 32 << 20

// digestForm is the validated view of an upload request.
type digestForm struct {
	Filename    string `validate:"required"`
	DetailLevel string `validate:"omitempty,oneof=small medium large"`
}

// DigestHandler serves the summary and Q/A upload endpoints.
type DigestHandler struct {
	digestService domain.DigestService
	maxFileSize   int64
	logger        domain.Logger
	validate      *validator.Validate
}

// NewDigestHandler creates a new digest handler. A non-positive maxFileSize
// disables the size limit.
func NewDigestHandler(digestService domain.DigestService, maxFileSize int64, logger domain.Logger) *DigestHandler {
	return &DigestHandler{
		digestService: digestService,
		maxFileSize:   maxFileSize,
		logger:        logger,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Summary handles POST /summary
func (h *DigestHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.TaskSummary, "summary_type")
}

// QA handles POST /qa
func (h *DigestHandler) QA(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.TaskQA, "qa_type")
}

func (h *DigestHandler) serve(w http.ResponseWriter, r *http.Request, task domain.TaskKind, levelAlias string) {
	doc, level, err := h.readUpload(w, r, levelAlias)
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	var result *domain.DigestResult
	switch task {
	case domain.TaskQA:
		result, err = h.digestService.Answerize(r.Context(), doc, level)
	default:
		result, err = h.digestService.Summarize(r.Context(), doc, level)
	}
	if err != nil {
		writeAppError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{string(task): result.Markup})
}

// readUpload pulls the file and detail level out of the multipart form. The
// format is checked before the file body is read.
func (h *DigestHandler) readUpload(w http.ResponseWriter, r *http.Request, levelAlias string) (*domain.Document, domain.DetailLevel, error) {
	if h.maxFileSize > 0 {
		if r.ContentLength > h.maxFileSize+multipartOverhead {
			return nil, "", apperrors.NewTooLargeError(h.maxFileSize, domain.ErrFileTooLarge)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", apperrors.NewTooLargeError(h.maxFileSize, domain.ErrFileTooLarge)
		}
		if !errors.Is(err, http.ErrNotMultipart) && !errors.Is(err, http.ErrMissingBoundary) {
			return nil, "", apperrors.NewValidationError("Invalid multipart form", err)
		}
		// Not a multipart body at all: report it as a missing file below.
	}
	// Spilled file parts live in the temp dir. net/http only cleans up the
	// form of the request it created, not of copies made by middleware.
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("form file: %w", domain.ErrMissingInput)
	}
	defer file.Close()

	level := r.FormValue("detail_level")
	if strings.TrimSpace(level) == "" {
		level = r.FormValue(levelAlias)
	}

	form := digestForm{
		Filename:    sanitizeFilename(header.Filename),
		DetailLevel: strings.ToLower(strings.TrimSpace(level)),
	}
	if err := h.validate.Struct(form); err != nil {
		return nil, "", formError(err)
	}

	if service.DetectFormat(form.Filename) == domain.FormatUnknown {
		return nil, "", fmt.Errorf("upload %q: %w", form.Filename, domain.ErrUnsupportedFormat)
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		return nil, "", apperrors.NewTooLargeError(h.maxFileSize, domain.ErrFileTooLarge)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}

	detail, err := domain.ParseDetailLevel(form.DetailLevel)
	if err != nil {
		return nil, "", err
	}

	return &domain.Document{Name: form.Filename, Bytes: data}, detail, nil
}

// formError converts the first failed validation into a domain failure kind.
func formError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Filename":
			return fmt.Errorf("filename: %w", domain.ErrMissingInput)
		case "DetailLevel":
			return &domain.ValidationError{
				Field:   "detail_level",
				Message: fmt.Sprintf("invalid detail level %q", verrs[0].Value()),
				Err:     domain.ErrInvalidDetailLevel,
			}
		}
	}
	return apperrors.NewValidationError("Invalid request", err)
}

// sanitizeFilename strips any path components from a client-supplied name.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := strings.TrimSpace(filepath.Base(name))
	if base == "." || base == "/" || base == string(filepath.Separator) {
		return ""
	}
	return base
}
