package handler

import (
	"encoding/json"
	"net/http"

	"doc-digest/internal/domain"
	apperrors "doc-digest/pkg/errors"

	"github.com/go-chi/chi/v5/middleware"
)

// GetRequestID extracts the request id assigned by RequestIDMiddleware.
func GetRequestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err to a status and stable message, logs it and
// writes the error body. Client errors log at warn, the rest at error.
func writeAppError(w http.ResponseWriter, r *http.Request, logger domain.Logger, err error) {
	appErr := apperrors.FromDomain(err)
	status := apperrors.GetStatusCode(appErr)

	fields := []interface{}{
		"type", appErr.Type,
		"status", status,
		"path", r.URL.Path,
		"request_id", GetRequestID(r),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", err, fields...)
	} else {
		logger.Warn("request rejected", append(fields, "reason", err.Error())...)
	}

	writeError(w, status, appErr.Message)
}
