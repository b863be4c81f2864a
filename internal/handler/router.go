package handler

import (
	"net/http"

	"doc-digest/internal/domain"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "doc-digest"

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(digestHandler *DigestHandler, allowedOrigins []string, logger domain.Logger) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestIDMiddleware)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger(logger))
	router.Use(Recoverer(logger))

	// Health check endpoint
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	registerDigestRoutes(router, digestHandler)

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	registerDigestRoutes(api, digestHandler)

	return newCORS(allowedOrigins).Handler(router)
}

func registerDigestRoutes(r *mux.Router, h *DigestHandler) {
	r.HandleFunc("/summary", h.Summary).Methods(http.MethodPost)
	r.HandleFunc("/qa", h.QA).Methods(http.MethodPost)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": ServiceName})
}

// newCORS configures CORS. Credentials are only allowed with an explicit
// origin list since browsers reject them alongside a wildcard.
func newCORS(allowedOrigins []string) *cors.Cors {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	wildcard := false
	for _, o := range allowedOrigins {
		if o == "*" {
			wildcard = true
			break
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			RequestIDHeader,
		},
		ExposedHeaders: []string{
			RequestIDHeader,
		},
		AllowCredentials: !wildcard,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}
