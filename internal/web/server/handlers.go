package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/initforge/initforge/internal/convert"
	"github.com/initforge/initforge/internal/metadata"
	"github.com/initforge/initforge/internal/project"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error  ErrorDetail `json:"error"`
	Status int         `json:"status"`
}

// ErrorDetail carries the error code and the user-facing message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NewRouter builds the HTTP API: catalog serving, request conversion and a
// health probe. Conversion failures map to 400 with the validation message
// passed through verbatim.
func NewRouter(registry *metadata.Registry, converter *convert.Converter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Get("/metadata", handleMetadata(registry))
	r.Post("/projects", handleConvert(registry, converter, logger))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleMetadata(registry *metadata.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, registry.Current())
	}
}

func handleConvert(registry *metadata.Registry, converter *convert.Converter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := registry.Current()

		req := project.NewRequest(catalog)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, ErrorDetail{
				Code:    "MALFORMED_BODY",
				Message: "request body is not valid JSON",
			})
			return
		}

		desc, err := converter.Convert(req, catalog)
		if err != nil {
			var invalid *convert.InvalidRequestError
			if errors.As(err, &invalid) {
				writeError(w, http.StatusBadRequest, ErrorDetail{
					Code:    "INVALID_PROJECT_REQUEST",
					Message: invalid.Error(),
					Field:   string(invalid.Field),
				})
				return
			}
			logger.Error("conversion failed on catalog data", zap.Error(err))
			writeError(w, http.StatusInternalServerError, ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "internal error",
			})
			return
		}

		writeJSON(w, http.StatusOK, desc)
	}
}

// requestLogger logs one line per request with a generated request ID.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			w.Header().Set("X-Request-Id", requestID)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck // headers already sent
}

func writeError(w http.ResponseWriter, status int, detail ErrorDetail) {
	writeJSON(w, status, ErrorResponse{Error: detail, Status: status})
}
