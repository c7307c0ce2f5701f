package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kwokm/mk-todo/internal/domain"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 64 << 10

// errInvalidBody marks a body that is not the expected JSON object.
var errInvalidBody = errors.New("invalid request body")

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// SuccessResponse acknowledges a mutation that has no entity to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

var okResponse = SuccessResponse{Success: true}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads a single JSON object into v. An empty body leaves v at
// its zero value so that field validation reports what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	if dec.More() {
		return errInvalidBody
	}
	return nil
}

// handleError maps service errors to HTTP responses. Anything that is not a
// validation or not-found error is logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, errInvalidBody):
		writeError(w, http.StatusBadRequest, errInvalidBody.Error())
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Fields: ve.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// validatePath checks path parameters against the identifier grammar.
func validatePath(r *http.Request, names ...string) error {
	var errs []domain.FieldError
	for _, name := range names {
		if fe := domain.ValidateID(name, r.PathValue(name)); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
