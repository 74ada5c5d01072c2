package pkg

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Error kinds. Domain errors wrap one of these, so the API layer can pick
// the response status with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteErrorResponse writes err as a JSON error body. Unknown errors are
// logged and reported as a generic 500.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("internal error: %s", err)
		msg = "internal error"
	}
	WriteJSON(w, ErrorResponse{Error: msg}, status)
}

func WriteBadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, ErrorResponse{Error: msg}, http.StatusBadRequest)
}
