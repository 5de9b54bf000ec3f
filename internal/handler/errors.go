package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pkordes/trip-registrations/internal/domain"
)

// internalErrorMessage is returned for every unexpected failure. The id lets
// support find the full error in the server log.
const internalErrorMessage = "Something went wrong on our end. Please try again later or contact support if the issue persists. (Error ID: %s)"

// errorResponse is the body of every error response.
type errorResponse struct {
	Message string `json:"message"`
}

// requestError is a problem with the HTTP request itself, found before any
// command is dispatched.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func badRequest(format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

// writeError maps err to a status and an errorResponse:
//
//	*requestError                            its own status
//	*domain.RegistrationLimitExceededError   400
//	*domain.InputError                       400
//	*domain.NotFoundError                    404
//	domain.ErrUnauthorized                   401
//	anything else                            500 with a correlation id
//
// Client errors are logged at debug level; 500s are logged at error level
// with the id that is also sent to the caller.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		reqErr   *requestError
		limitErr *domain.RegistrationLimitExceededError
		inputErr *domain.InputError
		notFound *domain.NotFoundError
	)

	status := http.StatusInternalServerError
	message := ""
	switch {
	case errors.As(err, &reqErr):
		status, message = reqErr.status, reqErr.message
	case errors.As(err, &limitErr):
		status, message = http.StatusBadRequest, limitErr.Error()
	case errors.As(err, &inputErr):
		status, message = http.StatusBadRequest, inputErr.Message
	case errors.As(err, &notFound):
		status, message = http.StatusNotFound, notFound.Message
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = http.StatusUnauthorized, err.Error()
	}

	if status != http.StatusInternalServerError {
		s.logger.DebugContext(r.Context(), "request rejected",
			"status", status,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSON(w, status, errorResponse{Message: message})
		return
	}

	errorID := s.newErrorID()
	s.logger.ErrorContext(r.Context(), "unhandled error",
		"error_id", errorID.String(),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, status, errorResponse{Message: fmt.Sprintf(internalErrorMessage, errorID)})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads the request body into dst. A body over the configured limit
// becomes 413; anything else unreadable becomes 400.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return badRequest("Request body is required.")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &requestError{
				status:  http.StatusRequestEntityTooLarge,
				message: fmt.Sprintf("Request body exceeds %d bytes.", tooLarge.Limit),
			}
		}
		return badRequest("Request body is not valid JSON: %v", err)
	}
	return nil
}
