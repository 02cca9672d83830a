package http

import (
	"net/http"

	"github.com/awalczyk/biascope"
)

// statusCodes maps domain error codes to HTTP status codes.
var statusCodes = map[string]int{
	biascope.EINVALID:      http.StatusBadRequest,
	biascope.EUNAUTHORIZED: http.StatusUnauthorized,
	biascope.ENOTFOUND:     http.StatusNotFound,
	biascope.ECONFLICT:     http.StatusConflict,
	biascope.EUNAVAILABLE:  http.StatusServiceUnavailable,
	biascope.EINTERNAL:     http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for a domain error code.
func ErrorStatusCode(code string) int {
	if status, ok := statusCodes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error writes an error response as `{"error": message}`. Internal errors
// are logged in full and reported generically.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := biascope.ErrorCode(err), biascope.ErrorMessage(err)

	if code == biascope.EINTERNAL {
		s.logger.Error("internal error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	s.writeJSON(w, ErrorStatusCode(code), map[string]string{"error": message})
}
