package blogsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service, carrying the status code
// and the error string out of the envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsForbidden reports whether err is an APIError with status 403.
func IsForbidden(err error) bool {
	return isStatus(err, http.StatusForbidden)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized)
}

func isStatus(err error, code int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == code
}

func parseErrorResponse(statusCode int, body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return &APIError{StatusCode: statusCode, Message: env.Error}
	}
	return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}
