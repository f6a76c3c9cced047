package adminclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoPort is returned by FromLocation when the URL has neither an explicit
// port nor a scheme with a known default.
var ErrNoPort = errors.New("no port for location")

// StatusError is returned for non-2xx gateway responses.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Message returns the "message" field of a JSON error body, if any.
func (e *StatusError) Message() string {
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(e.Body, &body) == nil {
		return body.Message
	}
	return ""
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest reports whether err is a 400 StatusError.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
