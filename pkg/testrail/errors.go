package testrail

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrNoMoreItems     = errors.New("no more items")
)

// APIError represents an error answer from the TestRail API: any HTTP status
// outside [200,300). Message is the parsed "error" field when the service
// sent its usual JSON shape; Body is always the raw response text.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
	Body       string `json:"body"        yaml:"body"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("testrail: HTTP %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("testrail: HTTP %d: %s", e.StatusCode, e.Body)
}

// NetworkError represents a transport-level failure (DNS, connection
// refused, TLS handshake) raised before any HTTP status was obtained.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("testrail: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsUnauthorized checks if the error is an authentication failure (HTTP
// 401): the email/API key pair was rejected.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a permission failure (HTTP 403): valid
// credentials with an insufficient role. Group and user listings commonly
// answer this for non-admin accounts.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFound checks if the error is an unknown-id failure (HTTP 404).
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsNetwork checks if the error is a transport-level failure with no HTTP
// status.
func IsNetwork(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
