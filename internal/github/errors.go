package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v67/github"
)

// ErrorType represents the type of a GitHub API failure.
type ErrorType int

const (
	// ErrorTypeAuthentication indicates the API rejected the token (401/403)
	ErrorTypeAuthentication ErrorType = iota
	// ErrorTypeNotFound indicates the target object does not exist (404)
	ErrorTypeNotFound
	// ErrorTypeTransport indicates a network-level failure before any response
	ErrorTypeTransport
	// ErrorTypeAPI indicates any other non-2xx API response
	ErrorTypeAPI
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeAuthentication:
		return "Authentication"
	case ErrorTypeNotFound:
		return "NotFound"
	case ErrorTypeTransport:
		return "Transport"
	default:
		return "API"
	}
}

// APIError represents a structured GitHub API error. StatusCode is zero
// for transport failures, where no response was received.
type APIError struct {
	Type        ErrorType
	StatusCode  int
	Message     string
	OriginalErr error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GitHub API error [%s] (HTTP %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("GitHub API error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the original error.
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// IsAuthenticationError checks if the error is an authentication error.
func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuthentication
	}
	return false
}

// IsNotFoundError checks if the error is a not found error.
func IsNotFoundError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsTransportError checks if the error is a network-level error.
func IsTransportError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeTransport
	}
	return false
}

// classifyError converts an error returned by the go-github client into a
// structured APIError. The API's message is carried verbatim; nothing is
// retried or reinterpreted.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		statusCode := 0
		if errResp.Response != nil {
			statusCode = errResp.Response.StatusCode
		}

		errType := ErrorTypeAPI
		switch {
		case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
			errType = ErrorTypeAuthentication
		case statusCode == http.StatusNotFound:
			errType = ErrorTypeNotFound
		}

		return &APIError{
			Type:        errType,
			StatusCode:  statusCode,
			Message:     errResp.Message,
			OriginalErr: err,
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		statusCode := 0
		if rateErr.Response != nil {
			statusCode = rateErr.Response.StatusCode
		}
		return &APIError{
			Type:        ErrorTypeAPI,
			StatusCode:  statusCode,
			Message:     rateErr.Message,
			OriginalErr: err,
		}
	}

	// No response was received: timeout, DNS failure, connection refused.
	return &APIError{
		Type:        ErrorTypeTransport,
		Message:     err.Error(),
		OriginalErr: err,
	}
}
