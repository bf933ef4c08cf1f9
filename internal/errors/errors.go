package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a failed call to the remote news API.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.StatusCode)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrArticleNotFound = &NotFoundError{Entity: "article"}
)

// Upstream Errors
var (
	ErrMalformedPayload = errors.New("malformed upstream payload")
	ErrAPIKeyMissing    = errors.New("login response did not contain an api_key")
)

// Authentication Errors
var (
	ErrTokenUnavailable = &AuthenticationError{Message: "authentication failed: unable to obtain API key from the news API"}
)

// Configuration Errors
var (
	ErrCredentialsMissing  = &ConfigurationError{Message: "news API credentials missing: NEWS_API_EMAIL or NEWS_API_PASSWORD"}
	ErrUnknownCacheBackend = &ConfigurationError{Message: "unknown cache backend"}
	ErrRedisURLMissing     = &ConfigurationError{Message: "CACHE_REDIS_URL is required for the redis cache backend"}
	ErrInvalidTokenSecret  = &ConfigurationError{Message: "CACHE_TOKEN_SECRET must be a base64 encoded 32-byte value"}
)

// Validation Errors
var (
	ErrMissingSearchQuery = &ValidationError{Field: "q", Message: "Masukkan kata kunci untuk pencarian."}
	ErrMissingArticleIDs  = &ValidationError{Field: "ids", Message: "at least one article id is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// UpstreamStatus returns the HTTP status carried by an UpstreamError, or 0
func UpstreamStatus(err error) int {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode
	}
	return 0
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamStatusError creates an UpstreamError for a non-success HTTP response
func NewUpstreamStatusError(op string, statusCode int, body string) error {
	return &UpstreamError{Op: op, StatusCode: statusCode, Body: body}
}

// NewUpstreamTransportError creates an UpstreamError for a request that never got a response
func NewUpstreamTransportError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
