package theseed

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies an error taxonomy variant for programmatic handling.
type ErrorCode string

const (
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeEditConflict     ErrorCode = "EDIT_CONFLICT"
	CodeTokenExpired     ErrorCode = "TOKEN_EXPIRED"
	CodeRateLimited      ErrorCode = "RATE_LIMITED"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeServerError      ErrorCode = "SERVER_ERROR"
	CodeTransportError   ErrorCode = "TRANSPORT_ERROR"
)

// APIError is implemented by every error the library returns from an
// operation. Code is stable across releases; Error text is not.
type APIError interface {
	error
	Code() ErrorCode
}

// CodeOf extracts the taxonomy code from err, unwrapping as needed.
// Returns false if err did not originate from this library.
func CodeOf(err error) (ErrorCode, bool) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code(), true
	}
	return "", false
}

// AuthError indicates the server refused the request for credential or
// permission reasons (401/403, or a permission error code in the body).
type AuthError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *AuthError) Code() ErrorCode { return CodeUnauthorized }

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: permission denied (status %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: permission denied (status %d)", e.Operation, e.StatusCode)
}

// NotFoundError indicates an operation that requires a pre-existing document
// was given a title that does not exist. Begin never returns this: a missing
// document is reported through EditTicket.Exists instead.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Code() ErrorCode { return CodeNotFound }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document not found: %q", e.Title)
}

// ConflictError indicates another edit landed between token issuance and
// submission. The caller decides whether to Begin again and re-apply.
type ConflictError struct {
	Title   string
	Message string
}

func (e *ConflictError) Code() ErrorCode { return CodeEditConflict }

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("edit conflict on %q: %s", e.Title, e.Message)
	}
	return fmt.Sprintf("edit conflict on %q: another edit landed first", e.Title)
}

// TokenExpiredError indicates the edit token was expired or already
// consumed. Recovery requires a fresh Begin; the library never does this
// automatically because a fresh token may reflect different current content.
type TokenExpiredError struct {
	Title string
}

func (e *TokenExpiredError) Code() ErrorCode { return CodeTokenExpired }

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("edit token for %q is expired or already used; call Begin again", e.Title)
}

// RateLimitError indicates the server throttled the request. RetryAfter is
// the server's wait hint, never negative. The library does not sleep on it.
type RateLimitError struct {
	Operation  string
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Code() ErrorCode { return CodeRateLimited }

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited, retry after %s", e.Operation, e.RetryAfter)
}

// ValidationError indicates the server rejected the request as malformed,
// e.g. a title violating character constraints or content exceeding the
// size limit. The client performs no local validation beyond non-emptiness,
// so these always carry the server's own message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Code() ErrorCode { return CodeValidationFailed }

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// ServerError is the catch-all for non-2xx responses that map to no other
// variant, and for 2xx responses whose body could not be decoded. The raw
// body is preserved for diagnostics, truncated for display.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Code() ErrorCode { return CodeServerError }

func (e *ServerError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, body)
}

// TransportError wraps a failure below the HTTP response level: DNS,
// connection reset, timeout. Always potentially retriable by the caller.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Code() ErrorCode { return CodeTransportError }

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// defaultErrorCodes maps TheSeed error_code strings to taxonomy variants.
// The exact vocabulary is server-defined, so deployments can extend or
// override this table through Config.ErrorCodes.
var defaultErrorCodes = map[string]ErrorCode{
	"permission_denied":  CodeUnauthorized,
	"invalid_api_token":  CodeUnauthorized,
	"document_not_found": CodeNotFound,
	"edit_conflict":      CodeEditConflict,
	"token_expired":      CodeTokenExpired,
	"invalid_token":      CodeTokenExpired,
	"rate_limited":       CodeRateLimited,
	"too_many_requests":  CodeRateLimited,
	"validation_failed":  CodeValidationFailed,
	"text_too_long":      CodeValidationFailed,
	"invalid_title":      CodeValidationFailed,
}
