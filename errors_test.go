package theseed

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
		ok   bool
	}{
		{"auth", &AuthError{Operation: "begin", StatusCode: 403}, CodeUnauthorized, true},
		{"not found", &NotFoundError{Title: "X"}, CodeNotFound, true},
		{"conflict", &ConflictError{Title: "X"}, CodeEditConflict, true},
		{"token expired", &TokenExpiredError{Title: "X"}, CodeTokenExpired, true},
		{"rate limited", &RateLimitError{RetryAfter: time.Second}, CodeRateLimited, true},
		{"validation", &ValidationError{Field: "title"}, CodeValidationFailed, true},
		{"server", &ServerError{StatusCode: 500}, CodeServerError, true},
		{"transport", &TransportError{Operation: "begin", Err: errors.New("refused")}, CodeTransportError, true},
		{"wrapped", fmt.Errorf("outer: %w", &ConflictError{Title: "X"}), CodeEditConflict, true},
		{"foreign error", errors.New("plain"), "", false},
		{"nil-ish", fmt.Errorf("no api error inside"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeOf(tt.err)
			if ok != tt.ok || code != tt.want {
				t.Errorf("CodeOf = (%q, %v), want (%q, %v)", code, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &TransportError{Operation: "submit", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is must reach the transport cause")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("Error() = %q, want the cause included", err.Error())
	}
}

func TestServerError_TruncatesLongBody(t *testing.T) {
	err := &ServerError{StatusCode: 502, Body: strings.Repeat("x", 5000)}
	msg := err.Error()
	if len(msg) > 300 {
		t.Errorf("Error() is %d chars; long bodies must be truncated for display", len(msg))
	}
	if err.Body != strings.Repeat("x", 5000) {
		t.Error("the Body field itself must keep the full payload for diagnostics")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&TokenExpiredError{Title: "Doc"}, "call Begin again"},
		{&ConflictError{Title: "Doc"}, "edit conflict"},
		{&RateLimitError{Operation: "submit", RetryAfter: 3 * time.Second}, "retry after 3s"},
		{&ValidationError{Field: "title", Message: "too long"}, "validation failed for title"},
		{&NotFoundError{Title: "Gone"}, `"Gone"`},
		{&AuthError{Operation: "begin", StatusCode: 401}, "permission denied"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); !strings.Contains(got, tt.want) {
			t.Errorf("%T.Error() = %q, want substring %q", tt.err, got, tt.want)
		}
	}
}

func TestDefaultErrorCodes_CoverTaxonomy(t *testing.T) {
	seen := make(map[ErrorCode]bool)
	for _, code := range defaultErrorCodes {
		seen[code] = true
	}
	for _, required := range []ErrorCode{
		CodeUnauthorized,
		CodeNotFound,
		CodeEditConflict,
		CodeTokenExpired,
		CodeRateLimited,
		CodeValidationFailed,
	} {
		if !seen[required] {
			t.Errorf("no wire code maps to %s", required)
		}
	}
}
