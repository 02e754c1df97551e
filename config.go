package theseed

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds TheSeed connection settings.
type Config struct {
	// BaseURL is the API root (e.g. https://namu.wiki/api). Required.
	BaseURL string

	// Token is the long-lived API credential. Required, and never logged.
	Token string

	// Timeout for a single HTTP round trip.
	Timeout time.Duration

	// UserAgent identifies the client to the wiki.
	UserAgent string

	// MinInterval is the minimum spacing between requests. Zero disables
	// pacing. NamuWiki's soft limit is one request per second.
	MinInterval time.Duration

	// MaxEditAttempts bounds how many Begin+Submit rounds Edit performs
	// when the server reports a conflict or an expired token.
	MaxEditAttempts int

	// ErrorCodes extends or overrides the built-in mapping from server
	// error_code strings to taxonomy variants. The wire vocabulary is
	// server-defined, so deployments that observe different codes can
	// remap them here without forking the library.
	ErrorCodes map[string]ErrorCode
}

const (
	defaultTimeout         = 30 * time.Second
	defaultUserAgent       = "theseed-go/1.0 (https://github.com/iodine-wiki/theseed-go)"
	defaultMaxEditAttempts = 3
)

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("THESEED_URL")
	if baseURL == "" {
		return nil, errors.New("THESEED_URL environment variable is required")
	}

	token := os.Getenv("THESEED_TOKEN")
	if token == "" {
		return nil, errors.New("THESEED_TOKEN environment variable is required")
	}

	timeout := defaultTimeout
	if t := os.Getenv("THESEED_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	minInterval := time.Duration(0)
	if t := os.Getenv("THESEED_MIN_INTERVAL"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			minInterval = d
		}
	}

	maxAttempts := defaultMaxEditAttempts
	if r := os.Getenv("THESEED_MAX_EDIT_ATTEMPTS"); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n > 0 {
			maxAttempts = n
		}
	}

	userAgent := os.Getenv("THESEED_USER_AGENT")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Config{
		BaseURL:         strings.TrimRight(baseURL, "/"),
		Token:           token,
		Timeout:         timeout,
		UserAgent:       userAgent,
		MinInterval:     minInterval,
		MaxEditAttempts: maxAttempts,
	}, nil
}

// Validate reports whether the required fields are set.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("BaseURL is required")
	}
	if c.Token == "" {
		return errors.New("Token is required")
	}
	return nil
}

// errorCode resolves a server error_code string against the configured
// overrides first, then the built-in table.
func (c *Config) errorCode(wire string) (ErrorCode, bool) {
	if code, ok := c.ErrorCodes[wire]; ok {
		return code, true
	}
	code, ok := defaultErrorCodes[wire]
	return code, ok
}
