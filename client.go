package theseed

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iodine-wiki/theseed-go/metrics"
)

// TracerName identifies this library's spans.
const TracerName = "github.com/iodine-wiki/theseed-go"

// Client is the user-facing entry point. It composes a Transport with the
// edit-session protocol and the simple read operations. All methods are
// synchronous: each call blocks for one HTTP round trip and returns a typed
// result or exactly one error taxonomy variant.
//
// The Client holds no mutable state between calls beyond the optional
// request pacer, so concurrent use from multiple goroutines is safe.
type Client struct {
	config    *Config
	transport Transport
	logger    *slog.Logger
	limiter   *Limiter
	tracer    trace.Tracer
}

// NewClient builds a Client with the default HTTP transport. The credential
// in cfg.Token is attached to every request and never logged.
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	return NewClientWithTransport(cfg, newHTTPTransport(cfg), logger)
}

// NewClientWithTransport builds a Client around an externally owned
// Transport. Useful for tests and for callers that manage connection
// pooling or proxying themselves.
func NewClientWithTransport(cfg *Config, transport Transport, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *Limiter
	if cfg.MinInterval > 0 {
		limiter = NewLimiter(cfg.MinInterval)
	}

	return &Client{
		config:    cfg,
		transport: transport,
		logger:    logger,
		limiter:   limiter,
		tracer:    otel.Tracer(TracerName),
	}
}

// send performs one paced, instrumented round trip. Transport-level
// failures come back as TransportError; everything else is a raw Response
// for the decode layer.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body []byte) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Operation: op, Err: err}
		}
	}

	ctx, span := c.tracer.Start(ctx, "theseed."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("theseed.operation", op),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.transport.Send(ctx, method, path, query, body)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.ObserveRequest(op, 0, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.logger.Warn("request failed before a response arrived",
			"operation", op,
			"error", err)
		return nil, &TransportError{Operation: op, Err: err}
	}

	metrics.ObserveRequest(op, resp.Status, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.Status))
	if resp.Status >= 400 {
		span.SetStatus(codes.Error, "server rejected request")
	}

	return resp, nil
}

// countFailure feeds the protocol-level failure counters.
func countFailure(err error) {
	var conflict *ConflictError
	var expired *TokenExpiredError
	var limited *RateLimitError

	switch {
	case errors.As(err, &conflict):
		metrics.RecordEditConflict()
	case errors.As(err, &expired):
		metrics.RecordTokenExpiry()
	case errors.As(err, &limited):
		metrics.RecordRateLimited()
	}
}

// TransformFunc produces new document content from the current state.
// exists is false when the document does not exist yet; current is empty
// in that case.
type TransformFunc func(current string, exists bool) (string, error)

// Edit composes Begin, transform, and Submit, retrying the whole round on
// ConflictError or TokenExpiredError up to Config.MaxEditAttempts times.
// It never retries on RateLimitError: honoring the wait hint requires a
// policy decision this facade does not make.
func (c *Client) Edit(ctx context.Context, title string, transform TransformFunc, summary string) (*EditOutcome, error) {
	attempts := c.config.MaxEditAttempts
	if attempts <= 0 {
		attempts = defaultMaxEditAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		ticket, err := c.Begin(ctx, title)
		if err != nil {
			return nil, err
		}

		content, err := transform(ticket.Content, ticket.Exists)
		if err != nil {
			return nil, err
		}

		outcome, err := c.Submit(ctx, ticket, content, summary)
		if err == nil {
			return outcome, nil
		}

		var conflict *ConflictError
		var expired *TokenExpiredError
		if !errors.As(err, &conflict) && !errors.As(err, &expired) {
			return nil, err
		}

		lastErr = err
		c.logger.Info("edit attempt lost the race, restarting",
			"title", title,
			"attempt", attempt,
			"max_attempts", attempts)
	}

	return nil, lastErr
}
