package theseed

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Response is the raw result of one HTTP round trip: status code, headers,
// and the fully read body. Interpretation happens in the decode layer, not
// in the transport.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Transport performs one authenticated request against the wiki server.
// Implementations attach the credential, never retry, and never interpret
// status codes. Cancellation and timeouts are the transport's concern.
type Transport interface {
	Send(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error)
}

// httpTransport is the default Transport over net/http.
type httpTransport struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

func newHTTPTransport(cfg *Config) *httpTransport {
	// Connection reuse matters for bots that edit in a loop.
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &httpTransport{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

func (t *httpTransport) Send(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error) {
	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}
