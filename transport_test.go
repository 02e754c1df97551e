package theseed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func newTestTransport(serverURL string) *httpTransport {
	return newHTTPTransport(&Config{
		BaseURL:   serverURL,
		Token:     "secret-token",
		Timeout:   5 * time.Second,
		UserAgent: "TestClient/1.0",
	})
}

func TestHTTPTransport_AttachesCredential(t *testing.T) {
	var gotAuth, gotUA, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		rw.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	resp, err := transport.Send(context.Background(), http.MethodPost, "/edit/Doc", nil, []byte(`{}`))
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d", resp.Status)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotUA != "TestClient/1.0" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestHTTPTransport_NoContentTypeOnGET(t *testing.T) {
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)
	if _, err := transport.Send(context.Background(), http.MethodGet, "/edit/Doc", nil, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if gotContentType != "" {
		t.Errorf("Content-Type = %q, want none on a bodiless GET", gotContentType)
	}
}

func TestHTTPTransport_QueryEncoding(t *testing.T) {
	var gotRawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	query := url.Values{}
	query.Set("namespace", "문서")
	query.Set("flag", "9")
	if _, err := transport.Send(context.Background(), http.MethodGet, "/backlink/Doc", query, nil); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	parsed, err := url.ParseQuery(gotRawQuery)
	if err != nil {
		t.Fatalf("server saw unparseable query %q: %v", gotRawQuery, err)
	}
	if parsed.Get("namespace") != "문서" || parsed.Get("flag") != "9" {
		t.Errorf("query round-tripped as %v", parsed)
	}
}

func TestHTTPTransport_NeverRetries(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	transport := newTestTransport(server.URL)

	resp, err := transport.Send(context.Background(), http.MethodGet, "/edit/Doc", nil, nil)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d; the transport must hand back raw status codes", resp.Status)
	}
	if calls.Load() != 1 {
		t.Errorf("server saw %d requests, want 1 (the transport never retries)", calls.Load())
	}
}

func TestHTTPTransport_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	transport := newTestTransport(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := transport.Send(ctx, http.MethodGet, "/edit/Doc", nil, nil)
	if err == nil {
		t.Fatal("expected an error once the context deadline passed")
	}
}
