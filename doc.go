// Package theseed is a client library for the TheSeed wiki-engine HTTP API,
// used by NamuWiki and other TheSeed-based sites.
//
// The library is built around the edit-session protocol: Begin fetches an
// edit token together with the document's current state, the caller prepares
// new content, and Submit commits it with that token. Tokens are short-lived
// and single-use; the server rejects a reused or expired token, which this
// library surfaces as a TokenExpiredError so the caller can Begin again.
//
// Basic usage:
//
//	cfg, err := theseed.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	client := theseed.NewClient(cfg, slog.Default())
//
//	ticket, err := client.Begin(ctx, "Some Document")
//	if err != nil {
//		log.Fatal(err)
//	}
//	outcome, err := client.Submit(ctx, ticket, "new content", "fix typo")
//
// Every failed operation returns exactly one variant of the error taxonomy
// (AuthError, NotFoundError, ConflictError, TokenExpiredError,
// RateLimitError, ValidationError, ServerError, TransportError). The library
// never retries and never sleeps on its own: RateLimitError carries the
// server's retry-after hint and returns control immediately, and recovering
// from ConflictError or TokenExpiredError requires a fresh Begin, a decision
// only the caller can make safely.
//
// The Client is safe for concurrent use from multiple goroutines.
package theseed
