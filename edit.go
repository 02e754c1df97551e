package theseed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// The edit-session protocol: Begin acquires a short-lived, single-use edit
// token along with the document's current state; Submit commits new content
// with that token. There is no automatic transition back after a failure —
// the caller explicitly restarts with a fresh Begin.

// Begin opens an edit session for title. A missing document is not an
// error: the returned ticket carries Exists=false and a token that can be
// used to create the document. Begin has no side effects beyond the
// network call.
func (c *Client) Begin(ctx context.Context, title string) (*EditTicket, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "document title must not be empty"}
	}

	resp, err := c.send(ctx, "begin", http.MethodGet, "/edit/"+url.PathEscape(title), nil, nil)
	if err != nil {
		return nil, err
	}

	ticket, err := decodeBegin(c.config, title, resp)
	if err != nil {
		countFailure(err)
		return nil, err
	}

	c.logger.Debug("edit session opened",
		"title", title,
		"exists", ticket.Exists)

	return ticket, nil
}

// Submit commits content under the ticket's token with a human-readable
// summary (may be empty, subject to server policy). On success the ticket
// is spent; a second Submit with the same ticket fails with
// TokenExpiredError without touching the network. Submit never retries:
// after a ConflictError or TokenExpiredError only the caller can decide
// whether re-reading and re-applying is safe.
func (c *Client) Submit(ctx context.Context, ticket *EditTicket, content, summary string) (*EditOutcome, error) {
	if ticket == nil || ticket.Token == "" {
		return nil, &ValidationError{Field: "ticket", Message: "a ticket from Begin is required"}
	}
	if ticket.spent {
		return nil, &TokenExpiredError{Title: ticket.Title}
	}

	body, err := json.Marshal(editPostBody{
		Text:  content,
		Log:   summary,
		Token: ticket.Token,
	})
	if err != nil {
		return nil, &ValidationError{Field: "content", Message: err.Error()}
	}

	resp, err := c.send(ctx, "submit", http.MethodPost, "/edit/"+url.PathEscape(ticket.Title), nil, body)
	if err != nil {
		return nil, err
	}

	outcome, err := decodeSubmit(c.config, ticket.Title, resp)
	if err != nil {
		countFailure(err)
		return nil, err
	}

	ticket.spent = true
	c.logger.Info("edit committed",
		"title", outcome.Title,
		"revision", outcome.Revision)

	return outcome, nil
}
