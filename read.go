package theseed

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Read fetches a snapshot of the document without opening an edit session.
// The caller sees presence and content only; no token changes hands.
func (c *Client) Read(ctx context.Context, title string) (*Document, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "document title must not be empty"}
	}

	resp, err := c.send(ctx, "read", http.MethodGet, "/edit/"+url.PathEscape(title), nil, nil)
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(c.config, title, resp)
	if err != nil {
		countFailure(err)
		return nil, err
	}
	return doc, nil
}

// Backlinks retrieves documents referring to args.Title, optionally
// filtered by namespace and link flag and paginated with From/Until.
func (c *Client) Backlinks(ctx context.Context, args BacklinkArgs) (*BacklinkResult, error) {
	if args.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "document title must not be empty"}
	}

	query := url.Values{}
	if args.Namespace != "" {
		query.Set("namespace", args.Namespace)
	}
	if args.Flag != BacklinkAny {
		query.Set("flag", strconv.Itoa(int(args.Flag)))
	}
	if args.From != "" {
		query.Set("from", args.From)
	}
	if args.Until != "" {
		query.Set("until", args.Until)
	}

	resp, err := c.send(ctx, "backlink", http.MethodGet, "/backlink/"+url.PathEscape(args.Title), query, nil)
	if err != nil {
		return nil, err
	}

	result, err := decodeBacklinks(c.config, args.Title, resp)
	if err != nil {
		countFailure(err)
		return nil, err
	}
	return result, nil
}

// Discussions fetches the discussion threads open on a document.
func (c *Client) Discussions(ctx context.Context, title string) ([]Discussion, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "document title must not be empty"}
	}

	resp, err := c.send(ctx, "discuss", http.MethodGet, "/discuss/"+url.PathEscape(title), nil, nil)
	if err != nil {
		return nil, err
	}

	discussions, err := decodeDiscussions(c.config, title, resp)
	if err != nil {
		countFailure(err)
		return nil, err
	}
	return discussions, nil
}
