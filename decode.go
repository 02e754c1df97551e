package theseed

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"
)

// This file is the single decision point for turning a raw status/body pair
// into either a typed success value or one error taxonomy variant. Error
// mapping policy lives here and nowhere else.

func decodeBegin(cfg *Config, title string, resp *Response) (*EditTicket, error) {
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, decodeError(cfg, "begin", title, resp)
	}

	var body editGetBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}
	if body.Token == "" {
		// A begin response without a token cannot drive a submit.
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	return &EditTicket{
		Title:    title,
		Exists:   body.Exists,
		Token:    body.Token,
		Content:  body.Text,
		Revision: body.Revision,
	}, nil
}

func decodeSubmit(cfg *Config, title string, resp *Response) (*EditOutcome, error) {
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, decodeError(cfg, "submit", title, resp)
	}

	var body editPostResult
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	// Some deployments report failure conditions with a 200 status and an
	// error_code-shaped status field. Route those through the same table.
	if body.Status != "" && body.Status != "success" {
		if code, ok := cfg.errorCode(body.Status); ok {
			return nil, errorForCode(code, "submit", title, resp.Status, body.Status, 0)
		}
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	ts := time.Now()
	if body.Timestamp > 0 {
		ts = time.Unix(body.Timestamp, 0).UTC()
	}

	return &EditOutcome{
		Title:     title,
		Revision:  body.Rev,
		Timestamp: ts,
	}, nil
}

func decodeDocument(cfg *Config, title string, resp *Response) (*Document, error) {
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, decodeError(cfg, "read", title, resp)
	}

	var body editGetBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	return &Document{
		Title:    title,
		Exists:   body.Exists,
		Content:  body.Text,
		Revision: body.Revision,
	}, nil
}

func decodeBacklinks(cfg *Config, title string, resp *Response) (*BacklinkResult, error) {
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, decodeError(cfg, "backlink", title, resp)
	}

	var body backlinkBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	result := &BacklinkResult{
		Namespaces: body.Namespaces,
		Backlinks:  body.Backlinks,
	}
	if body.From != nil {
		result.From = *body.From
	}
	if body.Until != nil {
		result.Until = *body.Until
	}
	return result, nil
}

func decodeDiscussions(cfg *Config, title string, resp *Response) ([]Discussion, error) {
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, decodeError(cfg, "discuss", title, resp)
	}

	var items []discussionBody
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	discussions := make([]Discussion, 0, len(items))
	for _, item := range items {
		sec, frac := math.Modf(item.UpdatedDate)
		discussions = append(discussions, Discussion{
			Slug:      item.Slug,
			Topic:     item.Topic,
			UpdatedAt: time.Unix(int64(sec), int64(frac*1e9)).UTC(),
			Status:    item.Status,
		})
	}
	return discussions, nil
}

// decodeError maps a non-2xx response to exactly one taxonomy variant.
// A parseable {error_code, message, retry_after?} body wins; otherwise the
// HTTP status decides.
func decodeError(cfg *Config, op, title string, resp *Response) error {
	var body apiErrorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.ErrorCode != "" {
		if code, ok := cfg.errorCode(body.ErrorCode); ok {
			retry := retryAfterHint(body.RetryAfter, resp.Header)
			e := errorForCode(code, op, title, resp.Status, body.Message, retry)
			if v, isValidation := e.(*ValidationError); isValidation && body.Field != "" {
				v.Field = body.Field
			}
			return e
		}
		// Unknown vocabulary degrades to ServerError, body preserved.
		return &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}

	switch resp.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Operation: op, StatusCode: resp.Status}
	case http.StatusNotFound:
		return &NotFoundError{Title: title}
	case http.StatusConflict:
		return &ConflictError{Title: title}
	case http.StatusTooManyRequests:
		return &RateLimitError{Operation: op, RetryAfter: retryAfterHint(nil, resp.Header)}
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return &ValidationError{Message: string(resp.Body)}
	default:
		return &ServerError{StatusCode: resp.Status, Body: string(resp.Body)}
	}
}

// errorForCode builds the variant for a mapped error code.
func errorForCode(code ErrorCode, op, title string, status int, message string, retry time.Duration) error {
	switch code {
	case CodeUnauthorized:
		return &AuthError{Operation: op, StatusCode: status, Message: message}
	case CodeNotFound:
		return &NotFoundError{Title: title}
	case CodeEditConflict:
		return &ConflictError{Title: title, Message: message}
	case CodeTokenExpired:
		return &TokenExpiredError{Title: title}
	case CodeRateLimited:
		return &RateLimitError{Operation: op, RetryAfter: retry, Message: message}
	case CodeValidationFailed:
		return &ValidationError{Message: message}
	default:
		return &ServerError{StatusCode: status, Body: message}
	}
}

// retryAfterHint resolves the wait hint from the JSON body first, then the
// Retry-After header. Negative hints clamp to zero.
func retryAfterHint(bodyHint *float64, header http.Header) time.Duration {
	if bodyHint != nil {
		if *bodyHint <= 0 {
			return 0
		}
		return time.Duration(*bodyHint * float64(time.Second))
	}
	if h := header.Get("Retry-After"); h != "" {
		if seconds, err := strconv.Atoi(h); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 0
}
