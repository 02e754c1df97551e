package theseed

import "time"

// Document is a read-only snapshot returned by Read. Presence and content
// are orthogonal: a missing document is a snapshot with Exists=false, not
// an error.
type Document struct {
	Title    string `json:"title"`
	Exists   bool   `json:"exists"`
	Content  string `json:"content"`
	Revision string `json:"revision,omitempty"`
}

// EditTicket is the result of a successful Begin. It is owned exclusively
// by the caller between Begin and Submit, valid only for the title it was
// issued for, and single-use: after a successful Submit the ticket is spent
// and further Submit calls fail with TokenExpiredError. Tickets are never
// persisted across process restarts.
type EditTicket struct {
	Title    string
	Exists   bool
	Token    string
	Content  string
	Revision string

	spent bool
}

// EditOutcome is the result of a successful Submit. Immutable once returned.
type EditOutcome struct {
	Title     string
	Revision  int
	Timestamp time.Time
}

// BacklinkArgs selects and paginates a backlink query. From and Until are
// both inclusive; supplying both at once is not well-defined by the server.
type BacklinkArgs struct {
	Title     string
	Namespace string
	Flag      BacklinkFlag
	From      string
	Until     string
}

// BacklinkResult is one page of a backlink query.
type BacklinkResult struct {
	Namespaces []NamespaceCount `json:"namespaces"`
	Backlinks  []Backlink       `json:"backlinks"`
	From       string           `json:"from,omitempty"`
	Until      string           `json:"until,omitempty"`
}

// NamespaceCount reports how many referring documents live in a namespace.
type NamespaceCount struct {
	Namespace string `json:"namespace"`
	Count     int    `json:"count"`
}

// Backlink is a single document referring to the queried title.
type Backlink struct {
	Document string `json:"document"`
	Flags    string `json:"flags"`
}

// Discussion statuses reported by the server.
const (
	DiscussionNormal = "normal"
	DiscussionClosed = "close"
	DiscussionPaused = "pause"
)

// Discussion is one discussion thread on a document.
type Discussion struct {
	Slug      string    `json:"slug"`
	Topic     string    `json:"topic"`
	UpdatedAt time.Time `json:"updated_date"`
	Status    string    `json:"status"`
}

// Wire shapes. The server defines these; fields beyond the documented
// minimum are optional and tolerated when absent.

type editGetBody struct {
	Text     string `json:"text"`
	Exists   bool   `json:"exists"`
	Token    string `json:"token"`
	Revision string `json:"revision,omitempty"`
}

type editPostBody struct {
	Text  string `json:"text"`
	Log   string `json:"log"`
	Token string `json:"token"`
}

type editPostResult struct {
	Status    string `json:"status"`
	Rev       int    `json:"rev"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type apiErrorBody struct {
	ErrorCode  string   `json:"error_code"`
	Message    string   `json:"message"`
	RetryAfter *float64 `json:"retry_after,omitempty"`
	Field      string   `json:"field,omitempty"`
}

type backlinkBody struct {
	Namespaces []NamespaceCount `json:"namespaces"`
	Backlinks  []Backlink       `json:"backlinks"`
	From       *string          `json:"from"`
	Until      *string          `json:"until"`
}

type discussionBody struct {
	Slug        string  `json:"slug"`
	Topic       string  `json:"topic"`
	UpdatedDate float64 `json:"updated_date"`
	Status      string  `json:"status"`
}
