package jira

import (
	"context"
	"time"
)

// Client is the top-level entry point to the Jira REST API. Concrete
// implementations are constructed by the jiraclient package.
type Client interface {
	// Issues returns the issue resource client.
	Issues() IssuesClient
	// Comments returns the comment resource client.
	Comments() CommentsClient
	// Fields returns the field metadata resource client.
	Fields() FieldsClient
	// Search returns the JQL search resource client.
	Search() SearchClient

	// Close releases the underlying connection pool. It is idempotent; any
	// request after Close fails with ErrClientClosed.
	Close()
}

// IssuesClient provides access to issue operations.
type IssuesClient interface {
	// Get fetches a single issue by key or ID.
	Get(ctx context.Context, key string, opts *GetIssueOptions) (*Issue, error)
	// Edit updates issue fields. Field keys may be display names or IDs when
	// a names mapping has been fetched by a prior Get.
	Edit(ctx context.Context, key string, fields map[string]interface{}, opts *EditIssueOptions) error
	// ChangelogPage fetches one page of the issue changelog.
	ChangelogPage(ctx context.Context, key string, startAt, maxResults int) (*ChangelogPage, error)
	// Changelog fetches the full changelog, optionally filtered to entries
	// touching the named fields.
	Changelog(ctx context.Context, key string, fields ...string) ([]ChangelogEntry, error)
}

// CommentsClient provides access to issue comment operations.
type CommentsClient interface {
	// List fetches a page of comments on an issue.
	List(ctx context.Context, issueKey string, opts *ListCommentsOptions) (*CommentsPage, error)
	// Add posts a comment with an Atlassian Document Format body.
	Add(ctx context.Context, issueKey string, body *Document) (*Comment, error)
	// AddText posts a plain-text comment.
	AddText(ctx context.Context, issueKey, text string) (*Comment, error)
}

// FieldsClient provides access to field metadata.
type FieldsClient interface {
	// List returns all system and custom field definitions.
	List(ctx context.Context) ([]FieldDefinition, error)
	// NameByID resolves a field ID to its display name.
	NameByID(ctx context.Context, fieldID string) (string, error)
	// IDByName resolves a field display name to its ID.
	IDByName(ctx context.Context, name string) (string, error)
}

// SearchClient provides access to JQL search.
type SearchClient interface {
	// EnhancedSearch runs one page of an enhanced JQL search.
	EnhancedSearch(ctx context.Context, req *SearchRequest) (*SearchResult, error)
	// SearchAll collects issues across pages until the result set is
	// exhausted or maxIssues is reached (0 means no cap).
	SearchAll(ctx context.Context, jql string, fields []string, maxIssues int) ([]Issue, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a jira.Client.
//
// # Authentication
//
// Jira Cloud uses basic auth with an account email and API token; set
// Username and APIToken. Data Center personal access tokens are sent as a
// Bearer token; set AccessToken instead. When both are present the basic
// pair wins.
//
// # Retries
//
// Only rate-limited (429) responses are retried: other failures either
// indicate a request defect or a server condition retries will not fix.
// Backoff is exponential from RetryWaitMin, capped at RetryWaitMax, jittered,
// and honors the server's Retry-After hint when it is longer than the
// computed delay.
type Config struct {
	// BaseURL is the Jira instance URL (e.g. "https://example.atlassian.net").
	// jiraclient.New trims a trailing slash and adds "https://" when no
	// scheme is present.
	BaseURL string

	// Username is the account email used for basic auth.
	Username string
	// APIToken is the API token paired with Username.
	APIToken string
	// AccessToken is a personal access token sent as a Bearer token.
	AccessToken string

	// RetryMax is the maximum number of retries after a 429. Defaults to 3.
	// Zero disables retries; a 429 then fails immediately with a
	// RetryExhaustedError.
	RetryMax *int
	// RetryWaitMin is the initial backoff delay. Defaults to 1s.
	RetryWaitMin time.Duration
	// RetryWaitMax caps the backoff delay. Defaults to 60s.
	RetryWaitMax time.Duration

	// HTTPTimeout bounds each attempt. Per-call deadlines should generally
	// be set through the context instead.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables verbose request/response logging when Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// Cache is an optional response cache used for near-static resources
	// (field metadata). Nil disables caching.
	Cache Cache
}
