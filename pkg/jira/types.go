package jira

import (
	"encoding/json"
)

// Issue represents a Jira issue.
type Issue struct {
	ID     string                     `json:"id"               yaml:"id"`
	Key    string                     `json:"key"              yaml:"key"`
	Self   string                     `json:"self,omitempty"   yaml:"self,omitempty"`
	Fields map[string]json.RawMessage `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Names maps field IDs to display names; populated when the request
	// expands "names".
	Names     map[string]string `json:"names,omitempty"     yaml:"names,omitempty"`
	Changelog *ChangelogPage    `json:"changelog,omitempty" yaml:"changelog,omitempty"`
}

// FieldID resolves a field display name or ID to the field ID using the
// expanded names mapping. Returns "" when the field is unknown.
func (i *Issue) FieldID(nameOrID string) string {
	for id, name := range i.Names {
		if id == nameOrID || name == nameOrID {
			return id
		}
	}

	return ""
}

// FieldValue returns the raw value of a field addressed by display name or
// ID, or nil when the field is absent.
func (i *Issue) FieldValue(nameOrID string) json.RawMessage {
	fieldID := i.FieldID(nameOrID)
	if fieldID == "" {
		fieldID = nameOrID
	}

	return i.Fields[fieldID]
}

// User represents a Jira user reference.
type User struct {
	AccountID    string `json:"accountId"              yaml:"accountId"`
	DisplayName  string `json:"displayName"            yaml:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty" yaml:"emailAddress,omitempty"`
	Active       bool   `json:"active"                 yaml:"active"`
}

// ChangelogPage represents one page of an issue changelog.
type ChangelogPage struct {
	StartAt    int              `json:"startAt"    yaml:"startAt"`
	MaxResults int              `json:"maxResults" yaml:"maxResults"`
	Total      int              `json:"total"      yaml:"total"`
	IsLast     bool             `json:"isLast"     yaml:"isLast"`
	Values     []ChangelogEntry `json:"values"     yaml:"values"`
}

// ChangelogEntry represents a single change grouping in an issue history.
type ChangelogEntry struct {
	ID      string          `json:"id"               yaml:"id"`
	Author  *User           `json:"author,omitempty" yaml:"author,omitempty"`
	Created string          `json:"created"          yaml:"created"`
	Items   []ChangelogItem `json:"items"            yaml:"items"`
}

// ChangelogItem represents one field change within a changelog entry.
type ChangelogItem struct {
	Field      string `json:"field"                yaml:"field"`
	FieldType  string `json:"fieldtype"            yaml:"fieldtype"`
	FieldID    string `json:"fieldId,omitempty"    yaml:"fieldId,omitempty"`
	From       string `json:"from,omitempty"       yaml:"from,omitempty"`
	FromString string `json:"fromString,omitempty" yaml:"fromString,omitempty"`
	To         string `json:"to,omitempty"         yaml:"to,omitempty"`
	ToString   string `json:"toString,omitempty"   yaml:"toString,omitempty"`
}

// FieldDefinition represents a system or custom issue field.
type FieldDefinition struct {
	ID          string       `json:"id"                    yaml:"id"`
	Key         string       `json:"key,omitempty"         yaml:"key,omitempty"`
	Name        string       `json:"name"                  yaml:"name"`
	Custom      bool         `json:"custom"                yaml:"custom"`
	Orderable   bool         `json:"orderable"             yaml:"orderable"`
	Navigable   bool         `json:"navigable"             yaml:"navigable"`
	Searchable  bool         `json:"searchable"            yaml:"searchable"`
	ClauseNames []string     `json:"clauseNames,omitempty" yaml:"clauseNames,omitempty"`
	Schema      *FieldSchema `json:"schema,omitempty"      yaml:"schema,omitempty"`
}

// FieldSchema describes the value type of a field.
type FieldSchema struct {
	Type     string `json:"type"               yaml:"type"`
	Items    string `json:"items,omitempty"    yaml:"items,omitempty"`
	System   string `json:"system,omitempty"   yaml:"system,omitempty"`
	Custom   string `json:"custom,omitempty"   yaml:"custom,omitempty"`
	CustomID int64  `json:"customId,omitempty" yaml:"customId,omitempty"`
}

// Comment represents an issue comment. Body is an Atlassian Document Format
// document and is kept raw for callers that need the full structure.
type Comment struct {
	ID      string          `json:"id"                yaml:"id"`
	Self    string          `json:"self,omitempty"    yaml:"self,omitempty"`
	Author  *User           `json:"author,omitempty"  yaml:"author,omitempty"`
	Body    json.RawMessage `json:"body,omitempty"    yaml:"body,omitempty"`
	Created string          `json:"created,omitempty" yaml:"created,omitempty"`
	Updated string          `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// CommentsPage represents a paginated list of comments.
type CommentsPage struct {
	StartAt    int       `json:"startAt"    yaml:"startAt"`
	MaxResults int       `json:"maxResults" yaml:"maxResults"`
	Total      int       `json:"total"      yaml:"total"`
	Comments   []Comment `json:"comments"   yaml:"comments"`
}

// Document is a minimal Atlassian Document Format document, sufficient for
// plain-text comment bodies.
type Document struct {
	Type    string         `json:"type"              yaml:"type"`
	Version int            `json:"version"           yaml:"version"`
	Content []DocumentNode `json:"content,omitempty" yaml:"content,omitempty"`
}

// DocumentNode is a node within a Document.
type DocumentNode struct {
	Type    string         `json:"type"              yaml:"type"`
	Text    string         `json:"text,omitempty"    yaml:"text,omitempty"`
	Content []DocumentNode `json:"content,omitempty" yaml:"content,omitempty"`
}

// TextDocument builds a single-paragraph document from plain text.
func TextDocument(text string) *Document {
	return &Document{
		Type:    "doc",
		Version: 1,
		Content: []DocumentNode{
			{
				Type: "paragraph",
				Content: []DocumentNode{
					{Type: "text", Text: text},
				},
			},
		},
	}
}

// SearchRequest represents the body of an enhanced JQL search
// (POST /rest/api/3/search/jql).
type SearchRequest struct {
	JQL             string   `json:"jql"                       yaml:"jql"`
	NextPageToken   string   `json:"nextPageToken,omitempty"   yaml:"nextPageToken,omitempty"`
	MaxResults      int      `json:"maxResults,omitempty"      yaml:"maxResults,omitempty"`
	Fields          []string `json:"fields,omitempty"          yaml:"fields,omitempty"`
	Expand          string   `json:"expand,omitempty"          yaml:"expand,omitempty"`
	Properties      []string `json:"properties,omitempty"      yaml:"properties,omitempty"`
	FieldsByKeys    bool     `json:"fieldsByKeys,omitempty"    yaml:"fieldsByKeys,omitempty"`
	FailFast        bool     `json:"failFast,omitempty"        yaml:"failFast,omitempty"`
	ReconcileIssues []int    `json:"reconcileIssues,omitempty" yaml:"reconcileIssues,omitempty"`
}

// SearchResult represents one page of enhanced search results.
type SearchResult struct {
	Issues        []Issue `json:"issues"                  yaml:"issues"`
	NextPageToken string  `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
	IsLast        bool    `json:"isLast,omitempty"        yaml:"isLast,omitempty"`
}

// GetIssueOptions narrows an issue fetch.
type GetIssueOptions struct {
	// Fields limits the returned fields; use "*all" for everything.
	Fields []string
	// Expand is a comma-separated list of entities to expand. The names
	// expansion is always requested so field name lookups work.
	Expand string
	// Properties lists issue properties to include.
	Properties []string
	// FieldsByKeys references fields by key instead of ID.
	FieldsByKeys bool
}

// EditIssueOptions tunes an issue edit.
type EditIssueOptions struct {
	// NotifyUsers controls whether watchers are emailed. Defaults to false
	// so automated edits stay quiet.
	NotifyUsers bool
}

// ListCommentsOptions pages and orders a comment listing.
type ListCommentsOptions struct {
	StartAt    int
	MaxResults int
	// OrderBy accepts "created" or "-created".
	OrderBy string
}
