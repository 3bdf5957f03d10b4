package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// ErrTooManyChangelogPages guards against runaway changelog pagination.
var ErrTooManyChangelogPages = errors.New("changelog pagination exceeded the page limit")

// IssuesClient implements jira.IssuesClient.
type IssuesClient struct {
	httpClient *http.Client
	fields     jira.FieldsClient
}

// NewIssuesClient creates a new issues client. The fields client resolves
// display names to field IDs on edits.
func NewIssuesClient(httpClient *http.Client, fields jira.FieldsClient) *IssuesClient {
	return &IssuesClient{
		httpClient: httpClient,
		fields:     fields,
	}
}

// Get implements jira.IssuesClient.Get.
func (c *IssuesClient) Get(ctx context.Context, key string, opts *jira.GetIssueOptions) (*jira.Issue, error) {
	path := "issue/" + key

	query := url.Values{}
	// Always expand names so callers can address fields by display name.
	expand := "names"

	if opts != nil {
		if len(opts.Fields) > 0 {
			query.Set("fields", strings.Join(opts.Fields, ","))
		}

		if opts.Expand != "" && !strings.Contains(opts.Expand, "names") {
			expand = opts.Expand + ",names"
		} else if opts.Expand != "" {
			expand = opts.Expand
		}

		if len(opts.Properties) > 0 {
			query.Set("properties", strings.Join(opts.Properties, ","))
		}

		if opts.FieldsByKeys {
			query.Set("fieldsByKeys", "true")
		}
	}

	query.Set("expand", expand)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	var issue jira.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue: %w", err)
	}

	return &issue, nil
}

// Edit implements jira.IssuesClient.Edit. Field keys may be display names or
// IDs; names are resolved through field metadata.
func (c *IssuesClient) Edit(ctx context.Context, key string, fields map[string]interface{}, opts *jira.EditIssueOptions) error {
	resolved, err := c.resolveFieldKeys(ctx, fields)
	if err != nil {
		return err
	}

	path := "issue/" + key

	query := url.Values{}

	notifyUsers := false
	if opts != nil {
		notifyUsers = opts.NotifyUsers
	}

	query.Set("notifyUsers", strconv.FormatBool(notifyUsers))

	_, err = c.httpClient.Do(ctx, &http.Request{
		Method: "PUT",
		Path:   path,
		Query:  query,
		Body:   map[string]interface{}{"fields": resolved},
	})
	if err != nil {
		return fmt.Errorf("editing issue: %w", err)
	}

	return nil
}

// resolveFieldKeys translates display names to field IDs, passing through
// keys that already look like IDs.
func (c *IssuesClient) resolveFieldKeys(ctx context.Context, fields map[string]interface{}) (map[string]interface{}, error) {
	resolved := make(map[string]interface{}, len(fields))

	for key, value := range fields {
		fieldID, err := c.fields.IDByName(ctx, key)
		if err != nil {
			if errors.Is(err, jira.ErrFieldNotFound) {
				// Already a field ID, or an unknown field the server will
				// reject with a useful message.
				resolved[key] = value

				continue
			}

			return nil, fmt.Errorf("resolving field %q: %w", key, err)
		}

		resolved[fieldID] = value
	}

	return resolved, nil
}

// ChangelogPage implements jira.IssuesClient.ChangelogPage.
func (c *IssuesClient) ChangelogPage(ctx context.Context, key string, startAt, maxResults int) (*jira.ChangelogPage, error) {
	path := "issue/" + key + "/changelog"

	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))

	if maxResults > 0 {
		query.Set("maxResults", strconv.Itoa(maxResults))
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting issue changelog: %w", err)
	}

	var page jira.ChangelogPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing issue changelog: %w", err)
	}

	return &page, nil
}

// Changelog implements jira.IssuesClient.Changelog. It walks every page and
// optionally keeps only entries touching the named fields.
func (c *IssuesClient) Changelog(ctx context.Context, key string, fields ...string) ([]jira.ChangelogEntry, error) {
	var entries []jira.ChangelogEntry

	startAt := 0

	for pageNum := 0; ; pageNum++ {
		if pageNum >= constants.MaxChangelogPages {
			return nil, fmt.Errorf("%w: %s", ErrTooManyChangelogPages, key)
		}

		page, err := c.ChangelogPage(ctx, key, startAt, constants.DefaultPageSize)
		if err != nil {
			return nil, err
		}

		entries = append(entries, filterChangelogEntries(page.Values, fields)...)

		if page.IsLast || len(page.Values) == 0 {
			break
		}

		startAt += len(page.Values)
	}

	return entries, nil
}

// filterChangelogEntries keeps entries with at least one item matching the
// given field names or IDs. An empty filter keeps everything.
func filterChangelogEntries(entries []jira.ChangelogEntry, fields []string) []jira.ChangelogEntry {
	if len(fields) == 0 {
		return entries
	}

	wanted := make(map[string]bool, len(fields))
	for _, field := range fields {
		wanted[field] = true
	}

	var kept []jira.ChangelogEntry

	for _, entry := range entries {
		for _, item := range entry.Items {
			if wanted[item.Field] || wanted[item.FieldID] {
				kept = append(kept, entry)

				break
			}
		}
	}

	return kept
}
