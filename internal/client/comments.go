package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// CommentsClient implements jira.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{
		httpClient: httpClient,
	}
}

// List implements jira.CommentsClient.List.
func (c *CommentsClient) List(ctx context.Context, issueKey string, opts *jira.ListCommentsOptions) (*jira.CommentsPage, error) {
	path := "issue/" + issueKey + "/comment"

	query := url.Values{}

	if opts != nil {
		if opts.StartAt > 0 {
			query.Set("startAt", strconv.Itoa(opts.StartAt))
		}

		if opts.MaxResults > 0 {
			query.Set("maxResults", strconv.Itoa(opts.MaxResults))
		}

		if opts.OrderBy != "" {
			query.Set("orderBy", opts.OrderBy)
		}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var page jira.CommentsPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing comments list: %w", err)
	}

	return &page, nil
}

// Add implements jira.CommentsClient.Add.
func (c *CommentsClient) Add(ctx context.Context, issueKey string, body *jira.Document) (*jira.Comment, error) {
	path := "issue/" + issueKey + "/comment"

	resp, err := c.httpClient.Post(ctx, path, map[string]interface{}{"body": body})
	if err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}

	var comment jira.Comment

	err = json.Unmarshal(resp.Body, &comment)
	if err != nil {
		return nil, fmt.Errorf("parsing comment: %w", err)
	}

	return &comment, nil
}

// AddText implements jira.CommentsClient.AddText.
func (c *CommentsClient) AddText(ctx context.Context, issueKey, text string) (*jira.Comment, error) {
	return c.Add(ctx, issueKey, jira.TextDocument(text))
}
