package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// SearchClient implements jira.SearchClient using the enhanced JQL search
// endpoint, which pages with an opaque nextPageToken.
type SearchClient struct {
	httpClient *http.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client) *SearchClient {
	return &SearchClient{
		httpClient: httpClient,
	}
}

// EnhancedSearch implements jira.SearchClient.EnhancedSearch.
func (c *SearchClient) EnhancedSearch(ctx context.Context, req *jira.SearchRequest) (*jira.SearchResult, error) {
	resp, err := c.httpClient.Post(ctx, "search/jql", req)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}

	var result jira.SearchResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing search result: %w", err)
	}

	return &result, nil
}

// SearchAll implements jira.SearchClient.SearchAll. It follows nextPageToken
// until the result set is exhausted or maxIssues is reached.
func (c *SearchClient) SearchAll(ctx context.Context, jql string, fields []string, maxIssues int) ([]jira.Issue, error) {
	var issues []jira.Issue

	req := &jira.SearchRequest{
		JQL:        jql,
		Fields:     fields,
		MaxResults: constants.DefaultPageSize,
	}

	for {
		result, err := c.EnhancedSearch(ctx, req)
		if err != nil {
			return nil, err
		}

		issues = append(issues, result.Issues...)

		if maxIssues > 0 && len(issues) >= maxIssues {
			return issues[:maxIssues], nil
		}

		if result.NextPageToken == "" || len(result.Issues) == 0 {
			return issues, nil
		}

		req.NextPageToken = result.NextPageToken
	}
}
