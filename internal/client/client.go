// Package client implements the jira.Client interface on top of the shared
// HTTP execution core.
package client

import (
	"context"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Client implements the jira.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     jira.Logger

	// Resource clients
	issues   jira.IssuesClient
	comments jira.CommentsClient
	fields   jira.FieldsClient
	search   jira.SearchClient
}

// New creates a new Jira API client.
func New(ctx context.Context, config *jira.Config) (*Client, error) {
	if config == nil {
		return nil, jira.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, jira.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createAuthProvider(config), createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config)

	return client, nil
}

// createAuthProvider picks a credential provider based on available
// credentials. The basic pair wins over a bearer token.
func createAuthProvider(config *jira.Config) auth.Provider {
	if config.Username != "" && config.APIToken != "" {
		return auth.NewBasicProvider(config.Username, config.APIToken)
	}

	if config.AccessToken != "" {
		return auth.NewBearerProvider(config.AccessToken)
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *jira.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	retryMax := constants.DefaultRetryMax
	if config.RetryMax != nil {
		retryMax = *config.RetryMax
	}

	retryWaitMin := constants.DefaultRetryWaitMin
	if config.RetryWaitMin > 0 {
		retryWaitMin = config.RetryWaitMin
	}

	retryWaitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		retryWaitMax = config.RetryWaitMax
	}

	httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))

	return httpOpts
}

// initializeResourceClients creates all resource-specific clients.
func (c *Client) initializeResourceClients(config *jira.Config) {
	fieldsCache := jira.NewCacheManager(config.Cache, config.Logger)

	fields := NewFieldsClient(c.httpClient, fieldsCache)

	c.fields = fields
	c.issues = NewIssuesClient(c.httpClient, fields)
	c.comments = NewCommentsClient(c.httpClient)
	c.search = NewSearchClient(c.httpClient)
}

// Issues returns the issues resource client.
func (c *Client) Issues() jira.IssuesClient {
	return c.issues
}

// Comments returns the comments resource client.
func (c *Client) Comments() jira.CommentsClient {
	return c.comments
}

// Fields returns the fields resource client.
func (c *Client) Fields() jira.FieldsClient {
	return c.fields
}

// Search returns the search resource client.
func (c *Client) Search() jira.SearchClient {
	return c.search
}

// Close releases the underlying connection pool.
func (c *Client) Close() {
	c.httpClient.Close()
}
