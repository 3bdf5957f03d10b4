//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/fivetwenty-io/jira-client/pkg/jiraclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL  string
	Username string
	APIToken string
	IssueKey string
	JQL      string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:  os.Getenv("JIRA_URL"),
		Username: os.Getenv("JIRA_USER"),
		APIToken: os.Getenv("JIRA_API_TOKEN"),
		IssueKey: os.Getenv("JIRA_TEST_ISSUE"),
		JQL:      os.Getenv("JIRA_TEST_JQL"),
	}
}

// SkipIfMissingConfig skips the test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BaseURL == "" {
		t.Skip("JIRA_URL not set, skipping integration test")
	}

	if config.Username == "" || config.APIToken == "" {
		t.Skip("JIRA_USER/JIRA_API_TOKEN not set, skipping integration test")
	}

	if config.IssueKey == "" {
		t.Skip("JIRA_TEST_ISSUE not set, skipping integration test")
	}
}

// NewClient builds a client against the configured instance.
func (config *TestConfig) NewClient(ctx context.Context, t *testing.T) jira.Client {
	t.Helper()

	client, err := jiraclient.New(ctx, &jira.Config{
		BaseURL:  config.BaseURL,
		Username: config.Username,
		APIToken: config.APIToken,
	})
	if err != nil {
		t.Fatalf("Failed to create Jira client: %v", err)
	}

	return client
}
