// Package jiraclient provides the main entry point for creating Jira API clients
package jiraclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/jira-client/internal/client"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Environment variables read when config fields are left empty.
const (
	EnvBaseURL     = "JIRA_URL"
	EnvUsername    = "JIRA_USER"
	EnvAPIToken    = "JIRA_API_TOKEN"
	EnvAccessToken = "JIRA_ACCESS_TOKEN"
)

// New creates a new Jira API client. Credentials and the base URL fall back
// to the JIRA_* environment variables when left empty.
func New(ctx context.Context, config *jira.Config) (jira.Client, error) {
	if config == nil {
		return nil, jira.ErrConfigRequired
	}

	applyEnvFallback(config)

	if config.BaseURL == "" {
		return nil, jira.ErrBaseURLRequired
	}

	if (config.Username == "" || config.APIToken == "") && config.AccessToken == "" {
		return nil, jira.ErrCredentialsRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	jiraClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return jiraClient, nil
}

// applyEnvFallback fills empty config fields from the environment.
func applyEnvFallback(config *jira.Config) {
	env := viper.New()
	env.AutomaticEnv()

	if config.BaseURL == "" {
		config.BaseURL = env.GetString(EnvBaseURL)
	}

	if config.Username == "" {
		config.Username = env.GetString(EnvUsername)
	}

	if config.APIToken == "" {
		config.APIToken = env.GetString(EnvAPIToken)
	}

	if config.AccessToken == "" {
		config.AccessToken = env.GetString(EnvAccessToken)
	}
}

// NewFromEnv creates a new client configured entirely from the environment,
// loading a .env file first when one is present.
func NewFromEnv(ctx context.Context) (jira.Client, error) {
	// Missing .env files are fine; real environment variables still apply.
	_ = godotenv.Load()

	return New(ctx, &jira.Config{})
}

// NewWithBasicAuth creates a new client with a base URL, account email, and
// API token.
func NewWithBasicAuth(ctx context.Context, baseURL, username, apiToken string) (jira.Client, error) {
	return New(ctx, &jira.Config{
		BaseURL:  baseURL,
		Username: username,
		APIToken: apiToken,
	})
}

// NewWithToken creates a new client with a base URL and personal access token.
func NewWithToken(ctx context.Context, baseURL, token string) (jira.Client, error) {
	return New(ctx, &jira.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}
