// Package auth supplies credential providers for the HTTP layer.
package auth

import (
	"context"
	"net/http"
)

// Provider attaches credentials to an outgoing request. A nil Provider means
// requests are sent unauthenticated.
type Provider interface {
	Apply(ctx context.Context, req *http.Request) error
}

// BasicProvider authenticates with a Jira Cloud account email and API token.
type BasicProvider struct {
	Username string
	APIToken string
}

// NewBasicProvider creates a basic auth provider.
func NewBasicProvider(username, apiToken string) *BasicProvider {
	return &BasicProvider{Username: username, APIToken: apiToken}
}

// Apply sets the Authorization header for basic auth.
func (p *BasicProvider) Apply(ctx context.Context, req *http.Request) error {
	req.SetBasicAuth(p.Username, p.APIToken)

	return nil
}

// BearerProvider authenticates with a personal access token.
type BearerProvider struct {
	Token string
}

// NewBearerProvider creates a bearer token provider.
func NewBearerProvider(token string) *BearerProvider {
	return &BearerProvider{Token: token}
}

// Apply sets the Authorization header for a bearer token.
func (p *BearerProvider) Apply(ctx context.Context, req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+p.Token)

	return nil
}
