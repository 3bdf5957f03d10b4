package auth_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/jira-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicProvider_Apply(t *testing.T) {
	t.Parallel()

	provider := auth.NewBasicProvider("user@example.com", "api-token")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://example.atlassian.net", nil)
	require.NoError(t, err)

	err = provider.Apply(context.Background(), req)
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("user@example.com:api-token"))
	assert.Equal(t, expected, req.Header.Get("Authorization"))
}

func TestBearerProvider_Apply(t *testing.T) {
	t.Parallel()

	provider := auth.NewBearerProvider("pat-token")

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://jira.internal.example.com", nil)
	require.NoError(t, err)

	err = provider.Apply(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer pat-token", req.Header.Get("Authorization"))
}
