package jiraclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/fivetwenty-io/jira-client/pkg/jiraclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &jira.Config{
			BaseURL:  "https://example.atlassian.net",
			Username: "me@example.com",
			APIToken: "token",
		}

		client, err := jiraclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)

		client.Close()
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := jiraclient.New(context.Background(), nil)
		require.ErrorIs(t, err, jira.ErrConfigRequired)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := jiraclient.New(context.Background(), &jira.Config{
			BaseURL: "https://example.atlassian.net",
		})
		require.ErrorIs(t, err, jira.ErrCredentialsRequired)
	})

	t.Run("api token without username", func(t *testing.T) {
		t.Parallel()

		_, err := jiraclient.New(context.Background(), &jira.Config{
			BaseURL:  "https://example.atlassian.net",
			APIToken: "token",
		})
		require.ErrorIs(t, err, jira.ErrCredentialsRequired)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := &jira.Config{
			BaseURL:     "example.atlassian.net/",
			AccessToken: "pat",
		}

		client, err := jiraclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://example.atlassian.net", config.BaseURL)

		client.Close()
	})
}

func TestNewWithBasicAuth(t *testing.T) {
	t.Parallel()

	client, err := jiraclient.NewWithBasicAuth(context.Background(), "https://example.atlassian.net", "me@example.com", "token")
	require.NoError(t, err)
	assert.NotNil(t, client)

	client.Close()
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := jiraclient.NewWithToken(context.Background(), "https://jira.example.com", "pat-token")
	require.NoError(t, err)
	assert.NotNil(t, client)

	client.Close()
}

func TestNew_EnvFallback(t *testing.T) {
	t.Setenv("JIRA_URL", "https://env.atlassian.net")
	t.Setenv("JIRA_USER", "env@example.com")
	t.Setenv("JIRA_API_TOKEN", "env-token")

	client, err := jiraclient.New(context.Background(), &jira.Config{})
	require.NoError(t, err)
	assert.NotNil(t, client)

	client.Close()
}

func TestNewFromEnv_MissingConfig(t *testing.T) {
	t.Setenv("JIRA_URL", "")
	t.Setenv("JIRA_USER", "")
	t.Setenv("JIRA_API_TOKEN", "")
	t.Setenv("JIRA_ACCESS_TOKEN", "")

	_, err := jiraclient.NewFromEnv(context.Background())
	require.Error(t, err)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/rest/api/3/issue/PROJ-1":
			issue := jira.Issue{
				ID:  "10001",
				Key: "PROJ-1",
			}
			_ = json.NewEncoder(writer).Encode(issue)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := jiraclient.NewWithToken(context.Background(), server.URL, "pat-token")
	require.NoError(t, err)

	defer client.Close()

	issue, err := client.Issues().Get(context.Background(), "PROJ-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "PROJ-1", issue.Key)
}
