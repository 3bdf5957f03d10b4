//go:build integration

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// TestIssueWorkflow_ReadCommentChangelog exercises the full read path against
// a live instance: fetch an issue, comment on it, list comments, and walk the
// changelog.
func TestIssueWorkflow_ReadCommentChangelog(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	ctx := context.Background()
	client := config.NewClient(ctx, t)

	defer client.Close()

	// 1. Fetch the issue with names expanded
	issue, err := client.Issues().Get(ctx, config.IssueKey, nil)
	require.NoError(t, err)
	assert.Equal(t, config.IssueKey, issue.Key)
	assert.NotEmpty(t, issue.Names, "names expansion should populate the mapping")

	// 2. Add a comment and find it in the listing
	marker := fmt.Sprintf("integration check %d", time.Now().UnixNano())

	comment, err := client.Comments().AddText(ctx, issue.Key, marker)
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)

	page, err := client.Comments().List(ctx, issue.Key, &jira.ListCommentsOptions{OrderBy: "-created", MaxResults: 10})
	require.NoError(t, err)

	found := false

	for _, listed := range page.Comments {
		if listed.ID == comment.ID {
			found = true

			break
		}
	}

	assert.True(t, found, "new comment should appear in the listing")

	// 3. Walk the changelog
	entries, err := client.Issues().Changelog(ctx, issue.Key)
	require.NoError(t, err)

	for _, entry := range entries {
		assert.NotEmpty(t, entry.Created)
	}
}

// TestSearchWorkflow_FieldsAndJQL resolves field metadata and pages through a
// search.
func TestSearchWorkflow_FieldsAndJQL(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	ctx := context.Background()
	client := config.NewClient(ctx, t)

	defer client.Close()

	// Field metadata must include the summary system field.
	name, err := client.Fields().NameByID(ctx, "summary")
	require.NoError(t, err)
	assert.Equal(t, "Summary", name)

	jql := config.JQL
	if jql == "" {
		jql = fmt.Sprintf("key = %s", config.IssueKey)
	}

	issues, err := client.Search().SearchAll(ctx, jql, []string{"summary"}, 50)
	require.NoError(t, err)
	assert.NotEmpty(t, issues)
}

// TestErrorTaxonomy_NotFound verifies live 404 classification.
func TestErrorTaxonomy_NotFound(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	ctx := context.Background()
	client := config.NewClient(ctx, t)

	defer client.Close()

	_, err := client.Issues().Get(ctx, "NOPE-999999", nil)
	require.Error(t, err)
	assert.True(t, jira.IsNotFound(err))
}
