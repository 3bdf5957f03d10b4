package jira_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_FieldLookups(t *testing.T) {
	t.Parallel()

	issue := &jira.Issue{
		Key: "PROJ-1",
		Fields: map[string]json.RawMessage{
			"summary":           json.RawMessage(`"Fix the widget"`),
			"customfield_10010": json.RawMessage(`5`),
		},
		Names: map[string]string{
			"summary":           "Summary",
			"customfield_10010": "Story Points",
		},
	}

	assert.Equal(t, "customfield_10010", issue.FieldID("Story Points"))
	assert.Equal(t, "customfield_10010", issue.FieldID("customfield_10010"))
	assert.Empty(t, issue.FieldID("No Such Field"))

	assert.Equal(t, json.RawMessage(`5`), issue.FieldValue("Story Points"))
	assert.Equal(t, json.RawMessage(`"Fix the widget"`), issue.FieldValue("summary"))
	assert.Nil(t, issue.FieldValue("No Such Field"))
}

func TestIssue_FieldValueWithoutNames(t *testing.T) {
	t.Parallel()

	// Without the names expansion, lookups still work by field ID.
	issue := &jira.Issue{
		Fields: map[string]json.RawMessage{
			"status": json.RawMessage(`{"name":"Done"}`),
		},
	}

	assert.Equal(t, json.RawMessage(`{"name":"Done"}`), issue.FieldValue("status"))
	assert.Nil(t, issue.FieldValue("Status"))
}

func TestTextDocument(t *testing.T) {
	t.Parallel()

	doc := jira.TextDocument("hello world")

	assert.Equal(t, "doc", doc.Type)
	assert.Equal(t, 1, doc.Version)
	require.Len(t, doc.Content, 1)
	assert.Equal(t, "paragraph", doc.Content[0].Type)
	require.Len(t, doc.Content[0].Content, 1)
	assert.Equal(t, "text", doc.Content[0].Content[0].Type)
	assert.Equal(t, "hello world", doc.Content[0].Content[0].Text)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "doc",
		"version": 1,
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "hello world"}]}
		]
	}`, string(data))
}

func TestSearchRequest_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&jira.SearchRequest{JQL: "project = PROJ"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jql":"project = PROJ"}`, string(data))
}
