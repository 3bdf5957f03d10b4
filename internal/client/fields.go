package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// FieldsClient implements jira.FieldsClient. Field metadata is near-static,
// so listings go through the cache manager with a generous TTL.
type FieldsClient struct {
	httpClient *http.Client
	cache      *jira.CacheManager
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(httpClient *http.Client, cache *jira.CacheManager) *FieldsClient {
	if cache == nil {
		cache = jira.NewCacheManager(nil, nil)
	}

	return &FieldsClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// List implements jira.FieldsClient.List.
func (c *FieldsClient) List(ctx context.Context) ([]jira.FieldDefinition, error) {
	cacheKey := c.cache.GetCacheKey("GET", "/field", nil)

	body, err := c.cache.Get(ctx, cacheKey)
	if err != nil {
		resp, err := c.httpClient.Get(ctx, "field", nil)
		if err != nil {
			return nil, fmt.Errorf("listing fields: %w", err)
		}

		body = resp.Body

		_ = c.cache.Set(ctx, cacheKey, body, constants.FieldsCacheTTL)
	}

	var fields []jira.FieldDefinition

	err = json.Unmarshal(body, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing fields list: %w", err)
	}

	return fields, nil
}

// NameByID implements jira.FieldsClient.NameByID.
func (c *FieldsClient) NameByID(ctx context.Context, fieldID string) (string, error) {
	fields, err := c.List(ctx)
	if err != nil {
		return "", err
	}

	for _, field := range fields {
		if field.ID == fieldID {
			return field.Name, nil
		}
	}

	return "", fmt.Errorf("%w: %s", jira.ErrFieldNotFound, fieldID)
}

// IDByName implements jira.FieldsClient.IDByName.
func (c *FieldsClient) IDByName(ctx context.Context, name string) (string, error) {
	fields, err := c.List(ctx)
	if err != nil {
		return "", err
	}

	for _, field := range fields {
		if field.Name == name {
			return field.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", jira.ErrFieldNotFound, name)
}
