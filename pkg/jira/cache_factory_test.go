package jira_test

import (
	"testing"

	"github.com/fivetwenty-io/jira-client/pkg/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cache, err := jira.NewCacheFromConfig(&jira.CacheConfig{
		Type:          jira.CacheTypeMemory,
		MemoryMaxSize: 100,
	})
	require.NoError(t, err)
	assert.IsType(t, &jira.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_None(t *testing.T) {
	t.Parallel()

	cache, err := jira.NewCacheFromConfig(&jira.CacheConfig{Type: jira.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &jira.NoOpCache{}, cache)
}

func TestNewCacheFromConfig_NilDefaultsToMemory(t *testing.T) {
	t.Parallel()

	cache, err := jira.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &jira.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_NATSRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := jira.NewCacheFromConfig(&jira.CacheConfig{Type: jira.CacheTypeNATS})
	require.ErrorIs(t, err, jira.ErrNATSConfigRequired)
}

func TestNewCacheFromConfig_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := jira.NewCacheFromConfig(&jira.CacheConfig{Type: "redis"})
	require.ErrorIs(t, err, jira.ErrUnsupportedCacheType)
}
