package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry tunables.
const (
	// DefaultRetryMax is the default maximum number of retries after a
	// rate-limited response.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the initial backoff delay.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay between retries.
	DefaultRetryWaitMax = 60 * time.Second

	// ExponentialBackoffBase is the base for exponential backoff.
	ExponentialBackoffBase = 2
)

// API paths.
const (
	// APIPathPrefix is the Jira Cloud REST API v3 prefix joined between the
	// base URL and every request path.
	APIPathPrefix = "rest/api/3"
)

// Rate-limit headers.
const (
	// RetryAfterHeader is the primary header carrying a retry delay hint.
	RetryAfterHeader = "Retry-After"

	// RateLimitResetHeader is the beta header carrying the time at which the
	// current rate-limit window resets.
	RateLimitResetHeader = "X-RateLimit-Reset"
)

// Pagination limits.
const (
	// DefaultPageSize is the default number of items requested per page.
	DefaultPageSize = 50

	// MaxChangelogPages bounds changelog pagination to prevent infinite
	// loops against a misbehaving server.
	MaxChangelogPages = 100
)

// Cache defaults.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// FieldsCacheTTL is the TTL for the field metadata cache. Field
	// definitions change rarely.
	FieldsCacheTTL = 10 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)
