package http

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/fivetwenty-io/jira-client/internal/constants"
)

// Outcome is the coarse classification of a response status.
type Outcome int

const (
	// OutcomeSuccess is any 2xx status.
	OutcomeSuccess Outcome = iota

	// OutcomeThrottle is 429 Too Many Requests, the only retryable status.
	OutcomeThrottle

	// OutcomeClientError is any other 4xx status.
	OutcomeClientError

	// OutcomeServerError is any 5xx status.
	OutcomeServerError
)

// Classify maps a status code to its outcome.
func Classify(statusCode int) Outcome {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return OutcomeSuccess
	case statusCode == http.StatusTooManyRequests:
		return OutcomeThrottle
	case statusCode >= http.StatusInternalServerError:
		return OutcomeServerError
	default:
		return OutcomeClientError
	}
}

// RetryPolicy retries only rate-limited responses. Transport errors and every
// non-429 status are terminal on the first attempt.
func RetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return false, err
	}

	return Classify(resp.StatusCode) == OutcomeThrottle, nil
}

// RetryAfterHint extracts the server's rate-limit hint. Retry-After takes
// precedence and may carry seconds or an HTTP-date; X-RateLimit-Reset is an
// HTTP-date. A malformed header yields no hint.
func RetryAfterHint(headers http.Header) (time.Duration, bool) {
	if value := headers.Get(constants.RetryAfterHeader); value != "" {
		if seconds, err := strconv.ParseFloat(value, 64); err == nil && seconds >= 0 {
			return time.Duration(seconds * float64(time.Second)), true
		}

		if at, err := http.ParseTime(value); err == nil {
			return durationUntil(at), true
		}
	}

	if value := headers.Get(constants.RateLimitResetHeader); value != "" {
		if at, err := http.ParseTime(value); err == nil {
			return durationUntil(at), true
		}
	}

	return 0, false
}

func durationUntil(at time.Time) time.Duration {
	wait := time.Until(at)
	if wait < 0 {
		return 0
	}

	return wait
}

// RetryBackoff waits exponentially longer per attempt within the configured
// window, never shorter than the server's hint, plus jitter in [0, base) to
// spread concurrent callers apart.
func RetryBackoff(waitMin, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	base := waitMin

	for i := 0; i < attemptNum; i++ {
		base *= constants.ExponentialBackoffBase
		if base >= waitMax {
			base = waitMax

			break
		}
	}

	if resp != nil {
		if hint, ok := RetryAfterHint(resp.Header); ok && hint > base {
			base = hint
		}
	}

	if base <= 0 {
		return 0
	}

	return base + time.Duration(rand.Int63n(int64(base)))
}
