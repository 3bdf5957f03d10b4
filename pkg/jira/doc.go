// Package jira provides types, interfaces, and helpers for working with the
// Jira Cloud REST API v3.
//
// # Overview
//
// The jira package defines the domain types (e.g., Issue, Comment,
// FieldDefinition, SearchResult) and the interfaces for resource-oriented
// clients (IssuesClient, CommentsClient, FieldsClient, SearchClient). A
// concrete implementation is provided by the jiraclient package, which wires
// configuration, transport, authentication, and retry handling. Most
// consumers should import jiraclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/jira-client/pkg/jira"
//	  "github.com/fivetwenty-io/jira-client/pkg/jiraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := jiraclient.New(ctx, &jira.Config{
//	    BaseURL:  "https://example.atlassian.net",
//	    Username: "me@example.com",
//	    APIToken: "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  issue, err := cli.Issues().Get(ctx, "PROJ-1", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = issue
//	}
//
// # Errors
//
// HTTP-level failures are represented by APIError; a persistent rate limit
// surfaces as RetryExhaustedError and network failures as TransportError.
// Helpers such as IsNotFound, IsUnauthorized, and IsRateLimited make it easy
// to branch on common cases.
//
// # Rate limiting
//
// Only 429 responses are retried, with exponential backoff, jitter, and the
// server's Retry-After hint. Every other non-2xx status fails immediately;
// silently retrying those would mask real errors and waste quota.
//
// # Caching
//
// The package includes a pluggable Cache abstraction (in-memory and NATS KV
// backends) used by the fields client for near-static field metadata.
package jira
