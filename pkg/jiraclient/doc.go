// Package jiraclient provides the primary entry point for constructing a
// Jira REST API client that implements the jira.Client interface.
//
// It layers configuration, HTTP transport, authentication, and retry handling
// on top of the resource interfaces and types defined in the jira package.
// Most applications should import jiraclient to build a client, then use the
// returned jira.Client to access resource-specific clients, for example
// Issues(), Comments(), Fields(), and Search().
//
// Quick start
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
//
//	  // Jira Cloud: account email plus API token.
//	  cli, err := jiraclient.New(ctx, &jira.Config{
//	    BaseURL:  "https://example.atlassian.net",
//	    Username: "me@example.com",
//	    APIToken: "token",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // Or a Data Center personal access token:
//	  cli, err = jiraclient.NewWithToken(ctx, "https://jira.example.com", "pat")
//	  if err != nil { log.Fatal(err) }
//
//	  issue, err := cli.Issues().Get(ctx, "PROJ-1", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = issue
//	}
//
// # Environment configuration
//
// Config fields left empty fall back to the JIRA_URL, JIRA_USER,
// JIRA_API_TOKEN, and JIRA_ACCESS_TOKEN environment variables. NewFromEnv
// builds a client from the environment alone and loads a .env file first when
// one is present.
//
// # Helpers
//
// The package also provides convenience constructors NewWithBasicAuth and
// NewWithToken that wrap New with the appropriate configuration.
package jiraclient
