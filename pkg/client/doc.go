// Package client provides a Go SDK for the Wetrace chat-history API.
//
// The Wetrace API serves sessions, messages, contacts, chat rooms, full-text
// search, statistical analysis and file exports over plain HTTP. Every method
// here is a single synchronous round trip: the client never retries, caches
// or paginates on its own.
//
// # Quick Start
//
//	c := client.New()
//	sessions, err := c.Sessions(ctx, client.ListOptions{Keyword: "family"})
//
// Use custom configuration:
//
//	c := client.New(
//	    client.WithBaseURL("http://10.0.0.5:5200/api/v1"),
//	    client.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//	)
//
// # Results
//
// Responses are passed through without interpretation. JSON endpoints return
// the decoded body as any (maps, slices, strings, bool, nil and json.Number).
// The export methods return the file body as []byte.
//
// # Errors
//
// A non-2xx status is returned as *APIError, whose message comes from the
// {"error": "..."} body the server sends, or the raw body when that is
// missing. Transport failures are returned as *ConnectionError:
//
//	var apiErr *client.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
//	    // ...
//	}
//
// # Dispatch
//
// Analyze and Export select an endpoint from an AnalysisKind or ExportKind,
// which is how the command line and MCP front ends drive the client.
package client
