// Package mcpsrv provides an extensible MCP server for Wetrace.
//
// The server exposes the read side of the Wetrace API (sessions, messages,
// contacts, chat rooms, search, analysis) plus export as MCP tools, along
// with a few resources and workflow prompts.
//
// # Basic Usage
//
//	server, err := mcpsrv.NewServer(client.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Custom tools use MCP SDK types directly:
//
//	server, err := mcpsrv.NewServer(
//	    client.New(),
//	    mcpsrv.WithTool(&mcp.Tool{Name: "my_tool", Description: "My tool"}, myHandler),
//	)
//
// Tools that need the API client or the jq engine use WithDepsTool.
package mcpsrv
