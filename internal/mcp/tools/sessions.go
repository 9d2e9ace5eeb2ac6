package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/pkg/client"
)

// SessionsInput is the input for sessions.
type SessionsInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"Filter sessions by name"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max sessions to return (default: 50)"`
	Offset  int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// MessagesInput is the input for messages.
type MessagesInput struct {
	Talker    string `json:"talker,omitempty" jsonschema:"Conversation username (wxid or chatroom id)"`
	Sender    string `json:"sender,omitempty" jsonschema:"Only messages sent by this username"`
	Keyword   string `json:"keyword,omitempty" jsonschema:"Only messages containing this text"`
	TimeRange string `json:"time_range,omitempty" jsonschema:"Date range such as 2024-01-01~2024-01-31"`
	Reverse   bool   `json:"reverse,omitempty" jsonschema:"Newest first"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Max messages to return (default: 50)"`
	Offset    int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	JQ        string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact   bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// DashboardInput is the input for dashboard.
type DashboardInput struct {
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// ToolSessions lists chat sessions.
func ToolSessions(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SessionsInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SessionsInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := validatePage(input.Limit, input.Offset); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Sessions(ctx, client.ListOptions{
			Keyword: input.Keyword,
			Limit:   orDefault(input.Limit, client.DefaultLimit),
			Offset:  input.Offset,
		})
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolMessages lists messages, optionally scoped to one conversation.
func ToolMessages(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MessagesInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MessagesInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := validatePage(input.Limit, input.Offset); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Messages(ctx, client.MessagesOptions{
			TalkerID:  input.Talker,
			SenderID:  input.Sender,
			Keyword:   input.Keyword,
			TimeRange: input.TimeRange,
			Reverse:   input.Reverse,
			Limit:     orDefault(input.Limit, client.DefaultLimit),
			Offset:    input.Offset,
		})
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolDashboard returns the overview statistics.
func ToolDashboard(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DashboardInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DashboardInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		v, err := d.Client.Dashboard(ctx)
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

func validatePage(limit, offset int) error {
	if err := nonNegative("limit", limit); err != nil {
		return err
	}
	return nonNegative("offset", offset)
}
