package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/pkg/client"
)

// ListInput is the input for contacts and chatrooms.
type ListInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"Filter by name or remark"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results to return (default: 50)"`
	Offset  int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// LookupInput is the input for contact and chatroom.
type LookupInput struct {
	ID      string `json:"id" jsonschema:"Contact username or chatroom id"`
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// NeedContactInput is the input for need_contact.
type NeedContactInput struct {
	Days    int    `json:"days,omitempty" jsonschema:"Contacts silent for at least this many days (default: 7)"`
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// ToolContacts lists contacts.
func ToolContacts(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := validatePage(input.Limit, input.Offset); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Contacts(ctx, listOptions(input))
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolContact looks up one contact.
func ToolContact(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input LookupInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input LookupInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := required("id", input.ID); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Contact(ctx, input.ID)
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolNeedContact lists contacts that have gone quiet.
func ToolNeedContact(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input NeedContactInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input NeedContactInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := nonNegative("days", input.Days); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.NeedContact(ctx, orDefault(input.Days, client.DefaultNeedDays))
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolChatRooms lists group chats.
func ToolChatRooms(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := validatePage(input.Limit, input.Offset); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.ChatRooms(ctx, listOptions(input))
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolChatRoom looks up one group chat.
func ToolChatRoom(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input LookupInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input LookupInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := required("id", input.ID); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.ChatRoom(ctx, input.ID)
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

func listOptions(input ListInput) client.ListOptions {
	return client.ListOptions{
		Keyword: input.Keyword,
		Limit:   orDefault(input.Limit, client.DefaultLimit),
		Offset:  input.Offset,
	}
}
