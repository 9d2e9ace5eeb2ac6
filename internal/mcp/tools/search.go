package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/pkg/client"
)

// SearchInput is the input for search.
type SearchInput struct {
	Keyword   string `json:"keyword" jsonschema:"Text to search for"`
	Talker    string `json:"talker,omitempty" jsonschema:"Restrict to one conversation"`
	Sender    string `json:"sender,omitempty" jsonschema:"Restrict to one sender"`
	Type      *int   `json:"type,omitempty" jsonschema:"Message type code (1 = text, 3 = image, 34 = voice, 43 = video, 49 = app)"`
	TimeRange string `json:"time_range,omitempty" jsonschema:"Date range such as 2024-01-01~2024-01-31"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Max hits to return (default: 50)"`
	Offset    int    `json:"offset,omitempty" jsonschema:"Pagination offset"`
	JQ        string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact   bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// SearchContextInput is the input for search_context.
type SearchContextInput struct {
	Talker  string `json:"talker" jsonschema:"Conversation of the hit"`
	Seq     int64  `json:"seq" jsonschema:"Sequence number of the hit"`
	Before  *int   `json:"before,omitempty" jsonschema:"Messages before the hit (default: 10)"`
	After   *int   `json:"after,omitempty" jsonschema:"Messages after the hit (default: 10)"`
	JQ      string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// ToolSearch runs a full-text search over messages.
func ToolSearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := required("keyword", input.Keyword); err != nil {
			return nil, DataOutput{}, err
		}
		if err := validatePage(input.Limit, input.Offset); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Search(ctx, client.SearchOptions{
			Keyword:   input.Keyword,
			Talker:    input.Talker,
			Sender:    input.Sender,
			Type:      input.Type,
			TimeRange: input.TimeRange,
			Limit:     orDefault(input.Limit, client.DefaultLimit),
			Offset:    input.Offset,
		})
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}

// ToolSearchContext returns the messages surrounding a search hit.
func ToolSearchContext(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchContextInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchContextInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		if err := required("talker", input.Talker); err != nil {
			return nil, DataOutput{}, err
		}
		for name, n := range map[string]*int{"before": input.Before, "after": input.After} {
			if n != nil {
				if err := nonNegative(name, *n); err != nil {
					return nil, DataOutput{}, err
				}
			}
		}
		v, err := d.Client.SearchContext(ctx, client.SearchContextOptions{
			Talker: input.Talker,
			Seq:    input.Seq,
			Before: input.Before,
			After:  input.After,
		})
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}
