package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/pkg/client"
)

// AnalysisInput is the input for analysis.
type AnalysisInput struct {
	Kind      string `json:"kind" jsonschema:"One of: hourly, daily, weekday, monthly, type, member, repeat, wordcloud, wordcloud_global, top_contacts, annual"`
	SessionID string `json:"session_id,omitempty" jsonschema:"Conversation to analyze; required for every kind except wordcloud_global, top_contacts and annual"`
	Year      int    `json:"year,omitempty" jsonschema:"Year for the annual report (default: current year)"`
	JQ        string `json:"jq,omitempty" jsonschema:"jq expression applied to the response"`
	Compact   bool   `json:"compact,omitempty" jsonschema:"Trim long arrays and strings"`
}

// ToolAnalysis runs one of the statistical reports.
func ToolAnalysis(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalysisInput) (*sdkmcp.CallToolResult, DataOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalysisInput) (*sdkmcp.CallToolResult, DataOutput, error) {
		kind := client.AnalysisKind(input.Kind)
		if err := oneOf("kind", kind, client.AnalysisKinds); err != nil {
			return nil, DataOutput{}, err
		}
		if kind.NeedsSession() {
			if err := required("session_id", input.SessionID); err != nil {
				return nil, DataOutput{}, err
			}
		}
		if err := nonNegative("year", input.Year); err != nil {
			return nil, DataOutput{}, err
		}
		v, err := d.Client.Analyze(ctx, client.AnalysisRequest{
			Kind:      kind,
			SessionID: input.SessionID,
			Year:      input.Year,
		})
		return respond(ctx, d, v, err, input.JQ, input.Compact)
	}
}
