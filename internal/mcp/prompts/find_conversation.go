package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleFindConversation guides locating a half-remembered exchange.
func HandleFindConversation(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		keyword := argument(req, "keyword")

		var sb strings.Builder
		sb.WriteString("# Find a Conversation\n\n")
		if keyword != "" {
			fmt.Fprintf(&sb, "Looking for: **%s**\n\n", keyword)
		}
		sb.WriteString("1. `search` with the most distinctive word first")
		if keyword != "" {
			fmt.Fprintf(&sb, " (`keyword: \"%s\"`)", keyword)
		}
		sb.WriteString(". Use `jq: \".[] | {talker, seq, content}\"` to keep hits short.\n")
		sb.WriteString("2. Too many hits: narrow with `talker`, `sender` or `time_range`.\n")
		sb.WriteString("3. No hits: try synonyms or a shorter fragment; search matches substrings.\n")
		sb.WriteString("4. For each promising hit call `search_context` with its `talker` and `seq`.\n")
		sb.WriteString("5. Quote the exchange with sender and time, and say which conversation it came from.\n")

		return &sdkmcp.GetPromptResult{
			Description: "Locate a past exchange with search and search_context",
			Messages: []*sdkmcp.PromptMessage{
				{Role: "user", Content: &sdkmcp.TextContent{Text: sb.String()}},
			},
		}, nil
	}
}
