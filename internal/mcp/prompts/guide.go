package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleUsageGuide serves the tool usage guide.
func HandleUsageGuide(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		var sb strings.Builder

		sb.WriteString("# Wetrace Tool Usage Guide\n\n")

		sb.WriteString("## Identifiers\n\n")
		sb.WriteString("- A conversation is identified by its **talker**: a `wxid_...` username for a person, `...@chatroom` for a group\n")
		sb.WriteString("- `sessions` returns talkers ordered by recent activity; start there when the user names a person loosely\n")
		sb.WriteString("- `contacts` and `chatrooms` accept a `keyword` to resolve a display name to a talker\n\n")

		sb.WriteString("## Keeping Responses Small\n\n")
		sb.WriteString("| Goal | Parameter | Example |\n")
		sb.WriteString("|------|-----------|--------|\n")
		sb.WriteString("| Pick fields | `jq` | `jq: \".[] | {userName, nickName}\"` |\n")
		sb.WriteString("| Count results | `jq` | `jq: \"length\"` |\n")
		fmt.Fprintf(&sb, "| Trim long lists and texts | `compact` | `compact: true` keeps %d items per array |\n", cfg.CompactMaxArrayItems)
		sb.WriteString("| Page through results | `limit`, `offset` | `limit: 20, offset: 40` |\n\n")

		sb.WriteString("## Messages and Search\n\n")
		sb.WriteString("- `messages` needs a `talker` to read one conversation; add `reverse: true` for newest first\n")
		sb.WriteString("- `time_range` accepts `YYYY-MM-DD~YYYY-MM-DD`\n")
		sb.WriteString("- `search` returns hits with `talker` and `seq`; pass both to `search_context` to read around a hit\n\n")

		sb.WriteString("## Analysis\n\n")
		sb.WriteString("- Per conversation (`session_id` required): hourly, daily, weekday, monthly, type, member, repeat, wordcloud\n")
		sb.WriteString("- Global: wordcloud_global, top_contacts, annual (optional `year`)\n\n")

		sb.WriteString("## Export\n\n")
		fmt.Fprintf(&sb, "- Files are written to `%s` as `{kind}_{talker}.{format}`\n", cfg.ExportDir)
		sb.WriteString("- chat supports html, txt, csv, xlsx, docx, pdf; forensic and voices return ZIP archives; contacts defaults to csv\n")

		return &sdkmcp.GetPromptResult{
			Description: "How to use the Wetrace tools efficiently",
			Messages: []*sdkmcp.PromptMessage{
				{Role: "user", Content: &sdkmcp.TextContent{Text: sb.String()}},
			},
		}, nil
	}
}
