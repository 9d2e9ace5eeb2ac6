package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleContactReview walks through summarizing the relationship with one
// contact or group.
func HandleContactReview(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		name := argument(req, "name")
		timeRange := argument(req, "time_range")

		var sb strings.Builder
		sb.WriteString("# Review a Conversation\n\n")
		if name != "" {
			fmt.Fprintf(&sb, "Subject: **%s**\n", name)
		}
		if timeRange != "" {
			fmt.Fprintf(&sb, "Period: `%s`\n", timeRange)
		}
		sb.WriteString("\n## Workflow\n\n")
		sb.WriteString("1. **Resolve the talker** with `contacts` or `chatrooms` (`keyword` = the name). Ask the user if several match.\n")
		sb.WriteString("2. **Rhythm**: `analysis` with kind `hourly`, `weekday` and `monthly` for the talker.\n")
		sb.WriteString("3. **Content**: `analysis` kind `type` for the media mix and `wordcloud` for recurring topics.\n")
		sb.WriteString("4. **Groups only**: `analysis` kind `member` to see who drives the conversation.\n")
		sb.WriteString("5. **Samples**: `messages` with the talker")
		if timeRange != "" {
			fmt.Fprintf(&sb, " and `time_range: \"%s\"`", timeRange)
		}
		sb.WriteString(", `compact: true`, to quote a few representative exchanges.\n\n")
		sb.WriteString("## Report\n\n")
		sb.WriteString("Summarize when you talk, what about, and how the volume changed over time. ")
		sb.WriteString("Offer `export` (kind `chat`) if the user wants the full transcript")
		if cfg.ExportDir != "" {
			fmt.Fprintf(&sb, "; it is saved under `%s`", cfg.ExportDir)
		}
		sb.WriteString(".\n")

		return &sdkmcp.GetPromptResult{
			Description: "Summarize a conversation with a contact or group",
			Messages: []*sdkmcp.PromptMessage{
				{Role: "user", Content: &sdkmcp.TextContent{Text: sb.String()}},
			},
		}, nil
	}
}

func argument(req *sdkmcp.GetPromptRequest, key string) string {
	if req == nil || req.Params == nil {
		return ""
	}
	return strings.TrimSpace(req.Params.Arguments[key])
}
