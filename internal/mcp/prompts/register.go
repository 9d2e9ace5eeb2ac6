package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "usage_guide",
		Description: "RECOMMENDED: How to identify conversations, keep responses small with jq/compact, and choose analysis kinds.",
	}, HandleUsageGuide(cfg))

	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "contact_review",
		Description: "Summarize the conversation history with one contact or group using the analysis tools.",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "name", Description: "Contact or group name", Required: false},
			{Name: "time_range", Description: "Limit to YYYY-MM-DD~YYYY-MM-DD", Required: false},
		},
	}, HandleContactReview(cfg))

	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "find_conversation",
		Description: "Locate a half-remembered exchange with search and search_context.",
		Arguments: []*sdkmcp.PromptArgument{
			{Name: "keyword", Description: "A word or phrase from the exchange", Required: false},
		},
	}, HandleFindConversation(cfg))
}
