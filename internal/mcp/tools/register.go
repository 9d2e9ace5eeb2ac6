package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// readOnly marks tools that never change server state.
var readOnly = &sdkmcp.ToolAnnotations{ReadOnlyHint: true}

// Register registers all tools with the MCP server. Deleting sessions is
// left to the CLI.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "sessions",
		Description: "List chat sessions (conversations) ordered by recent activity. Each entry carries the talker username used by messages, analysis and export.",
		Annotations: readOnly,
	}, ToolSessions(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "messages",
		Description: "List messages. Filter by talker (conversation), sender, keyword or time_range; set reverse=true for newest first.",
		Annotations: readOnly,
	}, ToolMessages(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "contacts",
		Description: "List contacts, optionally filtered by keyword.",
		Annotations: readOnly,
	}, ToolContacts(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "contact",
		Description: "Get one contact by username.",
		Annotations: readOnly,
	}, ToolContact(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "need_contact",
		Description: "List contacts with no conversation in the last N days (default 7).",
		Annotations: readOnly,
	}, ToolNeedContact(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "chatrooms",
		Description: "List group chats, optionally filtered by keyword.",
		Annotations: readOnly,
	}, ToolChatRooms(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "chatroom",
		Description: "Get one group chat by id, including its members.",
		Annotations: readOnly,
	}, ToolChatRoom(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "search",
		Description: "Full-text search over all messages. Use search_context with the hit's talker and seq to read the surrounding conversation.",
		Annotations: readOnly,
	}, ToolSearch(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "search_context",
		Description: "Get the messages before and after a search hit (default 10 each side).",
		Annotations: readOnly,
	}, ToolSearchContext(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "dashboard",
		Description: "Get overview statistics: message, contact and group counts.",
		Annotations: readOnly,
	}, ToolDashboard(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "analysis",
		Description: "Run a statistical report. Per-conversation kinds (hourly, daily, weekday, monthly, type, member, repeat, wordcloud) need session_id; wordcloud_global, top_contacts and annual do not.",
		Annotations: readOnly,
	}, ToolAnalysis(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "export",
		Description: "Export a conversation (chat, forensic, voices) or the contact list (contacts) to a file in the local export directory. Returns the saved path.",
	}, ToolExport(d))
}
