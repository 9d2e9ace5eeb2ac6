package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/wetrace/internal/mcp/tools"
	"github.com/usestring/wetrace/pkg/client"
)

// Resource URI scheme: wetrace://
// Supported URIs:
//   wetrace://dashboard
//   wetrace://contact/{id}
//   wetrace://chatroom/{id}
//   wetrace://messages/{talker}

const resourceScheme = "wetrace://"

// registerResources registers the dashboard resource and resource templates.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         resourceScheme + "dashboard",
		Name:        "Dashboard",
		Description: "Overview statistics of the chat database.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourceDashboard)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: resourceScheme + "contact/{id}",
		Name:        "Contact",
		Description: "One contact's profile. Same data as the contact tool.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.5,
		},
	}, s.handleResourceLookup)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: resourceScheme + "chatroom/{id}",
		Name:        "Chat Room",
		Description: "One group chat with its members. Same data as the chatroom tool.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.5,
		},
	}, s.handleResourceLookup)

	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: resourceScheme + "messages/{talker}",
		Name:        "Recent Messages",
		Description: "The latest 50 messages of a conversation, newest first. High context cost; prefer the messages tool with jq or compact.",
		MIMEType:    tools.MimeJSON,
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.3,
		},
	}, s.handleResourceMessages)
}

func (s *Server) handleResourceDashboard(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	v, err := s.deps.Client.Dashboard(ctx)
	if err != nil {
		return nil, tools.WrapClientError(err)
	}
	return toResourceResult(req.Params.URI, v)
}

func (s *Server) handleResourceLookup(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	kind, id, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	var v any
	switch kind {
	case "contact":
		v, err = s.deps.Client.Contact(ctx, id)
	case "chatroom":
		v, err = s.deps.Client.ChatRoom(ctx, id)
	default:
		return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, tools.WrapClientError(err)
	}
	return toResourceResult(req.Params.URI, v)
}

func (s *Server) handleResourceMessages(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	_, talker, err := parseResourceURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	v, err := s.deps.Client.Messages(ctx, client.MessagesOptions{TalkerID: talker, Reverse: true, Limit: client.DefaultLimit})
	if err != nil {
		return nil, tools.WrapClientError(err)
	}
	return toResourceResult(req.Params.URI, v)
}

// parseResourceURI splits wetrace://{kind}/{id} into its parts. The id is
// path-unescaped.
func parseResourceURI(uri string) (kind, id string, err error) {
	rest, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return "", "", tools.ErrInvalidInput("invalid URI scheme: expected " + resourceScheme)
	}
	kind, raw, ok := strings.Cut(rest, "/")
	if !ok || raw == "" {
		return "", "", tools.ErrInvalidInput(fmt.Sprintf("%s URI requires an id", kind))
	}
	id, err = url.PathUnescape(raw)
	if err != nil {
		return "", "", tools.ErrInvalidInput(fmt.Sprintf("invalid id in %s: %v", uri, err))
	}
	return kind, id, nil
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing resource: %w", err)
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: tools.MimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
