package client

import (
	"context"
	"fmt"
	"net/url"
	"slices"
)

// ExportKind names one of the export endpoints.
type ExportKind string

// Export kinds.
const (
	ExportChat     ExportKind = "chat"
	ExportForensic ExportKind = "forensic"
	ExportVoices   ExportKind = "voices"
	ExportContacts ExportKind = "contacts"
)

// ExportKinds lists every export kind in display order.
var ExportKinds = []ExportKind{ExportChat, ExportForensic, ExportVoices, ExportContacts}

// ParseExportKind validates s as an export kind.
func ParseExportKind(s string) (ExportKind, error) {
	if slices.Contains(ExportKinds, ExportKind(s)) {
		return ExportKind(s), nil
	}
	return "", fmt.Errorf("%w: export %q", ErrUnknownKind, s)
}

// ValidFormat reports whether format is one of ExportFormats.
func ValidFormat(format string) bool {
	return slices.Contains(ExportFormats, format)
}

// ExportRequest selects an export for Export.
type ExportRequest struct {
	Kind ExportKind
	ExportOptions
	Keyword string // Contacts export only
}

// Export dispatches req to the matching export endpoint and returns the file body.
func (c *Client) Export(ctx context.Context, req ExportRequest) ([]byte, error) {
	switch req.Kind {
	case ExportContacts:
		return c.ExportContacts(ctx, req.Format, req.Keyword)
	case ExportChat, ExportForensic, ExportVoices:
	default:
		return nil, fmt.Errorf("%w: export %q", ErrUnknownKind, req.Kind)
	}
	if req.Talker == "" {
		return nil, fmt.Errorf("%s export: %w", req.Kind, ErrTalkerRequired)
	}
	switch req.Kind {
	case ExportChat:
		return c.ExportChat(ctx, req.ExportOptions)
	case ExportForensic:
		return c.ExportForensic(ctx, req.ExportOptions)
	default:
		return c.ExportVoices(ctx, req.ExportOptions)
	}
}

// ExportChat downloads a conversation rendered in opts.Format (html when empty).
func (c *Client) ExportChat(ctx context.Context, opts ExportOptions) ([]byte, error) {
	format := opts.Format
	if format == "" {
		format = FormatHTML
	}
	query := url.Values{"talker": {opts.Talker}, "format": {format}}
	setIf(query, "name", opts.Name)
	setIf(query, "time_range", opts.TimeRange)
	return c.download(ctx, "/export/chat", query)
}

// ExportForensic downloads a ZIP bundling a conversation's messages and media.
func (c *Client) ExportForensic(ctx context.Context, opts ExportOptions) ([]byte, error) {
	query := url.Values{"talker": {opts.Talker}}
	setIf(query, "name", opts.Name)
	setIf(query, "time_range", opts.TimeRange)
	return c.download(ctx, "/export/forensic", query)
}

// ExportVoices downloads a ZIP of a conversation's voice messages.
func (c *Client) ExportVoices(ctx context.Context, opts ExportOptions) ([]byte, error) {
	query := url.Values{"talker": {opts.Talker}}
	setIf(query, "time_range", opts.TimeRange)
	return c.download(ctx, "/export/voices", query)
}
