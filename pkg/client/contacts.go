package client

import (
	"context"
	"net/url"
	"strconv"
)

// Contacts lists contacts, optionally filtered by keyword.
func (c *Client) Contacts(ctx context.Context, opts ListOptions) (any, error) {
	return c.get(ctx, "/contacts", listQuery(opts))
}

// Contact retrieves a single contact by username.
func (c *Client) Contact(ctx context.Context, contactID string) (any, error) {
	return c.get(ctx, "/contacts/"+url.PathEscape(contactID), nil)
}

// NeedContact lists contacts not talked to for at least days days.
// days is sent as given; DefaultNeedDays is the usual value.
func (c *Client) NeedContact(ctx context.Context, days int) (any, error) {
	return c.get(ctx, "/contacts/need-contact", url.Values{"days": {strconv.Itoa(days)}})
}

// ExportContacts downloads the contact list as csv or xlsx.
// An empty format means csv.
func (c *Client) ExportContacts(ctx context.Context, format, keyword string) ([]byte, error) {
	if format == "" {
		format = FormatCSV
	}
	query := url.Values{"format": {format}}
	setIf(query, "keyword", keyword)
	return c.download(ctx, "/contacts/export", query)
}

// ChatRooms lists group chats, optionally filtered by keyword.
func (c *Client) ChatRooms(ctx context.Context, opts ListOptions) (any, error) {
	return c.get(ctx, "/chatrooms", listQuery(opts))
}

// ChatRoom retrieves a single group chat by ID.
func (c *Client) ChatRoom(ctx context.Context, chatRoomID string) (any, error) {
	return c.get(ctx, "/chatrooms/"+url.PathEscape(chatRoomID), nil)
}
