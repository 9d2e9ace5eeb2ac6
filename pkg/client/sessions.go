package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Sessions lists chat sessions, optionally filtered by name.
func (c *Client) Sessions(ctx context.Context, opts ListOptions) (any, error) {
	return c.get(ctx, "/sessions", listQuery(opts))
}

// DeleteSession removes a session by its talker username.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) (any, error) {
	return c.request(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(sessionID), nil)
}

// Messages lists messages matching opts. The reverse flag is always sent.
func (c *Client) Messages(ctx context.Context, opts MessagesOptions) (any, error) {
	query := pageQuery(opts.Limit, opts.Offset)
	query.Set("reverse", strconv.FormatBool(opts.Reverse))
	setIf(query, "talker_id", opts.TalkerID)
	setIf(query, "sender_id", opts.SenderID)
	setIf(query, "keyword", opts.Keyword)
	setIf(query, "time_range", opts.TimeRange)
	return c.get(ctx, "/messages", query)
}

// Dashboard retrieves the overview statistics.
func (c *Client) Dashboard(ctx context.Context) (any, error) {
	return c.get(ctx, "/dashboard", nil)
}

func pageQuery(limit, offset int) url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))
	return query
}

func listQuery(opts ListOptions) url.Values {
	query := pageQuery(opts.Limit, opts.Offset)
	setIf(query, "keyword", opts.Keyword)
	return query
}

// setIf sets key only when value is non-empty.
func setIf(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
