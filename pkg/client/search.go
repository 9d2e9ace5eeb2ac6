package client

import (
	"context"
	"net/url"
	"strconv"
)

// Search runs a full-text search. Keyword, limit and offset are always sent.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (any, error) {
	query := pageQuery(opts.Limit, opts.Offset)
	query.Set("keyword", opts.Keyword)
	setIf(query, "talker", opts.Talker)
	setIf(query, "sender", opts.Sender)
	if opts.Type != nil {
		query.Set("type", strconv.Itoa(*opts.Type))
	}
	setIf(query, "time_range", opts.TimeRange)
	return c.get(ctx, "/search", query)
}

// SearchContext retrieves the messages surrounding message seq in a conversation.
func (c *Client) SearchContext(ctx context.Context, opts SearchContextOptions) (any, error) {
	query := url.Values{}
	query.Set("talker", opts.Talker)
	query.Set("seq", strconv.FormatInt(opts.Seq, 10))
	query.Set("before", strconv.Itoa(intOrDefault(opts.Before, DefaultContextWindow)))
	query.Set("after", strconv.Itoa(intOrDefault(opts.After, DefaultContextWindow)))
	return c.get(ctx, "/search/context", query)
}
