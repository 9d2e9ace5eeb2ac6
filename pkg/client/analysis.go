package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AnalysisKind names one of the statistical reports.
type AnalysisKind string

// Analysis kinds. The per-session kinds need a session ID.
const (
	AnalysisHourly          AnalysisKind = "hourly"
	AnalysisDaily           AnalysisKind = "daily"
	AnalysisWeekday         AnalysisKind = "weekday"
	AnalysisMonthly         AnalysisKind = "monthly"
	AnalysisType            AnalysisKind = "type"
	AnalysisMember          AnalysisKind = "member"
	AnalysisRepeat          AnalysisKind = "repeat"
	AnalysisWordCloud       AnalysisKind = "wordcloud"
	AnalysisWordCloudGlobal AnalysisKind = "wordcloud_global"
	AnalysisTopContacts     AnalysisKind = "top_contacts"
	AnalysisAnnual          AnalysisKind = "annual"
)

// AnalysisKinds lists every analysis kind in display order.
var AnalysisKinds = []AnalysisKind{
	AnalysisHourly, AnalysisDaily, AnalysisWeekday, AnalysisMonthly,
	AnalysisType, AnalysisMember, AnalysisRepeat, AnalysisWordCloud,
	AnalysisWordCloudGlobal, AnalysisTopContacts, AnalysisAnnual,
}

// sessionAnalysisSegments maps per-session kinds to their path segment.
var sessionAnalysisSegments = map[AnalysisKind]string{
	AnalysisHourly:    "hourly",
	AnalysisDaily:     "daily",
	AnalysisWeekday:   "weekday",
	AnalysisMonthly:   "monthly",
	AnalysisType:      "type_distribution",
	AnalysisMember:    "member_activity",
	AnalysisRepeat:    "repeat",
	AnalysisWordCloud: "wordcloud",
}

// ParseAnalysisKind validates s as an analysis kind.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	for _, k := range AnalysisKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: analysis %q", ErrUnknownKind, s)
}

// NeedsSession reports whether the kind is computed for a single session.
func (k AnalysisKind) NeedsSession() bool {
	_, ok := sessionAnalysisSegments[k]
	return ok
}

// AnalysisRequest selects a report for Analyze.
type AnalysisRequest struct {
	Kind      AnalysisKind
	SessionID string // Required when Kind.NeedsSession()
	Year      int    // Annual report only; 0 lets the server pick the current year
}

// Analyze dispatches req to the matching analysis endpoint.
func (c *Client) Analyze(ctx context.Context, req AnalysisRequest) (any, error) {
	switch req.Kind {
	case AnalysisTopContacts:
		return c.TopContacts(ctx)
	case AnalysisWordCloudGlobal:
		return c.GlobalWordCloud(ctx)
	case AnalysisAnnual:
		return c.AnnualReport(ctx, req.Year)
	}
	segment, ok := sessionAnalysisSegments[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: analysis %q", ErrUnknownKind, req.Kind)
	}
	if req.SessionID == "" {
		return nil, fmt.Errorf("%s analysis: %w", req.Kind, ErrSessionRequired)
	}
	return c.sessionAnalysis(ctx, segment, req.SessionID)
}

// HourlyAnalysis returns message counts per hour of day.
func (c *Client) HourlyAnalysis(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "hourly", sessionID)
}

// DailyAnalysis returns message counts per day.
func (c *Client) DailyAnalysis(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "daily", sessionID)
}

// WeekdayAnalysis returns message counts per day of week.
func (c *Client) WeekdayAnalysis(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "weekday", sessionID)
}

// MonthlyAnalysis returns message counts per month.
func (c *Client) MonthlyAnalysis(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "monthly", sessionID)
}

// TypeDistribution returns message counts per message type.
func (c *Client) TypeDistribution(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "type_distribution", sessionID)
}

// MemberActivity returns per-member activity for a group chat.
func (c *Client) MemberActivity(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "member_activity", sessionID)
}

// RepeatAnalysis returns repeated messages in a session.
func (c *Client) RepeatAnalysis(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "repeat", sessionID)
}

// WordCloud returns word frequencies for a session.
func (c *Client) WordCloud(ctx context.Context, sessionID string) (any, error) {
	return c.sessionAnalysis(ctx, "wordcloud", sessionID)
}

// GlobalWordCloud returns word frequencies across all sessions.
func (c *Client) GlobalWordCloud(ctx context.Context) (any, error) {
	return c.get(ctx, "/analysis/wordcloud/global", nil)
}

// TopContacts returns the personal contact ranking.
func (c *Client) TopContacts(ctx context.Context) (any, error) {
	return c.get(ctx, "/analysis/personal/top_contacts", nil)
}

// AnnualReport returns the yearly report. year 0 is omitted.
func (c *Client) AnnualReport(ctx context.Context, year int) (any, error) {
	query := url.Values{}
	if year != 0 {
		query.Set("year", strconv.Itoa(year))
	}
	return c.get(ctx, "/report/annual", query)
}

func (c *Client) sessionAnalysis(ctx context.Context, segment, sessionID string) (any, error) {
	return c.get(ctx, "/analysis/"+segment+"/"+url.PathEscape(sessionID), nil)
}
