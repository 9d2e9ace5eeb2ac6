package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisKind(t *testing.T) {
	for _, k := range AnalysisKinds {
		got, err := ParseAnalysisKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseAnalysisKind("yearly")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAnalysisKind_NeedsSession(t *testing.T) {
	assert.True(t, AnalysisHourly.NeedsSession())
	assert.True(t, AnalysisWordCloud.NeedsSession())
	assert.False(t, AnalysisWordCloudGlobal.NeedsSession())
	assert.False(t, AnalysisTopContacts.NeedsSession())
	assert.False(t, AnalysisAnnual.NeedsSession())
}

func TestAnalyze_Paths(t *testing.T) {
	tests := []struct {
		req       AnalysisRequest
		wantPath  string
		wantQuery string
	}{
		{AnalysisRequest{Kind: AnalysisHourly, SessionID: "s1"}, "/api/v1/analysis/hourly/s1", ""},
		{AnalysisRequest{Kind: AnalysisDaily, SessionID: "s1"}, "/api/v1/analysis/daily/s1", ""},
		{AnalysisRequest{Kind: AnalysisWeekday, SessionID: "s1"}, "/api/v1/analysis/weekday/s1", ""},
		{AnalysisRequest{Kind: AnalysisMonthly, SessionID: "s1"}, "/api/v1/analysis/monthly/s1", ""},
		{AnalysisRequest{Kind: AnalysisType, SessionID: "s1"}, "/api/v1/analysis/type_distribution/s1", ""},
		{AnalysisRequest{Kind: AnalysisMember, SessionID: "g@chatroom"}, "/api/v1/analysis/member_activity/g@chatroom", ""},
		{AnalysisRequest{Kind: AnalysisRepeat, SessionID: "s1"}, "/api/v1/analysis/repeat/s1", ""},
		{AnalysisRequest{Kind: AnalysisWordCloud, SessionID: "s1"}, "/api/v1/analysis/wordcloud/s1", ""},
		{AnalysisRequest{Kind: AnalysisWordCloudGlobal}, "/api/v1/analysis/wordcloud/global", ""},
		{AnalysisRequest{Kind: AnalysisTopContacts, SessionID: "ignored"}, "/api/v1/analysis/personal/top_contacts", ""},
		{AnalysisRequest{Kind: AnalysisAnnual}, "/api/v1/report/annual", ""},
		{AnalysisRequest{Kind: AnalysisAnnual, Year: 2023}, "/api/v1/report/annual", "year=2023"},
	}

	for _, tt := range tests {
		t.Run(string(tt.req.Kind), func(t *testing.T) {
			c, rec := newTestServer(t, "application/json", http.StatusOK, `[]`)

			_, err := c.Analyze(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, tt.wantQuery, rec.rawQuery)
		})
	}
}

func TestAnalyze_SessionRequired(t *testing.T) {
	c, rec := newTestServer(t, "application/json", http.StatusOK, `[]`)

	_, err := c.Analyze(context.Background(), AnalysisRequest{Kind: AnalysisHourly})
	assert.ErrorIs(t, err, ErrSessionRequired)
	assert.Empty(t, rec.method, "no request should be sent")
}

func TestAnalyze_UnknownKind(t *testing.T) {
	c := New()
	_, err := c.Analyze(context.Background(), AnalysisRequest{Kind: "bogus", SessionID: "s"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseExportKind(t *testing.T) {
	for _, k := range ExportKinds {
		got, err := ParseExportKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseExportKind("images")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidFormat(t *testing.T) {
	for _, f := range ExportFormats {
		assert.True(t, ValidFormat(f), f)
	}
	assert.False(t, ValidFormat("zip"))
	assert.False(t, ValidFormat(""))
}

func TestExport_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		req       ExportRequest
		wantPath  string
		wantQuery string
	}{
		{
			name:      "chat",
			req:       ExportRequest{Kind: ExportChat, ExportOptions: ExportOptions{Talker: "abc", Format: FormatTXT}},
			wantPath:  "/api/v1/export/chat",
			wantQuery: "format=txt&talker=abc",
		},
		{
			name:      "forensic",
			req:       ExportRequest{Kind: ExportForensic, ExportOptions: ExportOptions{Talker: "abc", TimeRange: "last_week"}},
			wantPath:  "/api/v1/export/forensic",
			wantQuery: "talker=abc&time_range=last_week",
		},
		{
			name:      "voices",
			req:       ExportRequest{Kind: ExportVoices, ExportOptions: ExportOptions{Talker: "abc", Format: FormatHTML}},
			wantPath:  "/api/v1/export/voices",
			wantQuery: "talker=abc",
		},
		{
			name:      "contacts without talker",
			req:       ExportRequest{Kind: ExportContacts, ExportOptions: ExportOptions{Format: FormatCSV}, Keyword: "bob"},
			wantPath:  "/api/v1/contacts/export",
			wantQuery: "format=csv&keyword=bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestServer(t, "application/octet-stream", http.StatusOK, "data")

			data, err := c.Export(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, []byte("data"), data)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, tt.wantQuery, rec.rawQuery)
		})
	}
}

func TestExport_TalkerRequired(t *testing.T) {
	c, rec := newTestServer(t, "application/zip", http.StatusOK, "data")

	for _, kind := range []ExportKind{ExportChat, ExportForensic, ExportVoices} {
		_, err := c.Export(context.Background(), ExportRequest{Kind: kind})
		assert.ErrorIs(t, err, ErrTalkerRequired, kind)
	}
	assert.Empty(t, rec.method)
}

func TestExport_UnknownKind(t *testing.T) {
	_, err := New().Export(context.Background(), ExportRequest{Kind: "images"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}
