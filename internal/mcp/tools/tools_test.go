package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wetrace/internal/config"
	"github.com/usestring/wetrace/internal/query"
	"github.com/usestring/wetrace/pkg/client"
)

type lastRequest struct {
	mu    sync.Mutex
	path  string
	query url.Values
	calls int
}

// newTestDeps wires Deps to an httptest server. A nil handler answers every
// request with an empty JSON object.
func newTestDeps(t *testing.T, h http.HandlerFunc) (*Deps, *lastRequest) {
	t.Helper()
	rec := &lastRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.calls++
		rec.mu.Unlock()
		if h != nil {
			h(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	engine, err := query.NewEngine(8)
	require.NoError(t, err)

	cfg := &config.Config{
		ExportDir:            t.TempDir(),
		CompactMaxArrayItems: 2,
		CompactMaxStringLen:  100,
		CompactMaxDepth:      3,
	}
	return &Deps{
		Client: client.New(client.WithBaseURL(srv.URL + "/api/v1")),
		Config: cfg,
		Query:  engine,
	}, rec
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	return coded.Code
}

func TestToolSessions_DefaultsAndJQ(t *testing.T) {
	d, rec := newTestDeps(t, jsonBody(`[{"userName":"wxid_a"},{"userName":"wxid_b"}]`))

	_, out, err := ToolSessions(d)(context.Background(), nil, SessionsInput{JQ: ".[].userName"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/sessions", rec.path)
	assert.Equal(t, "50", rec.query.Get("limit"))
	assert.Equal(t, "0", rec.query.Get("offset"))
	assert.False(t, rec.query.Has("keyword"))
	assert.Equal(t, []any{"wxid_a", "wxid_b"}, out.Data)
}

func TestToolMessages_Compact(t *testing.T) {
	d, rec := newTestDeps(t, jsonBody(`{"items":[1,2,3,4]}`))

	_, out, err := ToolMessages(d)(context.Background(), nil, MessagesInput{Talker: "wxid_a", Compact: true})
	require.NoError(t, err)

	assert.Equal(t, "wxid_a", rec.query.Get("talker_id"))
	assert.Equal(t, "false", rec.query.Get("reverse"))
	items := out.Data.(map[string]any)["items"].([]any)
	assert.Len(t, items, 3)
	assert.Equal(t, "... (2 more items)", items[2])
}

func TestToolPaging_OmittedInputsGetDefaults(t *testing.T) {
	d, rec := newTestDeps(t, nil)
	ctx := context.Background()

	_, _, err := ToolNeedContact(d)(ctx, nil, NeedContactInput{})
	require.NoError(t, err)
	assert.Equal(t, "7", rec.query.Get("days"))

	_, _, err = ToolNeedContact(d)(ctx, nil, NeedContactInput{Days: 30})
	require.NoError(t, err)
	assert.Equal(t, "30", rec.query.Get("days"))

	_, _, err = ToolContacts(d)(ctx, nil, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, "50", rec.query.Get("limit"))

	_, _, err = ToolChatRooms(d)(ctx, nil, ListInput{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, "5", rec.query.Get("limit"))
	assert.Equal(t, "10", rec.query.Get("offset"))

	_, _, err = ToolSearch(d)(ctx, nil, SearchInput{Keyword: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "50", rec.query.Get("limit"))
}

func TestToolMessages_NegativeLimit(t *testing.T) {
	d, rec := newTestDeps(t, nil)

	_, _, err := ToolMessages(d)(context.Background(), nil, MessagesInput{Limit: -1})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Zero(t, rec.calls)
}

func TestToolContact_NotFound(t *testing.T) {
	d, rec := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"contact not found"}`))
	})

	_, _, err := ToolContact(d)(context.Background(), nil, LookupInput{ID: "wxid_missing"})
	assert.Equal(t, ErrCodeNotFound, codeOf(t, err))
	assert.Equal(t, "/api/v1/contacts/wxid_missing", rec.path)
}

func TestToolContact_RequiresID(t *testing.T) {
	d, _ := newTestDeps(t, nil)

	_, _, err := ToolContact(d)(context.Background(), nil, LookupInput{ID: "  "})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}

func TestToolSearch(t *testing.T) {
	d, rec := newTestDeps(t, nil)
	msgType := 1

	_, _, err := ToolSearch(d)(context.Background(), nil, SearchInput{Keyword: "hello", Type: &msgType})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/search", rec.path)
	assert.Equal(t, "hello", rec.query.Get("keyword"))
	assert.Equal(t, "1", rec.query.Get("type"))

	_, _, err = ToolSearch(d)(context.Background(), nil, SearchInput{})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}

func TestToolSearchContext_Window(t *testing.T) {
	d, rec := newTestDeps(t, nil)
	zero := 0

	_, _, err := ToolSearchContext(d)(context.Background(), nil, SearchContextInput{Talker: "wxid_a", Seq: 99, Before: &zero})
	require.NoError(t, err)

	assert.Equal(t, "99", rec.query.Get("seq"))
	assert.Equal(t, "0", rec.query.Get("before"))
	assert.Equal(t, "10", rec.query.Get("after"))
}

func TestToolAnalysis(t *testing.T) {
	d, rec := newTestDeps(t, nil)

	_, _, err := ToolAnalysis(d)(context.Background(), nil, AnalysisInput{Kind: "member", SessionID: "123@chatroom"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/analysis/member_activity/123@chatroom", rec.path)

	_, _, err = ToolAnalysis(d)(context.Background(), nil, AnalysisInput{Kind: "annual", Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/report/annual", rec.path)
	assert.Equal(t, "2024", rec.query.Get("year"))
}

func TestToolAnalysis_InvalidInput(t *testing.T) {
	d, rec := newTestDeps(t, nil)

	_, _, err := ToolAnalysis(d)(context.Background(), nil, AnalysisInput{Kind: "yearly"})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Contains(t, err.Error(), "top_contacts")

	_, _, err = ToolAnalysis(d)(context.Background(), nil, AnalysisInput{Kind: "hourly"})
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
	assert.Zero(t, rec.calls)
}

func TestToolExport_SavesFile(t *testing.T) {
	d, rec := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write([]byte("PK\x03\x04"))
	})

	_, out, err := ToolExport(d)(context.Background(), nil, ExportInput{Kind: "voices", Talker: "abc"})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/export/voices", rec.path)
	assert.Equal(t, url.Values{"talker": {"abc"}}, rec.query)
	assert.Equal(t, filepath.Join(d.Config.ExportDir, "voices_abc.html"), out.Path)
	assert.Equal(t, 4, out.Bytes)
	assert.Equal(t, "4 bytes", out.Size)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04", string(data))
}

func TestToolExport_ContactsDefaultsToCSV(t *testing.T) {
	d, rec := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("name\n"))
	})

	_, out, err := ToolExport(d)(context.Background(), nil, ExportInput{Kind: "contacts"})
	require.NoError(t, err)

	assert.Equal(t, "csv", rec.query.Get("format"))
	assert.Equal(t, "contacts_export.csv", filepath.Base(out.Path))
}

func TestToolExport_Validation(t *testing.T) {
	d, rec := newTestDeps(t, nil)

	tests := []struct {
		name  string
		input ExportInput
	}{
		{"unknown kind", ExportInput{Kind: "photos", Talker: "abc"}},
		{"missing talker", ExportInput{Kind: "chat"}},
		{"bad format", ExportInput{Kind: "chat", Talker: "abc", Format: "rtf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ToolExport(d)(context.Background(), nil, tt.input)
			assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
		})
	}
	assert.Zero(t, rec.calls)
}

func TestToolDashboard_ConnectionFailed(t *testing.T) {
	d, _ := newTestDeps(t, nil)
	d.Client = client.New(client.WithBaseURL("http://127.0.0.1:1/api/v1"))

	_, _, err := ToolDashboard(d)(context.Background(), nil, DashboardInput{})
	assert.Equal(t, ErrCodeConnectionFailed, codeOf(t, err))
}

func TestDeps_Shape_BadJQ(t *testing.T) {
	d, _ := newTestDeps(t, nil)

	_, err := d.Shape(context.Background(), map[string]any{}, ".[", false)
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}

func TestDeps_Shape_CompactDepthFromConfig(t *testing.T) {
	d, _ := newTestDeps(t, nil)
	in := map[string]any{"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": 1}}}}

	got, err := d.Shape(context.Background(), in, "", true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": "[max depth]"}}}, got)

	got, err = d.Shape(context.Background(), in, "", false)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}
