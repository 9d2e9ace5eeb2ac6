package client

import (
	"errors"
	"fmt"
)

// Default paging and window values used when an option is left unset.
const (
	DefaultLimit         = 50
	DefaultNeedDays      = 7
	DefaultContextWindow = 10
)

// Export formats accepted by the chat export endpoint.
const (
	FormatHTML = "html"
	FormatTXT  = "txt"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatDOCX = "docx"
	FormatPDF  = "pdf"
)

// ExportFormats lists every export format in display order.
var ExportFormats = []string{FormatHTML, FormatTXT, FormatCSV, FormatXLSX, FormatDOCX, FormatPDF}

// Validation errors returned before any request is made.
var (
	ErrSessionRequired = errors.New("session id is required")
	ErrTalkerRequired  = errors.New("talker is required")
	ErrUnknownKind     = errors.New("unknown kind")
)

// ListOptions pages through sessions, contacts and chat rooms.
type ListOptions struct {
	Keyword string // Name filter; omitted when empty
	Limit   int    // Page size; sent as given, so callers pick DefaultLimit
	Offset  int
}

// MessagesOptions filters the message listing.
type MessagesOptions struct {
	TalkerID  string
	SenderID  string
	Keyword   string
	TimeRange string // "2024-01-01~2024-01-31" or a shorthand such as "last_week"
	Reverse   bool   // Always sent, as true or false
	Limit     int
	Offset    int
}

// SearchOptions configures a full-text search.
type SearchOptions struct {
	Keyword   string
	Talker    string
	Sender    string
	Type      *int // Message type; omitted when nil
	TimeRange string
	Limit     int
	Offset    int
}

// SearchContextOptions selects the messages around a search hit.
type SearchContextOptions struct {
	Talker string
	Seq    int64
	Before *int // nil means DefaultContextWindow
	After  *int // nil means DefaultContextWindow
}

// ExportOptions configures the chat, forensic and voice exports.
// Format is only sent by ExportChat.
type ExportOptions struct {
	Talker    string
	Name      string
	TimeRange string
	Format    string
}

// APIError represents an error response from the Wetrace API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ConnectionError is returned when the API could not be reached at all.
type ConnectionError struct {
	Reason error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Reason)
}

func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// errorResponse is the JSON structure for API errors. Error is nil when the
// key is absent.
type errorResponse struct {
	Error *string `json:"error"`
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
