package render

import (
	"fmt"
	"unicode/utf8"
)

// CompactOptions controls how Compact shortens a response before display.
type CompactOptions struct {
	MaxArrayItems int // Keep the first N array elements (0 = no limit)
	MaxStringLen  int // Truncate strings longer than N characters (0 = no limit)
	MaxDepth      int // Replace values nested deeper than N (0 = unlimited)
}

// Compact trims long arrays and strings in a decoded response. Chat content
// is mostly multi-byte text, so string limits count runes rather than bytes.
// The input is not modified.
func Compact(v any, opts CompactOptions) any {
	return compactValue(v, opts, 0)
}

func compactValue(v any, opts CompactOptions, depth int) any {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return "[max depth]"
	}

	switch val := v.(type) {
	case []any:
		return compactSlice(val, opts, depth)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = compactValue(item, opts, depth+1)
		}
		return out
	case string:
		return truncate(val, opts.MaxStringLen)
	default:
		return v
	}
}

func compactSlice(arr []any, opts CompactOptions, depth int) []any {
	keep := len(arr)
	if opts.MaxArrayItems > 0 && keep > opts.MaxArrayItems {
		keep = opts.MaxArrayItems
	}

	out := make([]any, 0, keep+1)
	for _, item := range arr[:keep] {
		out = append(out, compactValue(item, opts, depth+1))
	}
	if dropped := len(arr) - keep; dropped > 0 {
		out = append(out, fmt.Sprintf("... (%d more items)", dropped))
	}
	return out
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	n := utf8.RuneCountInString(s)
	if n <= limit {
		return s
	}

	cut := 0
	for i := range s {
		if limit == 0 {
			cut = i
			break
		}
		limit--
	}
	return fmt.Sprintf("%s... (%d more chars)", s[:cut], n-utf8.RuneCountInString(s[:cut]))
}
