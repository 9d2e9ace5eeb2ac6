// Package tools contains MCP tool implementations for the Wetrace API.
package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// MIME type constant.
const MimeJSON = "application/json"

// DataOutput wraps a decoded API response. The Wetrace server owns the
// shape of each payload, so it is passed through untyped.
type DataOutput struct {
	Data any `json:"data"`
}

// respond maps a client call's result to a tool result, applying the
// caller's jq filter and compaction.
func respond(ctx context.Context, d *Deps, v any, err error, jq string, compact bool) (*sdkmcp.CallToolResult, DataOutput, error) {
	if err != nil {
		return nil, DataOutput{}, WrapClientError(err)
	}
	shaped, err := d.Shape(ctx, v, jq, compact)
	if err != nil {
		return nil, DataOutput{}, err
	}
	return nil, DataOutput{Data: shaped}, nil
}

// orDefault fills in an omitted (zero) numeric input.
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrInvalidInput(name + " is required")
	}
	return nil
}

func nonNegative(name string, v int) error {
	if v < 0 {
		return ErrInvalidInput(fmt.Sprintf("%s must not be negative", name))
	}
	return nil
}

func oneOf[T ~string](name string, value T, allowed []T) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return ErrInvalidInput(fmt.Sprintf("%s must be one of: %s", name, strings.Join(names, ", ")))
}
