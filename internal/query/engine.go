// Package query filters API responses with jq expressions.
package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/usestring/wetrace/internal/cache"
)

// ErrBinaryInput is returned when a file download is piped into a query.
var ErrBinaryInput = errors.New("cannot run jq on a file response")

// Engine executes jq expressions against decoded responses. Compiled
// programs are kept in an LRU cache and reused across calls.
type Engine struct {
	programs *cache.ProgramCache
}

// NewEngine creates an engine caching up to cacheSize compiled programs.
func NewEngine(cacheSize int) (*Engine, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	programs, err := cache.NewProgramCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{programs: programs}, nil
}

// Run evaluates expression against input. A single result is returned as
// is, several results are returned as a slice and no result yields nil.
func (e *Engine) Run(ctx context.Context, expression string, input any) (any, error) {
	if _, ok := input.([]byte); ok {
		return nil, ErrBinaryInput
	}

	code, err := e.compile(expression)
	if err != nil {
		return nil, err
	}

	var results []any
	iter := code.RunWithContext(ctx, normalize(input))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			var haltErr *gojq.HaltError
			if errors.As(err, &haltErr) && haltErr.Value() == nil {
				break
			}
			return nil, errors.New(formatJQError(err))
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// Validate checks that expression parses and compiles.
func (e *Engine) Validate(expression string) error {
	_, err := e.compile(expression)
	return err
}

func (e *Engine) compile(expression string) (*gojq.Code, error) {
	if code, ok := e.programs.Get(expression); ok {
		return code, nil
	}

	q, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	e.programs.Put(expression, code)
	return code, nil
}

// normalize converts json.Number values into the numeric types gojq
// understands: int, *big.Int for integers beyond int, float64 otherwise.
// The input is not modified.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		if b, ok := new(big.Int).SetString(val.String(), 10); ok {
			return b
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// formatJQError appends a hint for the runtime errors users hit most when
// exploring an unfamiliar response.
func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		return fmt.Sprintf("jq halted with: %v", haltErr.Value())
	}

	msg := err.Error()
	var hint string
	switch {
	case strings.Contains(msg, "cannot iterate over: null"):
		hint = " (the path may not exist in this response)"
	case strings.Contains(msg, "cannot index") && strings.Contains(msg, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(msg, "object") && strings.Contains(msg, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(msg, "array") && strings.Contains(msg, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}
	return "jq: " + msg + hint
}
