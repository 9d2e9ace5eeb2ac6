package tools

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddTool registers a tool after checking its output type with
// CheckOutputSchema.
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	CheckOutputSchema[Out](t.Name)
	sdkmcp.AddTool(srv, t, h)
}

// CheckOutputSchema panics when the zero value of T would fail the output
// schema the SDK infers for it. Two mismatches are caught:
//
//   - slice fields without omitempty/omitzero marshal as null, but the
//     inferred schema demands an array;
//   - json.RawMessage fields marshal as arbitrary JSON, but are inferred as
//     an array of integers.
//
// Untyped (any) outputs are skipped.
func CheckOutputSchema[T any](toolName string) {
	rt := reflect.TypeFor[T]()
	if rt == reflect.TypeFor[any]() {
		return
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if paths := rawMessagePaths(rt, nil, map[reflect.Type]bool{}); len(paths) > 0 {
		panic(fmt.Sprintf("tool %q: output type %s uses json.RawMessage at %s; declare the field as any instead",
			toolName, rt, strings.Join(paths, ", ")))
	}

	schema, err := jsonschema.ForType(rt, &jsonschema.ForOptions{})
	if err != nil {
		return
	}
	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	if err != nil {
		return
	}

	data, err := json.Marshal(reflect.Zero(rt).Interface())
	if err != nil {
		return
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		return
	}
	if err := resolved.Validate(&v); err != nil {
		panic(fmt.Sprintf("tool %q: zero value of %s fails its output schema: %v (json: %s); add omitzero to slice fields or initialize them",
			toolName, rt, err, data))
	}
}

var rawMessageType = reflect.TypeFor[json.RawMessage]()

func rawMessagePaths(t reflect.Type, path []string, visited map[reflect.Type]bool) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == rawMessageType {
		return []string{strings.Join(path, ".")}
	}
	if visited[t] {
		return nil
	}
	visited[t] = true
	defer delete(visited, t)

	var found []string
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if f.IsExported() {
				found = append(found, rawMessagePaths(f.Type, append(path, f.Name), visited)...)
			}
		}
	case reflect.Slice, reflect.Array:
		found = append(found, rawMessagePaths(t.Elem(), append(path, "[]"), visited)...)
	case reflect.Map:
		found = append(found, rawMessagePaths(t.Elem(), append(path, "[value]"), visited)...)
	}
	return found
}
