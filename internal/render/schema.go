package render

import (
	"encoding/json"
	"math"
	"math/big"
	"slices"
	"sort"

	"github.com/invopop/jsonschema"
)

// SchemaVersion is the draft the inferred schemas declare.
const SchemaVersion = "https://json-schema.org/draft/2020-12/schema"

// InferSchema describes the shape of a decoded API response.
// Object properties seen in every element of an array are marked required.
func InferSchema(v any) *jsonschema.Schema {
	s := inferValue(v)
	s.Version = SchemaVersion
	return s
}

func inferValue(v any) *jsonschema.Schema {
	switch val := v.(type) {
	case nil:
		return &jsonschema.Schema{Type: "null"}
	case bool:
		return &jsonschema.Schema{Type: "boolean"}
	case json.Number:
		if _, ok := new(big.Int).SetString(val.String(), 10); ok {
			return &jsonschema.Schema{Type: "integer"}
		}
		return &jsonschema.Schema{Type: "number"}
	case float64:
		if math.Trunc(val) == val && !math.IsInf(val, 0) {
			return &jsonschema.Schema{Type: "integer"}
		}
		return &jsonschema.Schema{Type: "number"}
	case int, int64, *big.Int:
		return &jsonschema.Schema{Type: "integer"}
	case string:
		return &jsonschema.Schema{Type: "string"}
	case []byte:
		return &jsonschema.Schema{Type: "string", ContentEncoding: "base64"}
	case []any:
		s := &jsonschema.Schema{Type: "array"}
		if len(val) > 0 {
			items := make([]*jsonschema.Schema, len(val))
			for i, item := range val {
				items[i] = inferValue(item)
			}
			s.Items = merge(items)
		}
		return s
	case map[string]any:
		s := &jsonschema.Schema{Type: "object", Properties: jsonschema.NewProperties()}
		for _, k := range sortedKeys(val) {
			s.Properties.Set(k, inferValue(val[k]))
		}
		return s
	default:
		return &jsonschema.Schema{}
	}
}

// merge folds the schemas of sibling values (array elements) into one.
func merge(schemas []*jsonschema.Schema) *jsonschema.Schema {
	if len(schemas) == 1 {
		return schemas[0]
	}

	byType := make(map[string][]*jsonschema.Schema)
	for _, s := range schemas {
		byType[s.Type] = append(byType[s.Type], s)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	variants := make([]*jsonschema.Schema, 0, len(types))
	for _, t := range types {
		switch t {
		case "object":
			variants = append(variants, mergeObjects(byType[t]))
		case "array":
			variants = append(variants, mergeArrays(byType[t]))
		default:
			variants = append(variants, byType[t][0])
		}
	}

	if len(variants) == 1 {
		return variants[0]
	}
	// integer is a subset of number
	if len(variants) == 2 && types[0] == "integer" && types[1] == "number" {
		return &jsonschema.Schema{Type: "number"}
	}
	return &jsonschema.Schema{AnyOf: variants}
}

func mergeObjects(schemas []*jsonschema.Schema) *jsonschema.Schema {
	props := make(map[string][]*jsonschema.Schema)
	for _, s := range schemas {
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			props[pair.Key] = append(props[pair.Key], pair.Value)
		}
	}

	merged := &jsonschema.Schema{Type: "object", Properties: jsonschema.NewProperties()}
	for _, k := range sortedKeys(props) {
		merged.Properties.Set(k, merge(props[k]))
		if len(props[k]) == len(schemas) && !slices.ContainsFunc(props[k], isNull) {
			merged.Required = append(merged.Required, k)
		}
	}
	return merged
}

func mergeArrays(schemas []*jsonschema.Schema) *jsonschema.Schema {
	var items []*jsonschema.Schema
	for _, s := range schemas {
		if s.Items != nil {
			items = append(items, s.Items)
		}
	}
	merged := &jsonschema.Schema{Type: "array"}
	if len(items) > 0 {
		merged.Items = merge(items)
	}
	return merged
}

func isNull(s *jsonschema.Schema) bool {
	return s.Type == "null"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
