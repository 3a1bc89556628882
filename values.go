// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

package astdoc

import (
	"fmt"
	"math"
)

// asString returns string value or empty string for other types.
func asString(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	return text
}

// asBool returns boolean value; non-boolean values are false.
func asBool(value any) bool {
	flag, ok := value.(bool)
	return ok && flag
}

// asInt converts JSON and YAML numeric representations to int.
func asInt(value any) int {
	switch typed := value.(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case uint64:
		if typed > math.MaxInt {
			return 0
		}

		return int(typed)
	case float64:
		return int(typed)
	default:
		return 0
	}
}

// asSlice returns list value or nil.
func asSlice(value any) []any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	return items
}

// asMap returns object value for both JSON and YAML decoded mappings.
func asMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = item
		}

		return out, true
	default:
		return nil, false
	}
}

// asStringSlice returns string items of a list, skipping other item types.
func asStringSlice(value any) []string {
	items := asSlice(value)
	if len(items) == 0 {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.(string); ok {
			out = append(out, text)
		}
	}

	return out
}
