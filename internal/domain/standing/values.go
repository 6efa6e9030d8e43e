package standing

import (
	"strconv"
	"strings"
)

// Helpers for pulling typed values out of decoded provider documents.
// All of them tolerate nil maps and wrong types.

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func getStringAny(src map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := getString(src, key); value != "" {
			return value
		}
	}
	return ""
}

func getInt(src map[string]any, key string) int {
	return int(getInt64(src, key))
}

func getIntAny(src map[string]any, keys ...string) int {
	for _, key := range keys {
		if value := getInt(src, key); value != 0 {
			return value
		}
	}
	return 0
}

func getInt64(src map[string]any, key string) int64 {
	if src == nil {
		return 0
	}
	return asInt64(src[key])
}

func asInt64(raw any) int64 {
	switch typed := raw.(type) {
	case nil:
		return 0
	case float64:
		return int64(typed)
	case float32:
		return int64(typed)
	case int:
		return int64(typed)
	case int32:
		return int64(typed)
	case int64:
		return typed
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0
		}
		return v
	case map[string]any:
		for _, nestedKey := range []string{"total", "all", "overall", "value"} {
			if v := asInt64(typed[nestedKey]); v != 0 {
				return v
			}
		}
		home := asInt64(typed["home"])
		away := asInt64(typed["away"])
		return home + away
	default:
		return 0
	}
}

// numericValue reports whether raw carries any numeric payload at all,
// distinguishing an explicit zero from a missing value.
func numericValue(raw any) (int, bool) {
	switch typed := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return int(typed), true
	case float32:
		return int(typed), true
	case int:
		return typed, true
	case int32:
		return int(typed), true
	case int64:
		return int(typed), true
	case string:
		v, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return v, true
	case map[string]any:
		for _, key := range []string{"total", "all", "overall", "value"} {
			if v, ok := numericValue(typed[key]); ok {
				return v, true
			}
		}
		home, okHome := numericValue(typed["home"])
		away, okAway := numericValue(typed["away"])
		if okHome || okAway {
			return home + away, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// relationData unwraps the provider's {"data": {...}} relation envelope.
func relationData(raw any) map[string]any {
	if raw == nil {
		return nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := obj["data"].(map[string]any); ok {
		return data
	}
	return obj
}

// relationList unwraps list relations which may arrive bare or wrapped
// in a {"data": [...]} envelope.
func relationList(raw any) []any {
	switch typed := raw.(type) {
	case nil:
		return nil
	case []any:
		return typed
	case map[string]any:
		if nested, ok := typed["data"].([]any); ok {
			return nested
		}
		return nil
	default:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

// normalizeTypeName lowers and squashes separators so "Goals-For",
// "goals_for" and "Goals For" all compare equal.
func normalizeTypeName(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "_", " ")
	raw = strings.ReplaceAll(raw, "-", " ")
	return strings.Join(strings.Fields(raw), " ")
}
