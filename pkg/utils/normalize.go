package utils

import (
	"strconv"
	"strings"
)

// CanonicalName normalizes a place or outlet name for use as a dedup key:
// trimmed, lowercased, internal whitespace collapsed.
func CanonicalName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// SafeFloat coerces loosely typed generator values into a float64, falling
// back to def. Generator payloads carry numbers as floats, ints or strings
// interchangeably.
func SafeFloat(v interface{}, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

// SafeString coerces a loosely typed value into a trimmed string.
func SafeString(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
