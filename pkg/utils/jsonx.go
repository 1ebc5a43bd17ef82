package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the first balanced {...} span out of a raw model
// response and decodes it into out. Responses routinely arrive wrapped in
// markdown fences or surrounded by prose; everything outside the first
// balanced object is discarded. Returns ErrMalformedDraft when no parseable
// object exists.
func ExtractJSONObject(raw string, out interface{}) error {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	if start == -1 {
		return fmt.Errorf("%w: no JSON object in response", ErrMalformedDraft)
	}

	end := findMatchingBrace(cleaned, start)
	if end == -1 {
		return fmt.Errorf("%w: unbalanced JSON object", ErrMalformedDraft)
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDraft, err)
	}
	return nil
}

func stripFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```JSON", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// findMatchingBrace walks the string from an opening brace and returns the
// index of its matching close, skipping brace characters inside JSON strings.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
