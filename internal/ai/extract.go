package ai

import "strings"

// ExtractJSON locates the JSON payload inside raw model output. Models
// frequently wrap the requested JSON in markdown fences or surround it with
// prose, so candidates are tried in order, first match wins:
//
//  1. the interior of a ```json fenced block,
//  2. the interior of any bare ``` fenced block,
//  3. the substring from the first '{' to the last '}' inclusive,
//  4. the raw text unchanged.
//
// The result is a candidate only; it may still fail to parse as JSON.
func ExtractJSON(raw string) string {
	if candidate, ok := fencedBlock(raw, "```json"); ok {
		return candidate
	}
	if candidate, ok := fencedBlock(raw, "```"); ok {
		return candidate
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}

	return raw
}

// fencedBlock returns the content between an opening fence marker and the
// next closing ``` fence.
func fencedBlock(raw, marker string) (string, bool) {
	start := strings.Index(raw, marker)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(marker):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
