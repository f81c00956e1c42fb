package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// maxParsedTerms bounds the fallback extraction so a runaway model
// response cannot flood the pipeline.
const maxParsedTerms = 32

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseTermList extracts a candidate term list from raw oracle output.
//
// Primary path: the output is a well-formed JSON array of strings,
// possibly inside a Markdown code fence. Fallback path: the first
// bracketed segment is parsed as JSON; failing that, lines and commas
// are treated as delimiters. The result is always a typed string slice,
// empty when nothing usable was found, never a partial structure.
func ParseTermList(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	// Strict path: the whole output is a JSON array
	if terms, ok := unmarshalStringArray(text); ok {
		return cleanTerms(terms)
	}

	// Fallback 1: first bracketed segment
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		if terms, ok := unmarshalStringArray(text[start : end+1]); ok {
			return cleanTerms(terms)
		}
	}

	// Fallback 2: line- or comma-delimited list
	return cleanTerms(splitDelimited(text))
}

func unmarshalStringArray(s string) ([]string, bool) {
	var terms []string
	if err := json.Unmarshal([]byte(s), &terms); err != nil {
		return nil, false
	}
	return terms, true
}

var bulletPattern = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

func splitDelimited(text string) []string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = bulletPattern.ReplaceAllString(line, "")
		for _, p := range strings.Split(line, ",") {
			parts = append(parts, p)
		}
	}
	return parts
}

func cleanTerms(parts []string) []string {
	var terms []string
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		p = strings.TrimSpace(p)
		if p == "" || len(p) > 120 {
			continue
		}
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, p)
		if len(terms) >= maxParsedTerms {
			break
		}
	}
	return terms
}
