package extract

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when a model response contains no JSON object or
// array. For single-recipe imports this surfaces as a request failure; for a
// PDF import it fails the job, since extraction happens once per PDF.
var ErrNoJSON = errors.New("no JSON found in model response")

// ExtractJSON locates the JSON payload inside a model response. Models tend
// to wrap output in markdown code fences or prefix it with prose, so the
// fences are stripped first and then the first balanced {...} or [...] span
// is returned.
func ExtractJSON(raw string) (string, error) {
	text := stripFences(strings.TrimSpace(raw))

	start := -1
	for i, c := range text {
		if c == '{' || c == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", ErrNoJSON
	}

	span := balancedSpan(text[start:])
	if span == "" {
		return "", ErrNoJSON
	}
	return span, nil
}

// stripFences removes leading and trailing markdown code-fence markers,
// including a language tag on the opening fence.
func stripFences(text string) string {
	if strings.HasPrefix(text, "```") {
		text = text[3:]
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if firstLine == "json" || firstLine == "" {
				text = text[idx+1:]
			}
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// balancedSpan returns the prefix of text forming a balanced JSON object or
// array, tracking strings and escapes so braces inside values don't count.
func balancedSpan(text string) string {
	open := text[0]
	var closer byte
	switch open {
	case '{':
		closer = '}'
	case '[':
		closer = ']'
	default:
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
