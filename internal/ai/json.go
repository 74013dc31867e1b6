package ai

import (
	"encoding/json"
	"strings"
)

// ExtractJSON returns the first JSON object embedded in a model response:
// code fences are stripped, then the text from the first '{' to the last '}'
// is taken. If that does not parse, a repair pass for unquoted keys and
// trailing commas is tried before giving up with ErrNoJSON.
func ExtractJSON(text string) (string, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	s = s[start : end+1]
	if json.Valid([]byte(s)) {
		return s, nil
	}
	if repaired := repairJSON(s); json.Valid([]byte(repaired)) {
		return repaired, nil
	}
	return "", ErrNoJSON
}

// repairJSON quotes bare object keys and drops trailing commas before a
// closing bracket. String contents are left alone.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)
	inString := false
	for i := 0; i < len(in); i++ {
		ch := in[i]
		if inString {
			out = append(out, ch)
			if ch == '\\' && i+1 < len(in) {
				i++
				out = append(out, in[i])
			} else if ch == '"' {
				inString = false
			}
			continue
		}
		switch {
		case ch == '"':
			inString = true
			out = append(out, ch)
		case ch == ',':
			j := i + 1
			for j < len(in) && isSpace(in[j]) {
				j++
			}
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				continue
			}
			out = append(out, ch)
		case isKeyStart(ch) && expectsKey(out):
			j := i
			for j < len(in) && isKeyChar(in[j]) {
				j++
			}
			k := j
			for k < len(in) && isSpace(in[k]) {
				k++
			}
			if k < len(in) && in[k] == ':' {
				out = append(out, '"')
				out = append(out, in[i:j]...)
				out = append(out, '"')
				i = j - 1
				continue
			}
			out = append(out, ch)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

// expectsKey reports whether the last significant rune opens an object or
// separates members, so the next bare word must be a key.
func expectsKey(out []rune) bool {
	for i := len(out) - 1; i >= 0; i-- {
		if isSpace(out[i]) {
			continue
		}
		return out[i] == '{' || out[i] == ','
	}
	return false
}

func isSpace(r rune) bool { return r == ' ' || r == '\n' || r == '\t' || r == '\r' }

func isKeyStart(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' }

func isKeyChar(r rune) bool { return isKeyStart(r) || (r >= '0' && r <= '9') }
