// Package keyval parses the informal "Key: Value" text format used by
// signature metadata and instrument specification files.
//
// Each line containing a colon is split on the first colon only; both
// sides are trimmed. The value side is interpreted through a restrictive
// literal grammar (integer, float, boolean, None, quoted string, list or
// tuple of literals); anything that does not match is kept as the raw
// trimmed string. Lines without a colon are skipped. Duplicate keys
// overwrite sequentially, so the last occurrence wins.
//
// Parsing is best-effort per line: a malformed value is never an error,
// only unreadable files are.
package keyval

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Map holds the parsed key-value pairs. Values are int64, float64, bool,
// string, nil or []any.
type Map map[string]any

// ParseFile reads and parses the file at path.
func ParseFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Parse parses key-value lines from r, discarding any read error.
// Use ParseFile when reading from disk.
func Parse(r io.Reader) Map {
	m, _ := parse(r)
	return m
}

func parse(r io.Reader) (Map, error) {
	m := make(Map)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}

		m[strings.TrimSpace(key)] = Literal(strings.TrimSpace(val))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

// Literal interprets s through the attempt-ordered literal chain:
// integer, float, boolean, None, quoted string, list/tuple. On no match
// it returns s unchanged.
func Literal(s string) any {
	switch s {
	case "None":
		return nil
	case "True":
		return true
	case "False":
		return false
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	if len(s) >= 2 {
		if q := s[0]; (q == '\'' || q == '"') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}

	if len(s) >= 2 && (s[0] == '[' && s[len(s)-1] == ']' || s[0] == '(' && s[len(s)-1] == ')') {
		return parseSequence(s[1 : len(s)-1])
	}

	return s
}

// parseSequence splits comma-separated elements, honoring nested
// brackets and quotes, and interprets each element as a literal.
func parseSequence(s string) []any {
	out := []any{}
	if strings.TrimSpace(s) == "" {
		return out
	}

	depth := 0
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
		case c == ',' && depth == 0:
			out = append(out, Literal(strings.TrimSpace(s[start:i])))
			start = i + 1
		}
	}

	out = append(out, Literal(strings.TrimSpace(s[start:])))

	return out
}

// Int returns the value under key coerced to int, or def when the key is
// absent or not numeric.
func Int(m Map, key string, def int) int {
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float returns the value under key coerced to float64, or def when the
// key is absent or not numeric.
func Float(m Map, key string, def float64) float64 {
	switch v := m[key].(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return def
	}
}

// String returns the string value under key, or def when the key is
// absent, nil, or not a string.
func String(m Map, key string, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}

	return def
}
