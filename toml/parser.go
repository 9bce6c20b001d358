package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports the line a syntax error was found on
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("toml: line %d: %s", e.Line, e.Msg)
}

// Parse reads a document into nested maps
// Supported: [table] and [dotted.table] headers, bare and quoted keys,
// basic and literal strings, integers, floats, booleans, and single-line arrays
func Parse(data []byte) (map[string]any, error) {
	root := make(map[string]any)
	scope := root

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}
		lineNo := i + 1

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") || strings.HasPrefix(line, "[[") {
				return nil, &ParseError{lineNo, "malformed table header"}
			}
			keys, err := splitKey(line[1 : len(line)-1])
			if err != nil {
				return nil, &ParseError{lineNo, err.Error()}
			}
			scope, err = table(root, keys)
			if err != nil {
				return nil, &ParseError{lineNo, err.Error()}
			}
			continue
		}

		eq := indexOutsideQuotes(line, '=')
		if eq < 0 {
			return nil, &ParseError{lineNo, "expected key = value"}
		}
		keys, err := splitKey(line[:eq])
		if err != nil {
			return nil, &ParseError{lineNo, err.Error()}
		}
		val, err := parseValue(strings.TrimSpace(line[eq+1:]))
		if err != nil {
			return nil, &ParseError{lineNo, err.Error()}
		}

		parent, err := table(scope, keys[:len(keys)-1])
		if err != nil {
			return nil, &ParseError{lineNo, err.Error()}
		}
		last := keys[len(keys)-1]
		if _, dup := parent[last]; dup {
			return nil, &ParseError{lineNo, fmt.Sprintf("duplicate key %q", last)}
		}
		parent[last] = val
	}
	return root, nil
}

// table walks or creates nested tables under m
func table(m map[string]any, keys []string) (map[string]any, error) {
	for _, k := range keys {
		next, ok := m[k]
		if !ok {
			t := make(map[string]any)
			m[k] = t
			m = t
			continue
		}
		t, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q is not a table", k)
		}
		m = t
	}
	return m, nil
}

func stripComment(s string) string {
	if i := indexOutsideQuotes(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// indexOutsideQuotes finds the first c not inside a basic or literal string
func indexOutsideQuotes(s string, c byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		switch {
		case quote != 0:
			if s[i] == '\\' && quote == '"' {
				i++
			} else if s[i] == quote {
				quote = 0
			}
		case s[i] == '"' || s[i] == '\'':
			quote = s[i]
		case s[i] == c:
			return i
		}
	}
	return -1
}

func splitKey(s string) ([]string, error) {
	var keys []string
	for s = strings.TrimSpace(s); ; {
		var k string
		if s != "" && (s[0] == '"' || s[0] == '\'') {
			end := indexOutsideQuotes(s, '.')
			if end < 0 {
				end = len(s)
			}
			v, err := parseString(strings.TrimSpace(s[:end]))
			if err != nil {
				return nil, err
			}
			k, s = v, s[end:]
		} else {
			end := strings.IndexByte(s, '.')
			if end < 0 {
				end = len(s)
			}
			k, s = strings.TrimSpace(s[:end]), s[end:]
			if !isBareKey(k) {
				return nil, fmt.Errorf("invalid key %q", k)
			}
		}
		keys = append(keys, k)
		if s == "" {
			return keys, nil
		}
		s = strings.TrimSpace(s[1:])
	}
}

func isBareKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

func parseValue(s string) (any, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing value")
	case s[0] == '"' || s[0] == '\'':
		return parseString(s)
	case s[0] == '[':
		return parseArray(s)
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	}

	num := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(num, 0, 64); err == nil {
		return i, nil
	}
	switch num {
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return nil, fmt.Errorf("unsupported float %q", s)
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid value %q", s)
}

func parseString(s string) (string, error) {
	if len(s) < 2 || s[len(s)-1] != s[0] {
		return "", fmt.Errorf("unterminated string %s", s)
	}
	if s[0] == '\'' {
		return s[1 : len(s)-1], nil
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("invalid string %s", s)
	}
	return v, nil
}

func parseArray(s string) ([]any, error) {
	if !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("unterminated array")
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	out := []any{}
	for body != "" {
		end := indexOutsideQuotes(body, ',')
		if end < 0 {
			end = len(body)
		}
		item := strings.TrimSpace(body[:end])
		if item != "" {
			if item[0] == '[' {
				return nil, fmt.Errorf("nested arrays are not supported")
			}
			v, err := parseValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		if end == len(body) {
			break
		}
		body = strings.TrimSpace(body[end+1:])
	}
	return out, nil
}
