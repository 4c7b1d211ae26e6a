package domain

import (
	"encoding/json"
	"strconv"
)

// RawPost is a post as the API returns it: a loose mapping whose fields
// vary by post type. Numeric values may arrive as json.Number when the
// decoder is configured with UseNumber, or as float64 otherwise; the
// accessors below absorb both. Missing or mistyped fields degrade to zero
// values, never errors.
type RawPost map[string]any

func (p RawPost) String(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

func (p RawPost) Int64(key string) int64 {
	switch v := p[key].(type) {
	case json.Number:
		n, _ := v.Int64()
		return n
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func (p RawPost) Strings(key string) []string {
	switch v := p[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
