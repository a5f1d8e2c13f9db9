// Package gantt implements the transformation pipeline that turns raw note
// records plus a field-mapping configuration into a renderer-ready task and
// link graph.
package gantt

import (
	"strconv"
	"strings"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// Resolve reads the record value named by a mapping key. Mapped fields are
// opt-in: an empty key is always absent. A literal key match wins; otherwise
// a dotted key traverses nested maps segment by segment, going absent the
// moment a segment is missing or the current value is not traversable.
// Nil values are treated as absent.
func Resolve(rec model.RawRecord, key string) (any, bool) {
	if key == "" || rec == nil {
		return nil, false
	}
	if v, ok := rec[key]; ok {
		if v == nil {
			return nil, false
		}
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	var cur any = map[string]any(rec)
	for _, seg := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// ResolveString resolves a mapping and renders the value as a trimmed string.
// Absent, nil, and unrenderable values yield ("", false).
func ResolveString(rec model.RawRecord, key string) (string, bool) {
	v, ok := Resolve(rec, key)
	if !ok {
		return "", false
	}
	s := stringify(v)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// stringify renders scalar values the way they appear in note properties.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// toFloat extracts a numeric value. Non-numeric inputs are rejected, never
// coerced.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
