// Package dates normalizes the heterogeneous date values found in note
// properties into canonical UTC calendar dates. A canonical date has no
// time-of-day semantics: it is always midnight UTC, and always serializes
// from UTC components so parse/format round-trips are stable across time
// zones.
package dates

import (
	"strings"
	"time"
)

// Layout is the canonical serialized form of a date.
const Layout = "2006-01-02"

// exact layouts tried in priority order before any general parsing.
var exactLayouts = []string{
	"2006-01-02", // YYYY-MM-DD
	"2006/1/2",   // YYYY/M/D
	"1/2/2006",   // M/D/YYYY (US month-first; inherited from the source data)
}

// fallback layouts for strings carrying time or zone markers, or that match
// none of the exact forms.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-1-2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Parse attempts to interpret an arbitrary value as a calendar date.
// Accepted forms, in priority order: time.Time values pass through; numeric
// values are Unix epoch milliseconds; strings try the exact layouts and then
// fall back to general parsing. Everything else is absent. Two-digit years
// are not supported.
func Parse(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return Truncate(d), true
	case float64:
		return fromEpochMillis(int64(d))
	case int:
		return fromEpochMillis(int64(d))
	case int64:
		return fromEpochMillis(d)
	case string:
		return parseString(d)
	}
	return time.Time{}, false
}

// ParseString parses a string form of a date.
func ParseString(s string) (time.Time, bool) {
	return parseString(s)
}

func parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Strings carrying an ISO time or zone marker skip the plain-date
	// layouts and go straight to general parsing.
	if !hasTimeMarker(s) {
		for _, layout := range exactLayouts {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return Truncate(t), true
			}
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Truncate(t), true
		}
	}
	return time.Time{}, false
}

// hasTimeMarker reports whether s contains an ISO time separator, a Zulu
// suffix, or a numeric zone offset.
func hasTimeMarker(s string) bool {
	if strings.ContainsAny(s, "TZ") {
		return true
	}
	// ±HH:MM offset: a sign followed by a colon-separated pair near the end.
	if i := strings.LastIndexAny(s, "+-"); i > 0 && strings.Contains(s[i:], ":") {
		return true
	}
	return false
}

func fromEpochMillis(ms int64) (time.Time, bool) {
	if ms == 0 {
		return time.Time{}, false
	}
	return Truncate(time.UnixMilli(ms)), true
}

// Truncate drops the time-of-day portion, keeping the UTC calendar day.
func Truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Format serializes a date to its canonical YYYY-MM-DD form using UTC
// components, never local time.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// AddDays shifts a date by n UTC calendar days.
func AddDays(t time.Time, n int) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day()+n, 0, 0, 0, 0, time.UTC)
}
