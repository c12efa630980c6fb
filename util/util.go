package util

import (
	"strings"
	"time"
)

// icalTimestampLayout renders an instant the way RFC 5545 spells UTC times,
// e.g. "20240301T000000Z". The trailing Z is a literal.
const icalTimestampLayout = "20060102T150405Z"

// TimeToICalTimestamp returns the iCalendar timestamp of the input time. The
// time is converted to UTC first so the fixed Z suffix is always truthful.
func TimeToICalTimestamp(t time.Time) string {
	return t.UTC().Format(icalTimestampLayout)
}

// EscapeText escapes the characters RFC 5545 reserves in text values.
// Backslashes must be escaped before anything else, otherwise the
// backslashes introduced by the later replacements would be escaped twice.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// CompareMaps compares two maps and returns the entries only present in the
// to-map (extras) and the entries only present in the from-map (missing).
func CompareMaps[K comparable, V any](from map[K]V, to map[K]V) (extras map[K]V, missing map[K]V) {
	extras = make(map[K]V)
	missing = make(map[K]V)

	for key, value := range from {
		if _, exists := to[key]; !exists {
			missing[key] = value
		}
	}

	for key, value := range to {
		if _, exists := from[key]; !exists {
			extras[key] = value
		}
	}

	return extras, missing
}
