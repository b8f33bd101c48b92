// Package filter computes the visible subset of the service order and
// equipment collections from the list screens' query state. Every function is
// pure: the same collection and query always give the same ordered result,
// and results keep the relative order of the input.
package filter

import "strings"

// normalizeQuery lowercases a search query. A blank query normalizes to "";
// any other query keeps its surrounding whitespace.
func normalizeQuery(q string) string {
	if strings.TrimSpace(q) == "" {
		return ""
	}
	return strings.ToLower(q)
}

// matchesAny reports whether the normalized query is a substring of any field,
// ignoring case. An empty query matches.
func matchesAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// keep returns the items satisfying pred, in input order.
func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
