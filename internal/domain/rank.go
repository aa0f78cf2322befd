package domain

import (
	"slices"
	"strings"
)

// matchRank orders picker results: exact-prefix matches first, then
// substring matches, then everything else. query must already be
// normalized.
func matchRank(name, query string) int {
	if query == "" {
		return 1
	}
	normalized := NormalizeName(name)
	if strings.HasPrefix(normalized, query) {
		return 0
	}
	if strings.Contains(normalized, query) {
		return 1
	}
	return 2
}

// SortMatches returns items ranked against query for the tag picker:
// prefix match, then substring, then no match, ties broken alphabetically.
// An empty query sorts purely alphabetically. The input is not modified.
func SortMatches(items []CatalogItem, query string) []CatalogItem {
	out := slices.Clone(items)
	q := NormalizeName(query)
	slices.SortStableFunc(out, func(a, b CatalogItem) int {
		if q != "" {
			if d := matchRank(a.Name, q) - matchRank(b.Name, q); d != 0 {
				return d
			}
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// HasExactMatch reports whether some item's normalized name equals the
// normalized query. While true, the picker's "create new" action stays
// disabled.
func HasExactMatch(items []CatalogItem, query string) bool {
	q := NormalizeName(query)
	for _, item := range items {
		if NormalizeName(item.Name) == q {
			return true
		}
	}
	return false
}
