package roster

import "strings"

// Match reports whether the account matches the query: a case-insensitive
// substring match against the account name. The empty query matches every
// account.
func Match(a Account, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), strings.ToLower(query))
}

// Filter returns the accounts matching query, preserving their relative
// order. The result is always a fresh slice; the input is never modified.
func Filter(accounts []Account, query string) []Account {
	filtered := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if Match(a, query) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
