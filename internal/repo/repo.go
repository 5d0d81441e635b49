// Package repo implements the entity repositories. Each repository is a
// thin CRUD facade over exactly one storage key holding an ordered record
// sequence; after any mutating call returns, the gateway already holds the
// new state.
package repo

import "strings"

// Filter narrows a listing. Category is an exact match; Query is a
// case-insensitive substring match over title and content-like fields.
// The zero Filter matches everything.
type Filter struct {
	Category string
	Query    string
}

func matchCategory(filter, category string) bool {
	return filter == "" || filter == "all" || filter == category
}

func matchQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
