// Package search implements the free-text matching used by entry queries.
package search

import "strings"

// Fields is the searchable text of a single record. CategoryName carries the
// resolved display name so a query can match on it.
type Fields struct {
	Title        string
	Description  string
	Tags         []string
	CategoryName string
}

// Match reports whether every whitespace-separated term of query appears
// somewhere in the record's searchable text, case-insensitively. A blank
// query matches everything.
func Match(f Fields, query string) bool {
	terms := Terms(query)
	if len(terms) == 0 {
		return true
	}

	searchable := strings.ToLower(strings.Join([]string{
		f.Title,
		f.Description,
		strings.Join(f.Tags, " "),
		f.CategoryName,
	}, " "))

	for _, term := range terms {
		if !strings.Contains(searchable, term) {
			return false
		}
	}
	return true
}

// Terms splits a query into lowercased search terms.
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
