package showtimes

import "strings"

// Filter returns the rows whose theater, title, or label contains the query,
// case-insensitively. Runtime and datetime are display-only and not
// searched. An empty query returns the input slice unchanged.
func Filter(rows []Row, query string) []Row {
	q := strings.ToLower(query)
	if q == "" {
		return rows
	}

	matched := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Theater), q) ||
			strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Label), q) {
			matched = append(matched, r)
		}
	}
	return matched
}
