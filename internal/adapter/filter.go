package adapter

import (
	"strings"

	"recruitdesk/pkg/models"
)

// Filter narrows a List call: a free-text query matched as a case-insensitive
// substring of the schema's searchable text, and an exact-equality status
// filter with the "All" sentinel bypass.
type Filter struct {
	Query  string
	Status string
}

// IsZero reports whether the filter narrows anything
func (f Filter) IsZero() bool {
	return f.Query == "" && (f.Status == "" || f.Status == models.StatusAll)
}

// Apply is the pure filter projection: it returns the subset of items whose
// searchable text contains the query case-insensitively and whose status
// equals the status filter. An empty query returns every item; the whole
// collection is scanned, there is no pagination.
func Apply[R models.Entity](schema models.Schema[R], items []R, f Filter) []R {
	if f.IsZero() {
		return items
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	filtered := make([]R, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(strings.ToLower(schema.SearchText(item)), query) {
			continue
		}
		if f.Status != "" && f.Status != models.StatusAll && schema.Status(item) != f.Status {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
