// Package filter derives filtered views of the ticket collection. Apply is
// a pure function of the tickets and the filter parameters.
package filter

import (
	"strings"

	"github.com/spec-kit/intervention-desk/internal/domain"
)

// All is the sentinel meaning "no constraint applied".
const All = "all"

// Params captures the three filter predicates. Zero values apply no
// constraint, matching the sentinel.
type Params struct {
	Search   string
	Status   string
	Priority string
}

// Apply returns the tickets matching every predicate, preserving the
// relative order of the input.
func Apply(tickets []domain.Ticket, params Params) []domain.Ticket {
	search := strings.ToLower(strings.TrimSpace(params.Search))
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchesSearch(t, search) {
			continue
		}
		if !matchesValue(string(t.Status), params.Status) {
			continue
		}
		if !matchesValue(string(t.Priority), params.Priority) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

func matchesSearch(t domain.Ticket, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), search) ||
		strings.Contains(strings.ToLower(t.UserName), search)
}

func matchesValue(value, want string) bool {
	if want == "" || want == All {
		return true
	}
	return value == want
}
