package catalog

import (
	"strings"

	"github.com/primeticket/primeticket-api/internal/model"
)

// MergeByTitle combines two listings, dropping every secondary record
// whose lowercased title already appears in primary. Primary always
// wins a title collision regardless of any other field, and relative
// order within each input is preserved: the result is all of primary
// followed by the surviving secondary records.
func MergeByTitle(primary, secondary []model.Movie) []model.Movie {
	seen := make(map[string]struct{}, len(primary))
	for _, m := range primary {
		seen[strings.ToLower(m.Title)] = struct{}{}
	}
	merged := make([]model.Movie, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)
	for _, m := range secondary {
		if _, dup := seen[strings.ToLower(m.Title)]; dup {
			continue
		}
		merged = append(merged, m)
	}
	return merged
}

// GroupByGenre fans movies out into per-genre groups. A movie with N
// genres appears in all N groups; this is fan-out, not a partition.
// Order within each group follows the input order.
func GroupByGenre(movies []model.Movie) map[string][]model.Movie {
	grouped := make(map[string][]model.Movie)
	for _, m := range movies {
		for _, g := range m.Genre {
			grouped[g] = append(grouped[g], m)
		}
	}
	return grouped
}
