package report

import (
	"sort"
	"strings"

	"beup-results/internal/store"

	"github.com/antzucaro/matchr"
)

const DefaultMatchThreshold = 0.85

type Match struct {
	Result     store.Result
	Similarity float64
}

// MatchNames returns the results whose student name is similar to `query`,
// best match first. a name that contains the query word for word always matches.
func MatchNames(candidates []store.Result, query string, threshold float64) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []Match
	for _, c := range candidates {
		if c.StudentName == nil {
			continue
		}
		name := strings.ToLower(*c.StudentName)

		similarity := matchr.JaroWinkler(name, query, false)
		for _, part := range strings.Fields(name) {
			similarity = max(similarity, matchr.JaroWinkler(part, query, false))
		}
		if strings.Contains(name, query) {
			similarity = 1
		}

		if similarity < threshold {
			continue
		}
		out = append(out, Match{Result: c, Similarity: similarity})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}
