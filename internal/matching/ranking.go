// internal/matching/ranking.go

package matching

import "sort"

// DefaultResultLimit is the number of matches returned per request.
const DefaultResultLimit = 3

type scored struct {
	profile  Profile
	score    float64
	strategy Strategy
}

// rankAndTruncate orders by score descending, breaking ties by candidate ID
// so results are reproducible, and keeps at most limit entries.
func rankAndTruncate(items []scored, limit int) []scored {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].profile.Person.ID < items[j].profile.Person.ID
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
