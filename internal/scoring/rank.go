package scoring

import (
	"sort"

	"github.com/soukando/taishin/internal/catalog"
)

// Ranked is a registry category together with its raw score.
type Ranked struct {
	catalog.Category
	Score int
}

// Rank orders categories by descending score. Equal scores keep the
// registry's declared order (stable sort), which makes the top-2 selection
// reproducible across runs with identical answers.
func Rank(totals map[catalog.Key]int, registry []catalog.Category) []Ranked {
	ranked := make([]Ranked, 0, len(registry))
	for _, c := range registry {
		ranked = append(ranked, Ranked{Category: c, Score: totals[c.Key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Top returns the first n ranked entries, clamped to the available count.
func Top(ranked []Ranked, n int) []Ranked {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}
