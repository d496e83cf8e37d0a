// Package scoring turns an answer snapshot into per-category totals and a
// deterministically ordered ranking.
package scoring

import "github.com/soukando/taishin/internal/catalog"

// Score folds the answered values of the active catalog into per-category
// totals. Every registry category starts at 0. Iteration runs over the
// catalog, not the answer map, so stale ids restored from another variant
// contribute nothing.
func Score(snap map[int]int, questions []catalog.Question, registry []catalog.Category) map[catalog.Key]int {
	totals := make(map[catalog.Key]int, len(registry))
	for _, c := range registry {
		totals[c.Key] = 0
	}
	for _, q := range questions {
		if v, ok := snap[q.ID]; ok {
			totals[q.Key] += v
		}
	}
	return totals
}
