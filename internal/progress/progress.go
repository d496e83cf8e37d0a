// Package progress derives completion state from an answer snapshot and the
// active question catalog. Everything here is a pure function over the
// snapshot; the navigation controller calls these to gate page advancement.
package progress

import (
	"math"

	"github.com/soukando/taishin/internal/catalog"
)

// Summary is the overall completion state across the whole catalog.
type Summary struct {
	Answered int
	Total    int
	Percent  int
}

// Completion counts answered questions across the catalog. Optional questions
// count only when actually answered.
func Completion(snap map[int]int, questions []catalog.Question) Summary {
	s := Summary{Total: len(questions)}
	for _, q := range questions {
		if _, ok := snap[q.ID]; ok {
			s.Answered++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(100 * float64(s.Answered) / float64(s.Total)))
	}
	return s
}

// PageComplete reports whether every question on the page is either answered
// or optional. A page of only optional questions is always complete.
func PageComplete(snap map[int]int, page []catalog.Question) bool {
	for _, q := range page {
		if q.Optional {
			continue
		}
		if _, ok := snap[q.ID]; !ok {
			return false
		}
	}
	return true
}

// FirstMissing returns the first unanswered mandatory question on the page,
// used for the scroll-to-error validation signal.
func FirstMissing(snap map[int]int, page []catalog.Question) (catalog.Question, bool) {
	for _, q := range page {
		if q.Optional {
			continue
		}
		if _, ok := snap[q.ID]; !ok {
			return q, true
		}
	}
	return catalog.Question{}, false
}
