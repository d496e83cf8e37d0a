// Package result assembles the composite top-2 view: the combined label, the
// blended advice lists and the plain-text share payload.
package result

import (
	"fmt"
	"strings"

	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/store"
)

const (
	// Blended advice is truncated so the combined view stays scannable.
	maxLifestyleItems = 6
	maxDietItems      = 8

	adviceSeparator = "・"
)

// ComboLabel joins the top-2 category names. Missing entries degrade to an
// empty name rather than failing.
func ComboLabel(ranked []scoring.Ranked) string {
	var first, second string
	if len(ranked) > 0 {
		first = ranked[0].Name
	}
	if len(ranked) > 1 {
		second = ranked[1].Name
	}
	return fmt.Sprintf("%s × %s", first, second)
}

// Blend is the combined advice of the top-2 categories.
type Blend struct {
	Title     string
	Lifestyle []string
	Diet      []string
}

// BlendAdvice concatenates both categories' advice items and truncates each
// facet to its display cap.
func BlendAdvice(a, b scoring.Ranked) Blend {
	return Blend{
		Title:     fmt.Sprintf("%s × %s のポイント", a.Name, b.Name),
		Lifestyle: capped(append(SplitAdvice(a.Advice.Lifestyle), SplitAdvice(b.Advice.Lifestyle)...), maxLifestyleItems),
		Diet:      capped(append(SplitAdvice(a.Advice.Diet), SplitAdvice(b.Advice.Diet)...), maxDietItems),
	}
}

// SplitAdvice breaks a delimiter-separated advice string into discrete items,
// dropping empties.
func SplitAdvice(s string) []string {
	parts := strings.Split(s, adviceSeparator)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// ShareText renders the copyable result summary: profile, top-2 with scores,
// and the full per-category score table.
func ShareText(ranked []scoring.Ranked, profile store.Profile) string {
	lines := []string{"私の漢方体質診断（32問）"}

	if profile.Cohort.Valid() {
		lines = append(lines, fmt.Sprintf("性別: %s", profile.Cohort.Label()))
	}
	if profile.AgeBand != "" {
		lines = append(lines, fmt.Sprintf("年齢層: %s", profile.AgeBand))
	}

	var top1, top2 string
	var score1, score2 int
	if len(ranked) > 0 {
		top1, score1 = ranked[0].Name, ranked[0].Score
	}
	if len(ranked) > 1 {
		top2, score2 = ranked[1].Name, ranked[1].Score
	}
	lines = append(lines,
		fmt.Sprintf("TOP1: %s（%d点）", top1, score1),
		fmt.Sprintf("TOP2: %s（%d点）", top2, score2),
		"— スコア —",
	)
	for _, r := range ranked {
		lines = append(lines, fmt.Sprintf("%s: %d / %d", r.Name, r.Score, r.MaxScore))
	}
	lines = append(lines, "※ セルフケアの目安です。つらい症状は専門家へ。")

	return strings.Join(lines, "\n")
}
