package result

import (
	"strings"
	"testing"

	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/store"
)

func rankedFixture(t *testing.T, totals map[catalog.Key]int) []scoring.Ranked {
	t.Helper()
	d, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return scoring.Rank(totals, d.Registry)
}

func TestComboLabel(t *testing.T) {
	ranked := rankedFixture(t, map[catalog.Key]int{catalog.Qixu: 10, catalog.Yangxu: 8})

	if got := ComboLabel(ranked); got != "気虚 × 陽虚（腎陽虚）" {
		t.Fatalf("unexpected combo label: %q", got)
	}
}

func TestComboLabelDegradesGracefully(t *testing.T) {
	if got := ComboLabel(nil); got != " × " {
		t.Fatalf("expected empty-name fallback, got %q", got)
	}

	one := rankedFixture(t, map[catalog.Key]int{})[:1]
	if got := ComboLabel(one); got != "気虚 × " {
		t.Fatalf("expected single-entry fallback, got %q", got)
	}
}

func TestSplitAdviceDropsEmpties(t *testing.T) {
	items := SplitAdvice("・朝散歩10分・・首・腹を保温・")
	if len(items) != 3 {
		t.Fatalf("expected 4 items, got %d: %v", len(items), items)
	}
	for _, it := range items {
		if it == "" {
			t.Fatalf("expected no empty items, got %v", items)
		}
	}
}

func TestBlendAdviceCaps(t *testing.T) {
	ranked := rankedFixture(t, map[catalog.Key]int{catalog.Qixu: 10, catalog.Yangxu: 8})

	blend := BlendAdvice(ranked[0], ranked[1])
	if blend.Title != "気虚 × 陽虚（腎陽虚） のポイント" {
		t.Fatalf("unexpected title: %q", blend.Title)
	}
	if len(blend.Lifestyle) != 6 {
		t.Fatalf("expected lifestyle capped at 6, got %d", len(blend.Lifestyle))
	}
	if len(blend.Diet) != 8 {
		t.Fatalf("expected diet capped at 8, got %d", len(blend.Diet))
	}
	// The first items come from the top-1 category.
	if blend.Lifestyle[0] != "無理に食べ過ぎない" {
		t.Fatalf("unexpected first lifestyle item: %q", blend.Lifestyle[0])
	}
}

func TestShareTextFullTable(t *testing.T) {
	ranked := rankedFixture(t, map[catalog.Key]int{catalog.Qixu: 10, catalog.Tanshi: 4})
	profile := store.Profile{Cohort: catalog.CohortFemale, AgeBand: "25–34"}

	text := ShareText(ranked, profile)
	lines := strings.Split(text, "\n")

	// title + 2 profile lines + TOP1 + TOP2 + header + 8 categories + footer
	if len(lines) != 15 {
		t.Fatalf("expected 15 lines, got %d:\n%s", len(lines), text)
	}
	if lines[0] != "私の漢方体質診断（32問）" {
		t.Fatalf("unexpected title: %q", lines[0])
	}
	if lines[1] != "性別: 女性" || lines[2] != "年齢層: 25–34" {
		t.Fatalf("unexpected profile lines: %q %q", lines[1], lines[2])
	}
	if lines[3] != "TOP1: 気虚（10点）" {
		t.Fatalf("unexpected TOP1 line: %q", lines[3])
	}
	if lines[4] != "TOP2: 湿痰（4点）" {
		t.Fatalf("unexpected TOP2 line: %q", lines[4])
	}
	if lines[5] != "— スコア —" {
		t.Fatalf("unexpected score header: %q", lines[5])
	}
	if lines[6] != "気虚: 10 / 16" {
		t.Fatalf("unexpected first score line: %q", lines[6])
	}
	// Every category appears as "name: score / max".
	for _, line := range lines[6:14] {
		if !strings.Contains(line, " / 16") {
			t.Fatalf("expected score/max line, got %q", line)
		}
	}
	if !strings.HasPrefix(lines[14], "※") {
		t.Fatalf("expected disclaimer footer, got %q", lines[14])
	}
}

func TestShareTextOmitsMissingProfile(t *testing.T) {
	ranked := rankedFixture(t, map[catalog.Key]int{})

	text := ShareText(ranked, store.Profile{})
	lines := strings.Split(text, "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines without profile, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "TOP1: ") {
		t.Fatalf("expected TOP1 right after title, got %q", lines[1])
	}
}
