package scoring

import (
	"testing"

	"github.com/soukando/taishin/internal/catalog"
)

func mustLoad(t *testing.T) *catalog.Data {
	t.Helper()
	d, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return d
}

func TestScoreEmptyAnswersAllZero(t *testing.T) {
	d := mustLoad(t)

	totals := Score(map[int]int{}, d.Questions(catalog.CohortFemale), d.Registry)
	if len(totals) != len(d.Registry) {
		t.Fatalf("expected %d categories, got %d", len(d.Registry), len(totals))
	}
	for key, v := range totals {
		if v != 0 {
			t.Fatalf("category %s: expected 0, got %d", key, v)
		}
	}
}

func TestScoreQixuScenario(t *testing.T) {
	d := mustLoad(t)

	// Qixu occupies ids 1..4 in both variants.
	snap := map[int]int{1: 4, 2: 3, 3: 2, 4: 1}
	totals := Score(snap, d.Questions(catalog.CohortFemale), d.Registry)

	if totals[catalog.Qixu] != 10 {
		t.Fatalf("expected qixu score 10, got %d", totals[catalog.Qixu])
	}
	for _, c := range d.Registry {
		if c.Key == catalog.Qixu {
			continue
		}
		if totals[c.Key] != 0 {
			t.Fatalf("category %s: expected 0, got %d", c.Key, totals[c.Key])
		}
	}
}

func TestScoreAdditivity(t *testing.T) {
	d := mustLoad(t)
	qs := d.Questions(catalog.CohortFemale)

	snap := map[int]int{5: 2, 6: 3}
	before := Score(snap, qs, d.Registry)

	snap[7] = 4
	after := Score(snap, qs, d.Registry)

	if after[catalog.Xuexu] != before[catalog.Xuexu]+4 {
		t.Fatalf("expected xuexu to grow by exactly 4: before=%d after=%d",
			before[catalog.Xuexu], after[catalog.Xuexu])
	}
}

func TestScoreBounds(t *testing.T) {
	d := mustLoad(t)
	qs := d.Questions(catalog.CohortMale)

	// Everything answered at the scale maximum.
	snap := map[int]int{}
	for _, q := range qs {
		snap[q.ID] = d.MaxValue()
	}
	totals := Score(snap, qs, d.Registry)

	for _, c := range d.Registry {
		got := totals[c.Key]
		if got < 0 || got > c.MaxScore {
			t.Fatalf("category %s: score %d outside [0, %d]", c.Key, got, c.MaxScore)
		}
		if got != c.MaxScore {
			t.Fatalf("category %s: expected max score %d, got %d", c.Key, c.MaxScore, got)
		}
	}
}

func TestScoreIgnoresStaleIDs(t *testing.T) {
	d := mustLoad(t)
	qs := d.Questions(catalog.CohortFemale)

	snap := map[int]int{999: 4, 1: 2}
	totals := Score(snap, qs, d.Registry)

	sum := 0
	for _, v := range totals {
		sum += v
	}
	if sum != 2 {
		t.Fatalf("expected stale id 999 to be excluded, total sum %d", sum)
	}
}

func TestRankStableTieBreakIsRegistryOrder(t *testing.T) {
	d := mustLoad(t)

	totals := map[catalog.Key]int{}
	for _, c := range d.Registry {
		totals[c.Key] = 0
	}
	totals[catalog.Qixu] = 10

	for run := 0; run < 5; run++ {
		ranked := Rank(totals, d.Registry)
		if ranked[0].Key != catalog.Qixu {
			t.Fatalf("run %d: expected qixu first, got %s", run, ranked[0].Key)
		}
		// Remaining seven are tied at 0 and must follow registry order.
		rest := ranked[1:]
		want := 0
		for _, c := range d.Registry {
			if c.Key == catalog.Qixu {
				continue
			}
			if rest[want].Key != c.Key {
				t.Fatalf("run %d: tie position %d: expected %s, got %s", run, want, c.Key, rest[want].Key)
			}
			want++
		}
	}
}

func TestRankDescending(t *testing.T) {
	d := mustLoad(t)

	totals := map[catalog.Key]int{
		catalog.Qixu: 3, catalog.Yangxu: 16, catalog.Xuexu: 7, catalog.Yinxu: 7,
		catalog.Qitai: 0, catalog.Shire: 12, catalog.Oketsu: 1, catalog.Tanshi: 5,
	}
	ranked := Rank(totals, d.Registry)

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("ranking not descending at %d: %d > %d", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Key != catalog.Yangxu {
		t.Fatalf("expected yangxu first, got %s", ranked[0].Key)
	}
	// xuexu precedes yinxu in the registry, so the 7-7 tie keeps that order.
	var xi, yi int
	for i, r := range ranked {
		switch r.Key {
		case catalog.Xuexu:
			xi = i
		case catalog.Yinxu:
			yi = i
		}
	}
	if xi > yi {
		t.Fatalf("expected xuexu before yinxu on tie, got %d > %d", xi, yi)
	}
}

func TestTopClamps(t *testing.T) {
	d := mustLoad(t)
	ranked := Rank(map[catalog.Key]int{}, d.Registry)

	if got := len(Top(ranked, 2)); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := len(Top(ranked, 100)); got != len(d.Registry) {
		t.Fatalf("expected %d, got %d", len(d.Registry), got)
	}
	if got := len(Top(ranked, -1)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
