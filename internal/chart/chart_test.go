package chart

import (
	"strings"
	"testing"

	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/scoring"
)

func seriesFixture(t *testing.T) []Point {
	t.Helper()
	d, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	ranked := scoring.Rank(map[catalog.Key]int{catalog.Qixu: 10}, d.Registry)
	return BuildSeries(ranked)
}

func TestBuildSeriesPreservesRankOrder(t *testing.T) {
	series := seriesFixture(t)

	if len(series) != 8 {
		t.Fatalf("expected 8 points, got %d", len(series))
	}
	if series[0].Name != "気虚" || series[0].Score != 10 || series[0].Max != 16 {
		t.Fatalf("unexpected first point: %+v", series[0])
	}
}

func TestAcquireValidSeries(t *testing.T) {
	r, err := Acquire(seriesFixture(t))
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if r == nil {
		t.Fatalf("expected renderer")
	}
}

func TestAcquireRejectsBadColorToken(t *testing.T) {
	series := []Point{{Name: "x", Score: 1, Max: 16, Color: "from-amber-400"}}
	if _, err := Acquire(series); err == nil {
		t.Fatalf("expected error for non-numeric color token")
	}

	series[0].Color = "300"
	if _, err := Acquire(series); err == nil {
		t.Fatalf("expected error for out-of-range color token")
	}
}

func TestAcquireRejectsNonPositiveMax(t *testing.T) {
	series := []Point{{Name: "x", Score: 1, Max: 0, Color: "12"}}
	if _, err := Acquire(series); err == nil {
		t.Fatalf("expected error for zero max")
	}
}

func TestRenderAnnotatesEveryPoint(t *testing.T) {
	series := seriesFixture(t)
	r, err := Acquire(series)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	out := r.Render(series)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 bar lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "気虚") || !strings.Contains(lines[0], "10 / 16") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	for _, line := range lines[1:] {
		if !strings.Contains(line, " 0 / 16") {
			t.Fatalf("expected zero-score annotation, got %q", line)
		}
	}
}
