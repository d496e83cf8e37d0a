package directory

import (
	"testing"

	"github.com/soukando/taishin/internal/catalog"
)

func TestLoadShippedDirectory(t *testing.T) {
	list, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 practitioners, got %d", len(list))
	}
	for _, p := range list {
		if p.ID == "" || p.Name == "" || p.URL == "" {
			t.Fatalf("incomplete practitioner: %+v", p)
		}
		if len(p.Tags) == 0 {
			t.Fatalf("practitioner %s has no tags", p.ID)
		}
	}
}

func TestMatchOrdersByOverlap(t *testing.T) {
	list := []Practitioner{
		{ID: "a", Tags: []catalog.Key{catalog.Qixu}, Cohorts: []string{"any"}},
		{ID: "b", Tags: []catalog.Key{catalog.Qixu, catalog.Yangxu}, Cohorts: []string{"any"}},
		{ID: "c", Tags: []catalog.Key{catalog.Tanshi}, Cohorts: []string{"any"}},
	}

	got := Match(list, []catalog.Key{catalog.Qixu, catalog.Yangxu}, catalog.CohortFemale)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected b then a, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestMatchFiltersByCohort(t *testing.T) {
	list := []Practitioner{
		{ID: "women-only", Tags: []catalog.Key{catalog.Qixu}, Cohorts: []string{"female"}},
		{ID: "open", Tags: []catalog.Key{catalog.Qixu}, Cohorts: []string{"male", "any"}},
	}

	got := Match(list, []catalog.Key{catalog.Qixu}, catalog.CohortMale)
	if len(got) != 1 || got[0].ID != "open" {
		t.Fatalf("expected only the open practitioner, got %v", got)
	}
}

func TestMatchTieKeepsDeclarationOrder(t *testing.T) {
	list := []Practitioner{
		{ID: "first", Tags: []catalog.Key{catalog.Qixu}, Cohorts: []string{"any"}},
		{ID: "second", Tags: []catalog.Key{catalog.Qixu}, Cohorts: []string{"any"}},
	}

	got := Match(list, []catalog.Key{catalog.Qixu}, catalog.CohortFemale)
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("expected declaration order preserved, got %v", got)
	}
}

func TestMatchNoOverlapIsEmpty(t *testing.T) {
	list := []Practitioner{
		{ID: "a", Tags: []catalog.Key{catalog.Shire}, Cohorts: []string{"any"}},
	}

	if got := Match(list, []catalog.Key{catalog.Qixu, catalog.Yangxu}, catalog.CohortFemale); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
