// Package directory lists consultation practitioners and matches them to a
// finished result: tag overlap with the top constitutions, filtered by the
// respondent's cohort.
package directory

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/soukando/taishin/internal/catalog"
)

//go:embed practitioners.yaml
var practitionersYAML []byte

type Practitioner struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	URL     string        `yaml:"url"`
	Tags    []catalog.Key `yaml:"tags"`
	Cohorts []string      `yaml:"cohorts"`
	Titles  []string      `yaml:"titles"`
	Area    string        `yaml:"area"`
	Bio     string        `yaml:"bio"`
}

// Load parses the embedded directory.
func Load() ([]Practitioner, error) {
	var doc struct {
		Practitioners []Practitioner `yaml:"practitioners"`
	}
	if err := yaml.Unmarshal(practitionersYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse practitioners: %w", err)
	}
	return doc.Practitioners, nil
}

// Match returns practitioners admitting the cohort whose tags overlap the top
// constitutions, best overlap first; declaration order breaks ties.
func Match(list []Practitioner, top []catalog.Key, cohort catalog.Cohort) []Practitioner {
	type scored struct {
		p       Practitioner
		overlap int
	}

	var matches []scored
	for _, p := range list {
		if !admits(p, cohort) {
			continue
		}
		n := overlap(p.Tags, top)
		if n == 0 {
			continue
		}
		matches = append(matches, scored{p: p, overlap: n})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].overlap > matches[j].overlap
	})

	out := make([]Practitioner, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.p)
	}
	return out
}

func admits(p Practitioner, cohort catalog.Cohort) bool {
	for _, c := range p.Cohorts {
		if c == "any" || c == string(cohort) {
			return true
		}
	}
	return false
}

func overlap(tags, top []catalog.Key) int {
	want := map[catalog.Key]bool{}
	for _, k := range top {
		want[k] = true
	}
	n := 0
	for _, t := range tags {
		if want[t] {
			n++
		}
	}
	return n
}
