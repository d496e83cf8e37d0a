package catalog

import (
	"fmt"
	"strings"
)

// ValidationError describes one inconsistency in the embedded data files.
type ValidationError struct {
	Path    string
	Message string
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("invalid catalog data:")
	for _, v := range e {
		fmt.Fprintf(&b, "\n- %s: %s", v.Path, v.Message)
	}
	return b.String()
}

func (d *Data) validate() ValidationErrors {
	var errs ValidationErrors
	add := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	known := map[Key]bool{}
	for i, c := range d.Registry {
		path := fmt.Sprintf("registry[%d]", i)
		if c.Key == "" {
			add(path, "missing key")
			continue
		}
		if known[c.Key] {
			add(path, "duplicate key %q", c.Key)
		}
		known[c.Key] = true
		if c.Name == "" {
			add(path, "missing name for %q", c.Key)
		}
	}
	if len(d.Registry) == 0 {
		add("registry", "no categories defined")
	}

	for i, p := range d.Scale {
		if p.Value != i {
			add(fmt.Sprintf("scale[%d]", i), "values must be contiguous from 0, got %d", p.Value)
		}
		if p.Label == "" {
			add(fmt.Sprintf("scale[%d]", i), "missing label")
		}
	}
	if len(d.Scale) < 2 {
		add("scale", "need at least 2 points, got %d", len(d.Scale))
	}

	perCategory := map[Cohort]map[Key]int{}
	for cohort, qs := range d.variants {
		counts := map[Key]int{}
		seen := map[int]bool{}
		for i, q := range qs {
			path := fmt.Sprintf("questions_%s[%d]", cohort, i)
			if q.ID <= 0 {
				add(path, "id must be positive, got %d", q.ID)
			}
			if seen[q.ID] {
				add(path, "duplicate id %d", q.ID)
			}
			seen[q.ID] = true
			if !known[q.Key] {
				add(path, "unknown category %q", q.Key)
			}
			if q.Text == "" {
				add(path, "missing text for id %d", q.ID)
			}
			counts[q.Key]++
		}
		perCategory[cohort] = counts
	}

	// Every category carries the same question count in every variant, so a
	// single MaxScore holds across cohorts.
	for key := range known {
		female := perCategory[CohortFemale][key]
		male := perCategory[CohortMale][key]
		if female != male {
			add("questions", "category %q has %d female but %d male questions", key, female, male)
		}
		if female == 0 {
			add("questions", "category %q has no questions", key)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
