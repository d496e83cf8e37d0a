package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Data is the fully loaded and validated configuration: the category
// registry, the Likert scale, both catalog variants and the seven-day plans.
type Data struct {
	Registry []Category
	Scale    []ScalePoint

	byKey    map[Key]Category
	variants map[Cohort][]Question
	plans    map[Key][]string
	fallback []string
}

// Load parses the embedded data files and validates them. Any validation
// failure is a configuration error and fatal to initialization: scoring
// cannot proceed against an inconsistent catalog.
func Load() (*Data, error) {
	var registryDoc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := readYAML("data/registry.yaml", &registryDoc); err != nil {
		return nil, err
	}

	var scaleDoc struct {
		Points []ScalePoint `yaml:"points"`
	}
	if err := readYAML("data/scale.yaml", &scaleDoc); err != nil {
		return nil, err
	}

	var plansDoc struct {
		Plans   map[Key][]string `yaml:"plans"`
		Default []string         `yaml:"default"`
	}
	if err := readYAML("data/plans.yaml", &plansDoc); err != nil {
		return nil, err
	}

	d := &Data{
		Registry: registryDoc.Categories,
		Scale:    scaleDoc.Points,
		byKey:    map[Key]Category{},
		variants: map[Cohort][]Question{},
		plans:    plansDoc.Plans,
		fallback: plansDoc.Default,
	}

	for _, cohort := range []Cohort{CohortFemale, CohortMale} {
		var doc struct {
			Questions []Question `yaml:"questions"`
		}
		if err := readYAML(fmt.Sprintf("data/questions_%s.yaml", cohort), &doc); err != nil {
			return nil, err
		}
		d.variants[cohort] = doc.Questions
	}

	if errs := d.validate(); len(errs) > 0 {
		return nil, errs
	}

	// MaxScore = questions in category x max scale value, per variant.
	// Variants are validated to have identical per-category counts, so the
	// female catalog is representative.
	maxValue := d.MaxValue()
	for i, c := range d.Registry {
		count := 0
		for _, q := range d.variants[CohortFemale] {
			if q.Key == c.Key {
				count++
			}
		}
		d.Registry[i].MaxScore = count * maxValue
		d.byKey[c.Key] = d.Registry[i]
	}

	return d, nil
}

func readYAML(name string, out any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Questions returns the catalog variant for the cohort. An unset or unknown
// cohort falls back to the female variant, mirroring the entry screen default.
func (d *Data) Questions(c Cohort) []Question {
	if qs, ok := d.variants[c]; ok {
		return qs
	}
	return d.variants[CohortFemale]
}

// Category looks up a registry entry by key.
func (d *Data) Category(k Key) (Category, bool) {
	c, ok := d.byKey[k]
	return c, ok
}

// MaxValue returns the highest scale value (4 in the shipped configuration).
func (d *Data) MaxValue() int {
	if len(d.Scale) == 0 {
		return 0
	}
	return d.Scale[len(d.Scale)-1].Value
}

// Plan returns the seven-day task list for a constitution, falling back to
// the generic plan for unknown keys.
func (d *Data) Plan(k Key) []string {
	if tasks, ok := d.plans[k]; ok {
		return tasks
	}
	return d.fallback
}
