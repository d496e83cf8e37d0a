// Package store persists the answer and profile snapshots as small JSON
// documents under the user's home directory. Reads fail soft: a missing,
// unreadable or malformed file yields the empty value, never an error the
// interaction has to handle.
package store

import (
	"github.com/soukando/taishin/internal/catalog"
)

const (
	// Versioned filenames: bumping a version abandons old snapshots instead
	// of migrating them.
	answersFilename = "answers-v3.json"
	profileFilename = "profile-v1.json"
)

// Profile is the persisted entry-step selection. The cohort is stored
// alongside the answers because the catalog variant depends on it.
type Profile struct {
	Cohort  catalog.Cohort `json:"cohort,omitempty"`
	AgeBand string         `json:"ageBand,omitempty"`
}

// Complete reports whether both entry selections have been made.
func (p Profile) Complete() bool {
	return p.Cohort.Valid() && p.AgeBand != ""
}

// Port is the durable-storage seam. The session owns one instance; nothing
// else holds a write handle.
type Port interface {
	LoadAnswers() map[int]int
	SaveAnswers(snap map[int]int) error
	LoadProfile() (Profile, bool)
	SaveProfile(p Profile) error
	Clear() error
}
