package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var userHomeDir = os.UserHomeDir

// FileStore keeps snapshots in ~/.taishin. Writes are atomic
// (temp file + fsync + rename) so a crash mid-write never leaves a torn
// snapshot behind.
type FileStore struct {
	dir string
}

// NewFileStore resolves the snapshot directory. It does not create it;
// creation is deferred to the first write.
func NewFileStore() (*FileStore, error) {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &FileStore{dir: filepath.Join(home, ".taishin")}, nil
}

// NewFileStoreAt uses an explicit directory, mainly for tests.
func NewFileStoreAt(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir is the snapshot directory; other per-user files live alongside it.
func (s *FileStore) Dir() string {
	return s.dir
}

// LoadAnswers reads the answer snapshot. The wire form is a flat object of
// string question ids to integers; anything that fails to parse is treated
// as an empty snapshot.
func (s *FileStore) LoadAnswers() map[int]int {
	raw := map[string]int{}
	if !s.readJSON(answersFilename, &raw) {
		return map[int]int{}
	}
	snap := make(map[int]int, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		snap[id] = v
	}
	return snap
}

func (s *FileStore) SaveAnswers(snap map[int]int) error {
	raw := make(map[string]int, len(snap))
	for id, v := range snap {
		raw[strconv.Itoa(id)] = v
	}
	return s.writeJSON(answersFilename, raw)
}

func (s *FileStore) LoadProfile() (Profile, bool) {
	var p Profile
	if !s.readJSON(profileFilename, &p) {
		return Profile{}, false
	}
	return p, true
}

func (s *FileStore) SaveProfile(p Profile) error {
	return s.writeJSON(profileFilename, p)
}

// Clear removes both snapshots. Missing files are not an error.
func (s *FileStore) Clear() error {
	for _, name := range []string{answersFilename, profileFilename} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// readJSON decodes one snapshot file into out. It requires exactly one JSON
// document and nothing after it; any other shape counts as absent.
func (s *FileStore) readJSON(name string, out any) bool {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(out); err != nil {
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return false
	}
	return true
}

func (s *FileStore) writeJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := atomicWriteFile(filepath.Join(s.dir, name), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
