package answers

// Saver receives the current snapshot after every mutation. Writes are
// best-effort: the store discards any error so a failing disk can never block
// or corrupt the in-memory state.
type Saver interface {
	SaveAnswers(snap map[int]int) error
}

// Store holds the in-progress mapping from question id to selected scale
// value. Absence is the unanswered state; zero is a meaningful scale point.
type Store struct {
	values   map[int]int
	maxValue int
	saver    Saver
}

// NewStore returns an empty store accepting values 0..maxValue. saver may be
// nil when persistence is not wanted (tests, read-only CLI paths).
func NewStore(maxValue int, saver Saver) *Store {
	return &Store{
		values:   map[int]int{},
		maxValue: maxValue,
		saver:    saver,
	}
}

// Select applies the toggle-to-clear rule: re-selecting the stored value
// clears the question back to unanswered, any other value replaces it.
// Values outside the scale are ignored.
func (s *Store) Select(id, value int) {
	if value < 0 || value > s.maxValue {
		return
	}
	if current, ok := s.values[id]; ok && current == value {
		delete(s.values, id)
	} else {
		s.values[id] = value
	}
	s.persist()
}

// Value returns the selected value for a question and whether one is set.
func (s *Store) Value(id int) (int, bool) {
	v, ok := s.values[id]
	return v, ok
}

func (s *Store) Answered(id int) bool {
	_, ok := s.values[id]
	return ok
}

// Len reports how many questions currently have a selected value.
func (s *Store) Len() int {
	return len(s.values)
}

// ClearAll empties the store.
func (s *Store) ClearAll() {
	s.values = map[int]int{}
	s.persist()
}

// Snapshot returns a copy of the current mapping, safe to hold across later
// mutations.
func (s *Store) Snapshot() map[int]int {
	snap := make(map[int]int, len(s.values))
	for id, v := range s.values {
		snap[id] = v
	}
	return snap
}

// Restore replaces the store contents from a previously persisted snapshot.
// Entries with out-of-scale values are dropped; a nil snapshot restores to
// empty. Restore does not trigger a save: it only runs against data that was
// just read back from the same place.
func (s *Store) Restore(snap map[int]int) {
	s.values = make(map[int]int, len(snap))
	for id, v := range snap {
		if v < 0 || v > s.maxValue {
			continue
		}
		s.values[id] = v
	}
}

func (s *Store) persist() {
	if s.saver == nil {
		return
	}
	_ = s.saver.SaveAnswers(s.Snapshot())
}
