package store

// MemStore is an in-memory Port for tests and for sessions that should not
// touch the filesystem.
type MemStore struct {
	Answers    map[int]int
	Profile    Profile
	HasProfile bool

	SaveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{Answers: map[int]int{}}
}

func (m *MemStore) LoadAnswers() map[int]int {
	snap := make(map[int]int, len(m.Answers))
	for id, v := range m.Answers {
		snap[id] = v
	}
	return snap
}

func (m *MemStore) SaveAnswers(snap map[int]int) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Answers = make(map[int]int, len(snap))
	for id, v := range snap {
		m.Answers[id] = v
	}
	return nil
}

func (m *MemStore) LoadProfile() (Profile, bool) {
	return m.Profile, m.HasProfile
}

func (m *MemStore) SaveProfile(p Profile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Profile = p
	m.HasProfile = true
	return nil
}

func (m *MemStore) Clear() error {
	m.Answers = map[int]int{}
	m.Profile = Profile{}
	m.HasProfile = false
	return nil
}
