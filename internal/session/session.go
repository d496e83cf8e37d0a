// Package session is the single owner of mutable quiz state: the entry
// profile, the answer store and the page position. Every transition is
// triggered synchronously by one user action; there is no concurrent access.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/soukando/taishin/internal/analytics"
	"github.com/soukando/taishin/internal/answers"
	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/progress"
	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/store"
)

// PageSize is the number of questions shown per quiz page.
const PageSize = 8

// AgeBands are the entry-step age choices, youngest first.
var AgeBands = []string{"16–24", "25–34", "35–44", "45–54", "55–64", "65+"}

type Stage int

const (
	StageEntry Stage = iota
	StageQuiz
	StageResult
)

// BlockedError reports a rejected forward navigation, carrying the first
// unanswered mandatory question for the scroll-to-error affordance.
type BlockedError struct {
	Question catalog.Question
}

func (e BlockedError) Error() string {
	return fmt.Sprintf("question %d is unanswered", e.Question.ID)
}

// ErrIncompleteProfile is returned by Start before both entry selections are
// made.
var ErrIncompleteProfile = fmt.Errorf("cohort and age band must be selected")

type Session struct {
	data    *catalog.Data
	port    store.Port
	events  analytics.Emitter
	store   *answers.Store
	profile store.Profile
	stage   Stage
	page    int
}

// New restores a session from the persisted snapshots. A prior profile
// reopens on the entry stage with its answers intact; Start decides whether
// they are cleared.
func New(data *catalog.Data, port store.Port, events analytics.Emitter) *Session {
	s := &Session{
		data:   data,
		port:   port,
		events: events,
		store:  answers.NewStore(data.MaxValue(), port),
		stage:  StageEntry,
	}
	if p, ok := port.LoadProfile(); ok {
		s.profile = p
	}
	s.store.Restore(port.LoadAnswers())
	return s
}

func (s *Session) Stage() Stage { return s.stage }

func (s *Session) Page() int { return s.page }

func (s *Session) Profile() store.Profile { return s.profile }

func (s *Session) Answers() *answers.Store { return s.store }

func (s *Session) Data() *catalog.Data { return s.data }

// Questions returns the active catalog variant for the selected cohort.
func (s *Session) Questions() []catalog.Question {
	return s.data.Questions(s.profile.Cohort)
}

func (s *Session) PageCount() int {
	total := len(s.Questions())
	if total == 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// PageQuestions returns the slice of questions on the current page.
func (s *Session) PageQuestions() []catalog.Question {
	qs := s.Questions()
	start := s.page * PageSize
	if start >= len(qs) {
		return nil
	}
	end := start + PageSize
	if end > len(qs) {
		end = len(qs)
	}
	return qs[start:end]
}

func (s *Session) SetCohort(c catalog.Cohort) {
	if !c.Valid() {
		return
	}
	s.profile.Cohort = c
	_ = s.port.SaveProfile(s.profile)
}

func (s *Session) SetAgeBand(band string) {
	s.profile.AgeBand = band
	_ = s.port.SaveProfile(s.profile)
}

// CanStart reports whether the entry stage has everything Start needs.
func (s *Session) CanStart() bool {
	return s.profile.Complete()
}

// Start clears any residual answers from a previous run and begins the quiz
// at page 0.
func (s *Session) Start() error {
	if !s.profile.Complete() {
		return ErrIncompleteProfile
	}
	s.store.ClearAll()
	s.stage = StageQuiz
	s.page = 0
	s.events.Event(analytics.EventEntryStart,
		zap.String("cohort", string(s.profile.Cohort)),
		zap.String("ageBand", s.profile.AgeBand),
	)
	return nil
}

// Select records an answer for the current catalog with toggle-to-clear
// semantics.
func (s *Session) Select(id, value int) {
	s.store.Select(id, value)
}

// Next advances one page when the current page is complete, finishing the
// quiz from the last page. An incomplete page returns BlockedError and stays
// put.
func (s *Session) Next() error {
	if s.stage != StageQuiz {
		return nil
	}
	snap := s.store.Snapshot()
	page := s.PageQuestions()
	if q, missing := progress.FirstMissing(snap, page); missing {
		return BlockedError{Question: q}
	}
	if s.page >= s.PageCount()-1 {
		s.stage = StageResult
		top := scoring.Top(s.Ranked(), 2)
		fields := []zap.Field{
			zap.String("cohort", string(s.profile.Cohort)),
			zap.String("ageBand", s.profile.AgeBand),
		}
		if len(top) > 0 {
			fields = append(fields, zap.String("top1", string(top[0].Key)))
		}
		if len(top) > 1 {
			fields = append(fields, zap.String("top2", string(top[1].Key)))
		}
		s.events.Event(analytics.EventResultView, fields...)
		return nil
	}
	s.page++
	return nil
}

// Prev moves one page back, never validated, clamped at the first page.
func (s *Session) Prev() {
	if s.stage != StageQuiz {
		return
	}
	if s.page > 0 {
		s.page--
	}
}

// Retry returns from the result to the quiz for review without clearing
// answers, landing on the last page that has any answered question, or page 0
// when nothing is answered.
func (s *Session) Retry() {
	if s.stage != StageResult {
		return
	}
	s.stage = StageQuiz
	s.page = s.lastAnsweredPage()
}

func (s *Session) lastAnsweredPage() int {
	snap := s.store.Snapshot()
	qs := s.Questions()
	last := 0
	for i, q := range qs {
		if _, ok := snap[q.ID]; ok {
			last = i / PageSize
		}
	}
	return last
}

// Reset clears all answers and the entry profile and returns to the entry
// stage. Snapshot removal is best-effort.
func (s *Session) Reset() {
	s.store.ClearAll()
	s.profile = store.Profile{}
	s.stage = StageEntry
	s.page = 0
	_ = s.port.Clear()
}

// Totals recomputes per-category scores from the current snapshot.
func (s *Session) Totals() map[catalog.Key]int {
	return scoring.Score(s.store.Snapshot(), s.Questions(), s.data.Registry)
}

// Ranked returns the categories ordered by score with the registry-order
// tie-break.
func (s *Session) Ranked() []scoring.Ranked {
	return scoring.Rank(s.Totals(), s.data.Registry)
}

// Completion summarizes overall answer progress.
func (s *Session) Completion() progress.Summary {
	return progress.Completion(s.store.Snapshot(), s.Questions())
}
