package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soukando/taishin/internal/analytics"
	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/chart"
	"github.com/soukando/taishin/internal/clipboard"
	"github.com/soukando/taishin/internal/directory"
	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/session"
)

// appointmentURL is the external consultation booking page.
const appointmentURL = "https://timerex.net/s/info_d924_481d/ef7d1a98"

type Model struct {
	session *session.Session
	events  analytics.Emitter
	copier  *clipboard.Copier
	listing []directory.Practitioner

	windowWidth  int
	windowHeight int

	// entry stage
	ageIndex int

	// quiz stage
	cursor     int
	validation string

	progressBar progress.Model

	// result stage
	resultView    viewport.Model
	chartStatus   chart.Status
	chartRenderer *chart.Renderer
	chartErr      string
	toast         string
	manualText    string
}

func NewModel(sess *session.Session, events analytics.Emitter, copier *clipboard.Copier, listing []directory.Practitioner) Model {
	m := Model{
		session:     sess,
		events:      events,
		copier:      copier,
		listing:     listing,
		progressBar: progress.New(progress.WithDefaultGradient()),
		resultView:  viewport.New(0, 0),
	}
	// Reflect a restored profile in the entry cursor.
	for i, band := range session.AgeBands {
		if band == sess.Profile().AgeBand {
			m.ageIndex = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.progressBar.Width = clampWidth(typed.Width-4, 10, 60)
		m.resultView.Width = typed.Width
		m.resultView.Height = resultViewportHeight(typed.Height)
		m.refreshResultView()
		return m, nil

	case chartReadyMsg:
		if typed.err != nil {
			m.chartStatus = chart.StatusFailed
			m.chartErr = typed.err.Error()
		} else {
			m.chartStatus = chart.StatusReady
			m.chartRenderer = typed.renderer
		}
		m.refreshResultView()
		return m, nil

	case copyDoneMsg:
		switch typed.outcome {
		case clipboard.CopiedPrimary, clipboard.CopiedFallback:
			m.toast = "クリップボードにコピーしました"
			return m, toastClearCmd()
		default:
			m.manualText = typed.text
			return m, nil
		}

	case toastClearMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(typed)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.manualText != "" {
		switch key.String() {
		case "esc", "q", "enter":
			m.manualText = ""
		}
		return m, nil
	}

	switch m.session.Stage() {
	case session.StageEntry:
		return m.updateEntry(key.String())
	case session.StageQuiz:
		return m.updateQuiz(key.String())
	case session.StageResult:
		return m.updateResult(key)
	}
	return m, nil
}

func (m Model) updateEntry(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "f":
		m.session.SetCohort(catalog.CohortFemale)
		m.validation = ""
	case "m":
		m.session.SetCohort(catalog.CohortMale)
		m.validation = ""
	case "up", "k":
		if m.ageIndex > 0 {
			m.ageIndex--
		}
		m.session.SetAgeBand(session.AgeBands[m.ageIndex])
		m.validation = ""
	case "down", "j":
		if m.ageIndex < len(session.AgeBands)-1 {
			m.ageIndex++
		}
		m.session.SetAgeBand(session.AgeBands[m.ageIndex])
		m.validation = ""
	case "enter":
		if err := m.session.Start(); err != nil {
			m.validation = "性別と年齢層を選んでください"
			return m, nil
		}
		m.cursor = 0
		m.validation = ""
	}
	return m, nil
}

func (m Model) updateQuiz(key string) (tea.Model, tea.Cmd) {
	page := m.session.PageQuestions()

	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(page)-1 {
			m.cursor++
		}
	case "0", "1", "2", "3", "4":
		if m.cursor < len(page) {
			m.session.Select(page[m.cursor].ID, int(key[0]-'0'))
			m.validation = ""
		}
	case "b":
		m.session.Prev()
		m.cursor = 0
		m.validation = ""
	case "n", "enter":
		return m.advance()
	case "ctrl+r":
		m.session.Reset()
		m.cursor = 0
		m.validation = ""
	}
	return m, nil
}

// advance runs the gated forward transition. A blocked page surfaces the
// validation banner and moves the cursor onto the offending question.
func (m Model) advance() (tea.Model, tea.Cmd) {
	err := m.session.Next()
	if blocked, ok := err.(session.BlockedError); ok {
		m.validation = fmt.Sprintf("Q%d に回答してください（ページ内のすべてに回答してください）", blocked.Question.ID)
		for i, q := range m.session.PageQuestions() {
			if q.ID == blocked.Question.ID {
				m.cursor = i
			}
		}
		return m, nil
	}
	m.validation = ""
	m.cursor = 0
	if m.session.Stage() == session.StageResult {
		return m.enterResult()
	}
	return m, nil
}

// enterResult initializes the result stage: the chart renderer is acquired
// asynchronously and the view shows a loading state meanwhile.
func (m Model) enterResult() (tea.Model, tea.Cmd) {
	m.chartStatus = chart.StatusLoading
	m.chartRenderer = nil
	m.chartErr = ""
	m.resultView.Width = m.windowWidth
	m.resultView.Height = resultViewportHeight(m.windowHeight)
	m.resultView.GotoTop()
	m.refreshResultView()
	series := chart.BuildSeries(m.session.Ranked())
	return m, acquireChartCmd(series)
}

func (m Model) updateResult(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "c":
		return m, copyCmd(m.copier, m.shareText())
	case "r":
		m.session.Retry()
		m.cursor = 0
		m.toast = ""
		return m, nil
	case "o":
		top := scoring.Top(m.session.Ranked(), 2)
		fields := []zap.Field{zap.String("location", "result")}
		if len(top) > 0 {
			fields = append(fields, zap.String("top1", string(top[0].Key)))
		}
		if len(top) > 1 {
			fields = append(fields, zap.String("top2", string(top[1].Key)))
		}
		m.events.Event(analytics.EventConsultClick, fields...)
		return m, openURLCmd(appointmentURL)
	case "ctrl+r":
		m.session.Reset()
		m.cursor = 0
		m.toast = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.resultView, cmd = m.resultView.Update(key)
	return m, cmd
}

func clampWidth(w, min, max int) int {
	if w < min {
		return min
	}
	if w > max {
		return max
	}
	return w
}

func resultViewportHeight(window int) int {
	// Header, progress section and bottom bar take a few rows.
	h := window - 6
	if h < 5 {
		h = 5
	}
	return h
}
