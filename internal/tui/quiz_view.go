package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderQuiz(m Model) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ページ %d / %d\n\n", m.session.Page()+1, m.session.PageCount())

	scale := m.session.Data().Scale
	answers := m.session.Answers()

	for i, q := range m.session.PageQuestions() {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("❯ ")
		}

		text := fmt.Sprintf("Q%d. %s", q.ID, q.Text)
		if q.Optional {
			text += faintStyle.Render("（任意）")
		}
		if i == m.cursor {
			text = lipgloss.NewStyle().Bold(true).Render(text)
		}
		b.WriteString(marker + text + "\n")

		value, answered := answers.Value(q.ID)
		var opts []string
		for _, p := range scale {
			opt := fmt.Sprintf("%d:%s", p.Value, p.Label)
			if answered && p.Value == value {
				opt = selectedStyle.Render(opt)
			} else {
				opt = faintStyle.Render(opt)
			}
			opts = append(opts, opt)
		}
		b.WriteString("    " + strings.Join(opts, " ") + "\n")
	}

	if m.validation != "" {
		b.WriteString("\n" + errorStyle.Render(m.validation))
	}

	return b.String()
}
