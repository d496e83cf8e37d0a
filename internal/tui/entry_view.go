package tui

import (
	"strings"

	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/session"
)

func renderEntry(m Model) string {
	var b strings.Builder
	profile := m.session.Profile()

	b.WriteString(sectionStyle.Render("性別と年齢層を選んで診断を開始"))
	b.WriteString("\n\n性別: ")
	b.WriteString(cohortOption("女性", profile.Cohort == catalog.CohortFemale))
	b.WriteString("  ")
	b.WriteString(cohortOption("男性", profile.Cohort == catalog.CohortMale))

	b.WriteString("\n\n年齢層:\n")
	for i, band := range session.AgeBands {
		marker := "  "
		line := band
		if i == m.ageIndex && profile.AgeBand == band {
			marker = cursorStyle.Render("❯ ")
			line = selectedStyle.Render(band)
		} else if i == m.ageIndex {
			marker = cursorStyle.Render("❯ ")
		}
		b.WriteString(marker + line + "\n")
	}

	if m.validation != "" {
		b.WriteString("\n" + errorStyle.Render(m.validation) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render("※ 回答は同じ端末に自動保存されます。全32問／約3分。"))
	return b.String()
}

func cohortOption(label string, selected bool) string {
	if selected {
		return selectedStyle.Render(" " + label + " ")
	}
	return " " + label + " "
}
