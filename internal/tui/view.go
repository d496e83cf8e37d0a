package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soukando/taishin/internal/session"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	faintStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	toastStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	bottomBarStyle  = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	comboLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
)

func (m Model) View() string {
	sections := []string{renderHeader(m)}

	if m.session.Stage() != session.StageEntry {
		sections = append(sections, renderProgress(m))
	}

	switch m.session.Stage() {
	case session.StageEntry:
		sections = append(sections, renderEntry(m))
	case session.StageQuiz:
		sections = append(sections, renderQuiz(m))
	case session.StageResult:
		if m.manualText != "" {
			sections = append(sections, renderManualCopy(m))
		} else {
			sections = append(sections, m.resultView.View())
			if m.toast != "" {
				sections = append(sections, toastStyle.Render(m.toast))
			}
		}
	}

	sections = append(sections, renderBottomBar(m))
	return strings.Join(sections, "\n")
}

func renderHeader(m Model) string {
	return titleStyle.Render("漢方の体質診断（32問・性別別）")
}

func renderProgress(m Model) string {
	c := m.session.Completion()
	label := fmt.Sprintf("進捗 %d/%d（%d%%）", c.Answered, c.Total, c.Percent)
	bar := m.progressBar.ViewAs(float64(c.Percent) / 100)
	return label + "\n" + bar
}

func renderBottomBar(m Model) string {
	hints := keyHints(m)
	bar := strings.Join(hints, "  ")
	if m.windowWidth > 2 {
		if w := lipgloss.Width(bar); w < m.windowWidth-2 {
			bar += strings.Repeat(" ", m.windowWidth-2-w)
		}
	}
	return bottomBarStyle.Render(bar)
}

func keyHints(m Model) []string {
	if m.manualText != "" {
		return []string{"[esc] 閉じる"}
	}
	switch m.session.Stage() {
	case session.StageEntry:
		return []string{"[f] 女性", "[m] 男性", "[↑↓] 年齢層", "[enter] 診断をはじめる", "[q] 終了"}
	case session.StageQuiz:
		return []string{"[↑↓] 移動", "[0-4] 回答", "[n] 次へ", "[b] 戻る", "[ctrl+r] リセット", "[q] 終了"}
	case session.StageResult:
		return []string{"[c] 結果をコピー", "[o] 無料相談", "[r] 回答を見直す", "[ctrl+r] リセット", "[↑↓] スクロール", "[q] 終了"}
	}
	return nil
}
