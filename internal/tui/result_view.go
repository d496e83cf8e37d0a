package tui

import (
	"fmt"
	"strings"

	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/chart"
	"github.com/soukando/taishin/internal/directory"
	"github.com/soukando/taishin/internal/result"
	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/session"
)

func (m Model) shareText() string {
	return result.ShareText(m.session.Ranked(), m.session.Profile())
}

// refreshResultView rebuilds the viewport content. Called on every event that
// can change what the result shows: entering the stage, window resize, chart
// arrival and toast changes.
func (m *Model) refreshResultView() {
	if m.session.Stage() != session.StageResult {
		return
	}
	m.resultView.SetContent(m.resultContent())
}

func (m Model) resultContent() string {
	ranked := m.session.Ranked()
	profile := m.session.Profile()

	var b strings.Builder

	fmt.Fprintf(&b, "%s ・ %s\n\n", profile.Cohort.Label(), profile.AgeBand)
	b.WriteString("あなたの体質タイプ: " + comboLabelStyle.Render(result.ComboLabel(ranked)) + "\n\n")

	top := scoring.Top(ranked, 2)
	for i, r := range top {
		fmt.Fprintf(&b, "TOP%d %s（%d / %d点）\n", i+1, r.Name, r.Score, r.MaxScore)
		if r.Short != "" {
			b.WriteString("  " + faintStyle.Render(r.Short) + "\n")
		}
	}

	if len(top) == 2 {
		blend := result.BlendAdvice(top[0], top[1])
		b.WriteString("\n" + sectionStyle.Render(blend.Title) + "\n")
		b.WriteString("暮らし:\n")
		for _, item := range blend.Lifestyle {
			b.WriteString("  ・" + item + "\n")
		}
		b.WriteString("食事:\n")
		for _, item := range blend.Diet {
			b.WriteString("  ・" + item + "\n")
		}
	}

	b.WriteString("\n" + sectionStyle.Render("スコア一覧") + "\n")
	b.WriteString(m.renderChart(ranked) + "\n")

	if len(top) > 0 {
		b.WriteString("\n" + sectionStyle.Render("7日間プラン（"+top[0].Name+"）") + "\n")
		for i, task := range m.session.Data().Plan(top[0].Key) {
			fmt.Fprintf(&b, "  Day%d %s\n", i+1, task)
		}
	}

	b.WriteString(m.renderDirectory(top, profile.Cohort))

	b.WriteString("\n" + faintStyle.Render("※ セルフケアの目安です。つらい症状は専門家へ。") + "\n")

	return b.String()
}

func (m Model) renderChart(ranked []scoring.Ranked) string {
	switch m.chartStatus {
	case chart.StatusReady:
		return m.chartRenderer.Render(chart.BuildSeries(ranked))
	case chart.StatusFailed:
		return errorStyle.Render("グラフを表示できません: " + m.chartErr)
	default:
		return faintStyle.Render("グラフを読み込み中…")
	}
}

func (m Model) renderDirectory(top []scoring.Ranked, cohort catalog.Cohort) string {
	keys := make([]catalog.Key, 0, len(top))
	for _, r := range top {
		keys = append(keys, r.Key)
	}
	matched := directory.Match(m.listing, keys, cohort)
	if len(matched) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render("相談できる専門家") + "\n")
	for _, p := range matched {
		fmt.Fprintf(&b, "  %s（%s／%s）\n", p.Name, strings.Join(p.Titles, "・"), p.Area)
		if p.Bio != "" {
			b.WriteString("    " + faintStyle.Render(p.Bio) + "\n")
		}
		b.WriteString("    " + faintStyle.Render(p.URL) + "\n")
	}
	return b.String()
}

// renderManualCopy is the overlay shown when both clipboard tiers failed: the
// share text is printed in full so it can be selected by hand.
func renderManualCopy(m Model) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("コピーできませんでした。以下を選択してコピーしてください。") + "\n\n")
	b.WriteString(m.manualText + "\n")
	return b.String()
}
