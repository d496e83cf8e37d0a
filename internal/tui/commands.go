package tui

import (
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soukando/taishin/internal/chart"
	"github.com/soukando/taishin/internal/clipboard"
)

type chartReadyMsg struct {
	renderer *chart.Renderer
	err      error
}

type copyDoneMsg struct {
	outcome clipboard.Outcome
	text    string
}

type toastClearMsg struct{}

func acquireChartCmd(series []chart.Point) tea.Cmd {
	return func() tea.Msg {
		renderer, err := chart.Acquire(series)
		return chartReadyMsg{renderer: renderer, err: err}
	}
}

func copyCmd(copier *clipboard.Copier, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{outcome: copier.Copy(text), text: text}
	}
}

func toastClearCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// openURLCmd opens the link in the default browser. Best-effort: a missing
// opener is silently ignored, navigation is never load-bearing.
func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		_ = cmd.Start()
		return nil
	}
}
