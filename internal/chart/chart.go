// Package chart renders the per-category score visualization. The renderer
// is acquired as an explicit resource with three observable states so the
// result view can show a loading line, the chart, or an inline error without
// affecting anything else on screen.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soukando/taishin/internal/scoring"
)

// Status is the renderer acquisition state as seen by the view layer.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// Point is one finished data point; the chart consumes the series and knows
// nothing about scoring.
type Point struct {
	Name  string
	Score int
	Max   int
	Color string
}

// BuildSeries projects ranked categories into chart points, preserving rank
// order.
func BuildSeries(ranked []scoring.Ranked) []Point {
	series := make([]Point, 0, len(ranked))
	for _, r := range ranked {
		series = append(series, Point{
			Name:  r.Name,
			Score: r.Score,
			Max:   r.MaxScore,
			Color: r.Color,
		})
	}
	return series
}

type Renderer struct {
	barWidth int
}

// Acquire prepares a renderer for the series. Color tokens come from the
// data files, so they are validated here; a bad token fails the chart, not
// the result view around it.
func Acquire(series []Point) (*Renderer, error) {
	for _, p := range series {
		n, err := strconv.Atoi(p.Color)
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("invalid color token %q for %s", p.Color, p.Name)
		}
		if p.Max <= 0 {
			return nil, fmt.Errorf("non-positive max for %s", p.Name)
		}
	}
	return &Renderer{barWidth: 20}, nil
}

// Render draws one annotated horizontal bar per point.
func (r *Renderer) Render(series []Point) string {
	nameWidth := 0
	for _, p := range series {
		if w := lipgloss.Width(p.Name); w > nameWidth {
			nameWidth = w
		}
	}

	dim := lipgloss.NewStyle().Faint(true)
	var b strings.Builder
	for i, p := range series {
		if i > 0 {
			b.WriteString("\n")
		}
		filled := 0
		if p.Max > 0 {
			filled = p.Score * r.barWidth / p.Max
		}
		if filled > r.barWidth {
			filled = r.barWidth
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(strings.Repeat("█", filled)) +
			dim.Render(strings.Repeat("░", r.barWidth-filled))

		name := p.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(p.Name))
		fmt.Fprintf(&b, "%s %s %2d / %d", name, bar, p.Score, p.Max)
	}
	return b.String()
}
