package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/harmony/pkg/theory"
)

var (
	accent = lipgloss.Color("#39FF14")
	silver = lipgloss.Color("#C0C0C0")
	dim    = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	labelStyle = lipgloss.NewStyle().
			Foreground(dim)

	valueStyle = lipgloss.NewStyle().
			Foreground(silver).
			Bold(true)

	degreeStyle = lipgloss.NewStyle().
			Foreground(dim).
			Width(4)

	noteStyle = lipgloss.NewStyle().
			Foreground(silver).
			Width(6)

	successStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)
)

func renderScale(scale theory.DiatonicScale) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", scale.Tonic, scale.Mode)))
	s.WriteString("\n")

	degrees := make([]string, len(scale.Notes))
	notes := make([]string, len(scale.Notes))
	for i, n := range scale.Notes {
		degrees[i] = degreeStyle.Render(fmt.Sprint(i + 1))
		notes[i] = noteStyle.Render(n.String())
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, degrees...))
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, notes...))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render("intervals " + formatIntervals(scale.Intervals())))

	return boxStyle.Render(s.String())
}

func renderModes() string {
	var s strings.Builder
	for _, m := range theory.Modes() {
		s.WriteString(noteStyle.Width(12).Render(m.String()))
		s.WriteString(formatIntervals(m.IntervalPattern()))
		s.WriteString("\n")
	}
	return s.String()
}

// formatIntervals writes whole steps as W and half steps as H
func formatIntervals(gaps []int) string {
	parts := make([]string, len(gaps))
	for i, g := range gaps {
		switch g {
		case 1:
			parts[i] = "H"
		case 2:
			parts[i] = "W"
		default:
			parts[i] = fmt.Sprint(g)
		}
	}
	return strings.Join(parts, " ")
}
