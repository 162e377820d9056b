package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	pangramStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	cheatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

const wordsPerColumn = 10

// renderWords lays found words out in columns, styled by how they were found.
func renderWords(records []bee.GuessRecord) string {
	if len(records) == 0 {
		return panelStyle.Render(dimStyle.Render("No words yet"))
	}

	var columns []string
	for start := 0; start < len(records); start += wordsPerColumn {
		end := min(start+wordsPerColumn, len(records))
		lines := make([]string, 0, end-start)
		for _, rec := range records[start:end] {
			lines = append(lines, wordStyle(rec).Render(rec.Word))
		}
		col := lipgloss.NewStyle().Width(12).Render(strings.Join(lines, "\n"))
		columns = append(columns, col)
	}

	header := dimStyle.Render(fmt.Sprintf("%d words", len(records)))
	return panelStyle.Render(header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func wordStyle(rec bee.GuessRecord) lipgloss.Style {
	switch {
	case rec.HasTag(bee.TagCheatRevealed):
		if rec.HasTag(bee.TagPangram) {
			return cheatStyle.Bold(true)
		}
		return cheatStyle
	case rec.HasTag(bee.TagPangram):
		return pangramStyle
	case rec.HasTag(bee.TagHintRevealed):
		return hintStyle
	default:
		return lipgloss.NewStyle()
	}
}

// renderStats draws the statistics panel.
func renderStats(s bee.StatsSnapshot) string {
	lines := []string{
		titleStyle.Render("Stats"),
		fmt.Sprintf("Words found   %d of %d (%d%%)", s.Found, s.Total, s.Percent),
		fmt.Sprintf("Points        %d of %d", s.Points, s.MaxPoints),
		fmt.Sprintf("Longest word  %d letters", s.Longest),
		fmt.Sprintf("Most letters  %d", s.MostLetters),
	}
	if s.HasAverage {
		lines = append(lines, fmt.Sprintf("Average       %.1f letters", s.AvgLength))
	}
	lines = append(lines,
		fmt.Sprintf("Pace          %.1f words/min", s.WordsPerMinute),
		fmt.Sprintf("Hints used    %d", s.Hints),
		fmt.Sprintf("Time          %s", s.Elapsed.Truncate(time.Second)),
	)
	return panelStyle.Render(strings.Join(lines, "\n"))
}
