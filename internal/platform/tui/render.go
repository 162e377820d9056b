package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Hive geometry: seven 5x3 cells, two on top, three in the middle with the
// center letter between them, two at the bottom.
const (
	hiveW    = 19
	hiveH    = 9
	hiveCell = 5
)

// hiveSlots gives the top-left corner for each display index.
var hiveSlots = [puzzle.Size]struct{ x, y int }{
	0: {7, 3},
	1: {4, 0},
	2: {10, 0},
	3: {1, 3},
	4: {13, 3},
	5: {4, 6},
	6: {10, 6},
}

// drawHive draws the letters in display order. Index 0 is the center.
func drawHive(dst *core.Screen, display puzzle.Letters) {
	for i := 0; i < len(display) && i < puzzle.Size; i++ {
		slot := hiveSlots[i]
		border, letter := core.ColorGray, core.ColorWhite
		if i == 0 {
			border, letter = core.ColorYellow, core.ColorBrightYellow
		}
		dst.DrawBox(core.NewRect(slot.x, slot.y, hiveCell, 3), border)
		dst.SetColor(slot.x+2, slot.y+1, unicode.ToUpper(rune(display[i])), letter)
	}
}
