package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Palette maps core.Color to lipgloss styles for one renderer.
// SSH sessions build their own palette so color detection follows the
// client terminal rather than the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette builds a palette on r. A nil renderer uses the default one.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg("7"),
		core.ColorBrightRed:    fg("9"),
		core.ColorBrightYellow: fg("11").Bold(true),
		core.ColorOrange:       fg("208"),
		core.ColorGray:         fg("245"),
	}}
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer to a styled string using the
// default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.styles[core.ColorDefault]
}
