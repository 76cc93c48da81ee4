package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-puff/internal/core"
)

// colorPair is the style key of a run of cells.
type colorPair struct {
	fg, bg core.Color
}

// styleCache builds one lipgloss style per color pair and renderer.
type styleCache struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{renderer: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (c *styleCache) style(p colorPair) lipgloss.Style {
	if st, ok := c.styles[p]; ok {
		return st
	}
	st := c.renderer.NewStyle()
	if p.fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(p.bg))
	}
	c.styles[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	return newStyleCache(nil).render(s)
}

// render groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (c *styleCache) render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(c.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
