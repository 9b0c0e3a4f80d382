package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/partialgrid"
)

// Cell glyphs: two characters per cell keeps the aspect ratio near square in
// most terminal fonts.
const (
	glyphCell  = "██"
	glyphEmpty = " ·"
)

var (
	styleEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("167")) // soft red: walls stand out
	styleLegend = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// palette covers the regular colors; anything beyond cycles.
	palette = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("36")),  // teal: color 0
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // amber: color 1
		styleBorder,                                           // color 2 is the border
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // light blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("35")),  // green
		lipgloss.NewStyle().Foreground(lipgloss.Color("213")), // pink
	}
)

// cellStyle picks the style for a color value.
func cellStyle(color int) lipgloss.Style {
	if color < 0 {
		return styleEmpty
	}
	return palette[color%len(palette)]
}

// renderGrid draws the grid, one styled glyph per cell.
func renderGrid(p *partialgrid.PartialGrid) string {
	var b strings.Builder
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Cols(); c++ {
			v, err := p.Get(r, c)
			if err != nil {
				b.WriteString(styleEmpty.Render(glyphEmpty))
				continue
			}
			b.WriteString(cellStyle(v).Render(glyphCell))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// renderSummary reports the colors in use after a run.
func renderSummary(p *partialgrid.PartialGrid, steps int) string {
	counts := map[int]int{}
	p.ForNonEmpty(func(_ partialgrid.Coord, v int) { counts[v]++ })

	borders := counts[coloring.BorderColor]
	line := fmt.Sprintf("steps: %d   cells: %d   colors: %d   border cells: %d",
		steps, p.CountNonEmpty(), len(counts), borders)

	return styleLegend.Render(line)
}
