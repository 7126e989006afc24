package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a 0..100 percentage.
// Colors: green from 66, yellow from 33, red below.
func RenderProgress(pct float64, width int) string {
	bar, style := progressBar(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), clampPct(pct))
}

// RenderUtilizationBar renders a utilization percentage against the 50%
// low threshold: red below it, green at or above. Values over 100 fill the bar.
func RenderUtilizationBar(pct float64, width int) string {
	bar, _ := progressBar(pct, width)
	style := StyleGreen
	if pct < 50 {
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %5.1f%%", style.Render(bar), pct)
}

func progressBar(pct float64, width int) (string, lipgloss.Style) {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}
	return bar, style
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
