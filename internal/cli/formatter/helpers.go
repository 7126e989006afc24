package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDate renders a calendar date as YYYY-MM-DD, or "--" when unset.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "--"
	}
	return t.Format("2006-01-02")
}

// FormatRange renders an inclusive date range.
func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%s ~ %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// FormatHours renders an hour total with one decimal, dropping a trailing ".0".
func FormatHours(h float64) string {
	s := fmt.Sprintf("%.1f", h)
	return strings.TrimSuffix(s, ".0") + "h"
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatChange renders a signed change in percentage points, or "--" when nil.
func FormatChange(change *float64) string {
	if change == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%+.1fp", *change)
}

// RemainingDays renders days left until a deadline with urgency coloring.
func RemainingDays(days *int) string {
	if days == nil {
		return Dim("--")
	}
	d := *days
	switch {
	case d < 0:
		return StyleRed.Render(fmt.Sprintf("D+%d", -d))
	case d == 0:
		return StyleRed.Render("D-Day")
	case d <= 7:
		return StyleYellow.Render(fmt.Sprintf("D-%d", d))
	default:
		return StyleFg.Render(fmt.Sprintf("D-%d", d))
	}
}
