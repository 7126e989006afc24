package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UtilizationIndicator renders a member's utilization status as a colored label.
func UtilizationIndicator(status domain.UtilizationStatus) string {
	switch status {
	case domain.UtilizationMissingWork:
		return StyleRed.Render("● MISSING")
	case domain.UtilizationLow:
		return StyleYellow.Render("● LOW")
	case domain.UtilizationNormal:
		return StyleGreen.Render("● NORMAL")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// ScheduleIndicator renders a schedule status; statuses that do not apply render as "--".
func ScheduleIndicator(status domain.ScheduleStatus) string {
	switch status {
	case domain.ScheduleDelayed:
		return StyleRed.Render("▲ Delayed")
	case domain.ScheduleImminent:
		return StyleYellow.Render("● Imminent")
	case domain.ScheduleNormal:
		return StyleGreen.Render("● Normal")
	default:
		return StyleDim.Render("--")
	}
}

// TrendIndicator renders a trend as an arrow with its label.
func TrendIndicator(trend domain.Trend) string {
	switch trend {
	case domain.TrendUp:
		return StyleGreen.Render("▲ up")
	case domain.TrendDown:
		return StyleRed.Render("▼ down")
	case domain.TrendNew:
		return StyleBlue.Render("✚ new")
	case domain.TrendEnd:
		return StyleDim.Render("✖ end")
	default:
		return StyleFg.Render("─ stable")
	}
}

// StatusPill renders a project status label.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectInProgress:
		return StyleGreen.Render("● " + string(status))
	case domain.ProjectReview, domain.ProjectWaiting:
		return StyleBlue.Render("○ " + string(status))
	case domain.ProjectOnHold:
		return StyleYellow.Render("○ " + string(status))
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ " + string(status))
	case "":
		return StyleDim.Render("--")
	default:
		return StyleFg.Render(string(status))
	}
}

// PeriodLabel returns the display name of a remaining-period bucket.
func PeriodLabel(b domain.PeriodBucket) string {
	switch b {
	case domain.PeriodOverdue2Month:
		return "Overdue 2mo+"
	case domain.PeriodOverdue1Month:
		return "Overdue"
	case domain.PeriodImminent:
		return "Within 7d"
	case domain.PeriodOneMonth:
		return "Within 1mo"
	case domain.PeriodTwoMonths:
		return "Within 2mo"
	case domain.PeriodThreeMonths:
		return "Within 3mo"
	case domain.PeriodLongTerm:
		return "Long term"
	default:
		return "--"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
