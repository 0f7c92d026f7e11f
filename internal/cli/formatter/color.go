package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spotter/internal/domain"
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

// DifficultyStyle returns the style for a difficulty tier.
func DifficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyBeginner:
		return StyleGreen
	case domain.DifficultyIntermediate:
		return StyleYellow
	case domain.DifficultyAdvanced:
		return StyleRed
	default:
		return StyleDim
	}
}

// DifficultyBadge returns a colored difficulty label such as "● Advanced".
func DifficultyBadge(d domain.Difficulty) string {
	if d == "" {
		return StyleDim.Render("● --")
	}
	return DifficultyStyle(d).Render("● " + string(d))
}

// ComparisonIndicator renders how a set compares to last workout.
func ComparisonIndicator(c domain.Comparison) string {
	switch c {
	case domain.CompareBetter:
		return StyleGreen.Render("▲ better than last time")
	case domain.CompareSame:
		return StyleYellow.Render("● same as last time")
	case domain.CompareWorse:
		return StyleRed.Render("▼ below last time")
	default:
		return ""
	}
}

// RecordBadge marks a personal record.
func RecordBadge() string {
	return StylePurple.Bold(true).Render("★ NEW PR")
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
