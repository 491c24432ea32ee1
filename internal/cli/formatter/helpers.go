package formatter

import (
	"fmt"
	"math"
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
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes a calendar day relative to today: "Today",
// "Yesterday", "3d ago", or "In 2d".
func RelativeDay(day, today time.Time) string {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Round(d.Sub(n).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days == 1:
		return "Tomorrow"
	case days < 0:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return fmt.Sprintf("In %dd", days)
	}
}

// FormatRating renders "7/10" colored by band.
func FormatRating(rating int) string {
	return RatingColor(rating).Render(fmt.Sprintf("%d/10", rating))
}

// FormatAverage renders an average rating with two decimals, or "--" when
// nothing has been logged.
func FormatAverage(avg float64, total int) string {
	if total == 0 {
		return Dim("--")
	}
	return RatingColor(int(math.Round(avg))).Render(fmt.Sprintf("%.2f", avg))
}

// StreakBadge renders a streak length in days.
func StreakBadge(days int) string {
	switch {
	case days == 0:
		return Dim("0 days")
	case days == 1:
		return StyleYellow.Render("1 day")
	default:
		return StyleGreen.Render(fmt.Sprintf("%d days", days))
	}
}

// Truncate shortens s to at most n visible runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
