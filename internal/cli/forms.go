package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tallyHuhTheme returns a huh theme using the Gruvbox palette.
func tallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateTask(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrEmptyTask
	}
	return nil
}

func validateDate(s string) error {
	_, err := domain.ParseDate(s)
	return err
}

func validateRating(s string) error {
	_, err := domain.ParseRating(s)
	return err
}

// logFormInput holds the string-typed values a huh form edits.
type logFormInput struct {
	Task     string
	Date     string
	Done     bool
	Rating   string
	Backfill bool
}

// newLogForm builds the interactive "Go Live" form.
func newLogForm(in *logFormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What did you work on?").
				Value(&in.Task).
				Validate(validateTask),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&in.Date).
				Validate(validateDate),
			huh.NewConfirm().
				Title("Completed?").
				Affirmative("Done").
				Negative("Missed").
				Value(&in.Done),
			huh.NewInput().
				Title("Rating (0-10)").
				Placeholder("5").
				Value(&in.Rating).
				Validate(validateRating),
			huh.NewConfirm().
				Title("Unlock backfill mode?").
				Description("Required to log a day other than today.").
				Value(&in.Backfill),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}

// entry converts the form values into a validated entry.
func (in logFormInput) entry() (domain.TaskLogEntry, error) {
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	rating, err := domain.ParseRating(in.Rating)
	if err != nil {
		return domain.TaskLogEntry{}, err
	}
	return domain.NewEntry(date, in.Task, in.Done, rating)
}

func newLogFormInput(today time.Time, done bool, rating int, backfill bool) logFormInput {
	return logFormInput{
		Date:     domain.FormatDate(today),
		Done:     done,
		Rating:   strconv.Itoa(rating),
		Backfill: backfill,
	}
}

// confirmForm returns a yes/no form; the answer defaults to no.
func confirmForm(title, description string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}

func parseIndexArg(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be an integer", s)
	}
	return i, nil
}
