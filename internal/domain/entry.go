package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	MinRating = 0
	MaxRating = 10
)

var (
	ErrInvalidRating  = errors.New("rating must be an integer between 0 and 10")
	ErrEmptyTask      = errors.New("task description is required")
	ErrInvalidDate    = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrBackdateLocked = errors.New("backdating is locked; pass --backfill to log another day")
)

// TaskLogEntry is one logged task for a calendar day.
type TaskLogEntry struct {
	Date      time.Time `validate:"required"`
	Task      string    `validate:"notblank"`
	Completed bool
	Rating    int `validate:"min=0,max=10"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// NewEntry builds a validated entry with its date normalized to UTC midnight.
func NewEntry(date time.Time, task string, completed bool, rating int) (TaskLogEntry, error) {
	e := TaskLogEntry{
		Date:      NormalizeDate(date),
		Task:      strings.TrimSpace(task),
		Completed: completed,
		Rating:    rating,
	}
	if err := e.Validate(); err != nil {
		return TaskLogEntry{}, err
	}
	return e, nil
}

// Validate checks the entry invariants and reports the first violation as
// one of the package sentinels.
func (e *TaskLogEntry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating entry: %w", err)
	}
	switch verrs[0].Field() {
	case "Rating":
		return fmt.Errorf("%w (got %d)", ErrInvalidRating, e.Rating)
	case "Task":
		return ErrEmptyTask
	case "Date":
		return ErrInvalidDate
	default:
		return fmt.Errorf("validating entry: %w", err)
	}
}

// Status returns "done" or "missed".
func (e TaskLogEntry) Status() string {
	if e.Completed {
		return "done"
	}
	return "missed"
}
