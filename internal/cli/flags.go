package cli

import (
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/exchange"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*dateFlag)(nil)
	_ pflag.Value = (*formatFlag)(nil)
)

// dateFlag parses YYYY-MM-DD at flag time so bad dates fail before any
// command runs.
type dateFlag struct {
	t   time.Time
	set bool
}

func (f *dateFlag) String() string {
	if !f.set {
		return ""
	}
	return domain.FormatDate(f.t)
}

func (f *dateFlag) Set(s string) error {
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	f.t, f.set = t, true
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// or returns the parsed date, or fallback when the flag was not given.
func (f *dateFlag) or(fallback time.Time) time.Time {
	if f.set {
		return f.t
	}
	return fallback
}

type formatFlag struct {
	format exchange.Format
}

func (f *formatFlag) String() string { return string(f.format) }

func (f *formatFlag) Set(s string) error {
	format, err := exchange.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatFlag) Type() string { return "format" }
