package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is out of range")
)

// Period identifies a (year, month) snapshot period. Months are 1-indexed.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CurrentPeriod returns the period for the current wall-clock month in UTC.
func CurrentPeriod() Period {
	now := time.Now().UTC()
	return Period{Year: now.Year(), Month: int(now.Month())}
}

// Validate checks that the period is usable as a snapshot key.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year < 1900 || p.Year > 3000 {
		return ErrInvalidYear
	}
	return nil
}

// Previous returns the preceding period, wrapping January to December of the
// prior year.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Next returns the following period, wrapping December to January of the next
// year.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Year: p.Year + 1, Month: 1}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// AddMonths returns the period offset by the given number of months. Negative
// offsets walk backwards.
func (p Period) AddMonths(months int) Period {
	index := p.Index() + months
	year := index / 12
	month := index%12 + 1
	if index < 0 {
		// Go's integer division truncates toward zero; normalize
		year = (index - 11) / 12
		month = index - year*12 + 1
	}
	return Period{Year: year, Month: month}
}

// Index maps the period onto a monotonically increasing month counter, which
// makes range queries and ordering trivial on both Postgres and sqlite.
func (p Period) Index() int {
	return p.Year*12 + p.Month - 1
}

// Before reports whether p precedes other.
func (p Period) Before(other Period) bool {
	return p.Index() < other.Index()
}

// Label returns the short month name used by chart axes, e.g. "Jan".
func (p Period) Label() string {
	return time.Month(p.Month).String()[:3]
}

// String implements fmt.Stringer, e.g. "2026-09".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
