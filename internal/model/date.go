package model

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component. The zero value is not a
// meaningful date; optional dates are carried as *Date.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in local time.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }

// AddDays returns the date n calendar days later, handling month and year
// rollover.
func (d Date) AddDays(n int) Date {
	next := d.t.AddDate(0, 0, n)
	return NewDate(next.Year(), next.Month(), next.Day())
}

// AddMonths advances the month by n, keeping the day-of-month. A day that
// does not exist in the target month is clamped to that month's last day
// rather than rolling over into the following month.
func (d Date) AddMonths(n int) Date {
	months := int(d.t.Month()) - 1 + n
	year := d.t.Year() + months/12
	month := time.Month(months%12 + 1)
	day := d.t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
