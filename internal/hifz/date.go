package hifz

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. All scheduling arithmetic works on whole
// days; the time-of-day and location of the underlying time.Time are
// normalized away.
type Date struct {
	time.Time
}

// NewDate truncates a time to its calendar day in UTC.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in the local timezone.
func Today() Date {
	return NewDate(time.Now())
}

// MustParseDate parses a YYYY-MM-DD string and panics on failure. It is
// meant for fixed dates in tests and examples.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("time.Parse(%q) > %w", s, err)
	}
	return NewDate(t), nil
}

// Key returns the YYYY-MM-DD form used to key completion records.
func (d Date) Key() string {
	return d.Format(dateLayout)
}

func (d Date) String() string {
	return d.Key()
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.AddDate(0, 0, n))
}

// DaysSince returns the number of whole days from other to d. Negative
// when other is later.
func (d Date) DaysSince(other Date) int {
	return int(d.Sub(other.Time).Hours() / 24)
}

// Equal reports whether both values denote the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Key(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. RFC3339 is
// accepted for records written by older builds.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse(dateLayout, value.Value)
	if err == nil {
		*d = NewDate(t)
		return nil
	}

	t, err = time.Parse(time.RFC3339, value.Value)
	if err == nil {
		*d = NewDate(t)
		return nil
	}

	return fmt.Errorf("unable to parse date %q: expected YYYY-MM-DD or RFC3339 format", value.Value)
}
