package main

import (
	"github.com/spf13/pflag"

	"github.com/hfarooq/murajaah/internal/hifz"
)

// dateValue is a YYYY-MM-DD flag defaulting to today.
type dateValue struct {
	date hifz.Date
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue() *dateValue {
	return &dateValue{date: hifz.Today()}
}

func (d *dateValue) String() string {
	return d.date.Key()
}

func (d *dateValue) Set(val string) error {
	parsed, err := hifz.ParseDate(val)
	if err != nil {
		return err
	}
	d.date = parsed
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
