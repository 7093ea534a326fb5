// Package review implements the daily review cycle scheduling and
// rotation engine: which cycles are due on a date, whether they are
// fresh, carried over or overdue, postponement, and streaks.
package review

import (
	"fmt"
	"strings"

	"github.com/hfarooq/murajaah/internal/hifz"
)

// CycleType is one of the four daily review tracks.
type CycleType string

const (
	CycleTypeRMV       CycleType = "rmv"
	CycleTypeOMV       CycleType = "omv"
	CycleTypeListening CycleType = "listening"
	CycleTypeReading   CycleType = "reading"
)

// CycleTypes lists the tracks in the order cycles are generated and
// displayed.
var CycleTypes = []CycleType{CycleTypeRMV, CycleTypeOMV, CycleTypeListening, CycleTypeReading}

// Title returns the display title of a track.
func (t CycleType) Title() string {
	switch t {
	case CycleTypeRMV:
		return "Recent Memorization Review"
	case CycleTypeOMV:
		return "Old Memorization Review"
	case CycleTypeListening:
		return "Listening Cycle"
	case CycleTypeReading:
		return "Reading Cycle"
	}
	return string(t)
}

func (t CycleType) valid() bool {
	switch t {
	case CycleTypeRMV, CycleTypeOMV, CycleTypeListening, CycleTypeReading:
		return true
	}
	return false
}

// Variant distinguishes how a cycle reached today's list. Fresh and
// carry-over ids differ by suffix even when they represent the same
// logical track and date; completion entries are keyed by the displayed
// id, so the distinction must survive serialization.
type Variant string

const (
	VariantFresh     Variant = ""
	VariantOverdue   Variant = "overdue"
	VariantCarryOver Variant = "carryover"
)

// CycleID is the tagged form of a cycle identifier. String is the only
// serialization and ParseCycleID the only parser; nothing else may
// split ids.
type CycleID struct {
	Type       CycleType
	OriginDate hifz.Date
	Variant    Variant
}

func (id CycleID) String() string {
	s := fmt.Sprintf("%s-%s", id.Type, id.OriginDate.Key())
	if id.Variant != VariantFresh {
		s += "-" + string(id.Variant)
	}
	return s
}

// ParseCycleID reconstructs a tagged id from its string form.
func ParseCycleID(s string) (CycleID, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return CycleID{}, fmt.Errorf("malformed cycle id %q", s)
	}

	cycleType := CycleType(parts[0])
	if !cycleType.valid() {
		return CycleID{}, fmt.Errorf("unknown cycle type in id %q", s)
	}

	rest := parts[1]
	variant := VariantFresh
	for _, v := range []Variant{VariantOverdue, VariantCarryOver} {
		if strings.HasSuffix(rest, "-"+string(v)) {
			variant = v
			rest = strings.TrimSuffix(rest, "-"+string(v))
			break
		}
	}

	date, err := hifz.ParseDate(rest)
	if err != nil {
		return CycleID{}, fmt.Errorf("malformed date in cycle id %q > %w", s, err)
	}

	return CycleID{Type: cycleType, OriginDate: date, Variant: variant}, nil
}

// PostponedTitleSuffix is appended to a cycle's title when it is
// postponed. Appending is idempotent.
const PostponedTitleSuffix = " - Postponed!"

// Cycle is one review task in a day's output list.
type Cycle struct {
	ID          string
	Type        CycleType
	Title       string
	Content     string
	OriginDate  hifz.Date
	Completed   bool
	IsOverdue   bool
	IsPostponed bool
	PostponedTo *hifz.Date
}

// markPostponed flags the cycle and decorates its title. Safe to call
// on an already-postponed cycle.
func (c *Cycle) markPostponed(target hifz.Date) {
	c.IsPostponed = true
	c.PostponedTo = &target
	if !strings.HasSuffix(c.Title, PostponedTitleSuffix) {
		c.Title += PostponedTitleSuffix
	}
}
