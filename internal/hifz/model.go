// Package hifz holds the memorization data model and the persistent
// document stores the scheduler reads and writes.
package hifz

// MemorizationUnit records what is memorized within one Juz: either the
// whole Juz or a subset of its Surahs. Page bounds are carried for the
// Juz currently being memorized so the recent-review window can be cut
// from its tail.
type MemorizationUnit struct {
	JuzNumber         int   `yaml:"juz_number" db:"juz_number"`
	IsFullyMemorized  bool  `yaml:"is_fully_memorized" db:"is_fully_memorized"`
	MemorizedSurahIDs []int `yaml:"memorized_surah_ids,omitempty" db:"-"`
	DateMemorized     *Date `yaml:"date_memorized,omitempty" db:"-"`
	StartPage         int   `yaml:"start_page,omitempty" db:"start_page"`
	EndPage           int   `yaml:"end_page,omitempty" db:"end_page"`
}

// Eligible reports whether the unit can produce review content. A Juz
// with neither full memorization nor any memorized Surahs never enters
// rotation.
func (u MemorizationUnit) Eligible() bool {
	return u.IsFullyMemorized || len(u.MemorizedSurahIDs) > 0
}

// HasPageBounds reports whether both page bounds are set and ordered.
func (u MemorizationUnit) HasPageBounds() bool {
	return u.StartPage > 0 && u.EndPage >= u.StartPage
}

// CadenceSettings controls how much content each cycle type reviews per
// day and anchors the rotation. Mutated only by an explicit settings
// save.
type CadenceSettings struct {
	RMVPages           int  `yaml:"rmv_pages"`
	OMVUnitCount       int  `yaml:"omv_unit_count"`
	ListeningUnitCount int  `yaml:"listening_unit_count"`
	ReadingUnitCount   int  `yaml:"reading_unit_count"`
	CurrentJuz         int  `yaml:"current_juz"`
	RotationStartDate  Date `yaml:"rotation_start_date"`
}

// DefaultCadenceSettings returns the cadence used before the user saves
// their own. The rotation anchor is the given day.
func DefaultCadenceSettings(start Date) CadenceSettings {
	return CadenceSettings{
		RMVPages:           7,
		OMVUnitCount:       1,
		ListeningUnitCount: 1,
		ReadingUnitCount:   1,
		CurrentJuz:         1,
		RotationStartDate:  start,
	}
}

// Normalize clamps counts to the minimum of one so a malformed settings
// document degrades instead of producing empty cycles.
func (s CadenceSettings) Normalize() CadenceSettings {
	if s.RMVPages < 1 {
		s.RMVPages = 7
	}
	if s.OMVUnitCount < 1 {
		s.OMVUnitCount = 1
	}
	if s.ListeningUnitCount < 1 {
		s.ListeningUnitCount = 1
	}
	if s.ReadingUnitCount < 1 {
		s.ReadingUnitCount = 1
	}
	return s
}

// CompletionLog maps a day key (YYYY-MM-DD) to that day's cycle-id →
// completed map. One record per date, updated in place.
type CompletionLog map[string]map[string]bool

// Day returns the completion map recorded for a date, or nil when the
// date has no record.
func (l CompletionLog) Day(date Date) map[string]bool {
	if l == nil {
		return nil
	}
	return l[date.Key()]
}

// SetDay replaces the record for a date with the given map.
func (l CompletionLog) SetDay(date Date, m map[string]bool) {
	l[date.Key()] = m
}

// PostponedCycle records a cycle explicitly deferred by one day. It is
// created on postpone and deleted on un-postpone; consumed records are
// not garbage collected.
type PostponedCycle struct {
	CycleType         string `yaml:"cycle_type" db:"cycle_type"`
	Title             string `yaml:"title" db:"title"`
	Content           string `yaml:"content" db:"content"`
	OriginalDate      Date   `yaml:"original_date" db:"original_date"`
	TargetDate        Date   `yaml:"target_date" db:"target_date"`
	PostponedFromDate Date   `yaml:"postponed_from_date" db:"postponed_from_date"`
}

// Matches reports whether the record refers to the same logical cycle.
// Records predate the postponed-variant id, so matching is by type,
// original date and content rather than by id.
func (p PostponedCycle) Matches(cycleType string, originalDate Date, content string) bool {
	return p.CycleType == cycleType && p.OriginalDate.Equal(originalDate) && p.Content == content
}
