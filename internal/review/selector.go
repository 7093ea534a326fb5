package review

import (
	"fmt"
	"strings"

	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/quran"
)

// descriptorSeparator joins the selected unit descriptors into the
// cycle content string.
const descriptorSeparator = ", "

// Descriptors renders the ordered list of memorizable unit descriptors
// the rotation walks over. A fully memorized Juz contributes one
// descriptor; a partially memorized Juz contributes one descriptor
// naming its memorized Surahs. Input order is preserved. Ineligible
// units contribute nothing.
func Descriptors(units []hifz.MemorizationUnit) []string {
	var descriptors []string
	for _, unit := range units {
		if !unit.Eligible() {
			continue
		}
		if unit.IsFullyMemorized {
			descriptors = append(descriptors, fullJuzDescriptor(unit))
			continue
		}
		descriptors = append(descriptors, partialJuzDescriptor(unit))
	}
	return descriptors
}

func fullJuzDescriptor(unit hifz.MemorizationUnit) string {
	start, end := unit.StartPage, unit.EndPage
	if !unit.HasPageBounds() {
		info, ok := quran.Juz(unit.JuzNumber)
		if !ok {
			return fmt.Sprintf("Juz %d", unit.JuzNumber)
		}
		if info.StartPage > 0 {
			start, end = info.StartPage, info.EndPage
		} else {
			return fmt.Sprintf("Juz %d (%s-%s)", unit.JuzNumber, info.First, info.Last)
		}
	}
	return fmt.Sprintf("Juz %d (pages %d-%d)", unit.JuzNumber, start, end)
}

func partialJuzDescriptor(unit hifz.MemorizationUnit) string {
	names := make([]string, 0, len(unit.MemorizedSurahIDs))
	for _, id := range unit.MemorizedSurahIDs {
		name := quran.SurahName(id)
		if name == "" {
			name = fmt.Sprintf("Surah %d", id)
		} else {
			name = "Surah " + name
		}
		names = append(names, name)
	}
	return fmt.Sprintf("Juz %d (%s)", unit.JuzNumber, strings.Join(names, ", "))
}

// SelectUnits computes the rotation content for a date: the position in
// the descriptor list advances by one per day since the rotation start
// date, and count descriptors are taken from there, wrapping around.
// Pure in all arguments, so repeated calls for the same day agree.
func SelectUnits(units []hifz.MemorizationUnit, count int, date, startDate hifz.Date) string {
	descriptors := Descriptors(units)
	if len(descriptors) == 0 {
		return ""
	}

	daysSinceStart := date.DaysSince(startDate)
	if daysSinceStart < 0 {
		daysSinceStart = 0
	}
	cycleIndex := daysSinceStart % len(descriptors)

	if count > len(descriptors) {
		count = len(descriptors)
	}
	selected := make([]string, 0, count)
	for i := 0; i < count; i++ {
		selected = append(selected, descriptors[(cycleIndex+i)%len(descriptors)])
	}
	return strings.Join(selected, descriptorSeparator)
}

// SelectRecent computes the recent-review window: the last pageCount
// pages of the current Juz. Rotation and dates play no part. Returns
// an empty string when no unit with page bounds is available.
func SelectRecent(units []hifz.MemorizationUnit, currentJuz, pageCount int) string {
	unit := findRecentUnit(units, currentJuz)
	if unit == nil {
		return ""
	}

	start := unit.EndPage - pageCount + 1
	if start < unit.StartPage {
		start = unit.StartPage
	}
	return fmt.Sprintf("Juz %d - Pages (%d-%d)", unit.JuzNumber, start, unit.EndPage)
}

func findRecentUnit(units []hifz.MemorizationUnit, currentJuz int) *hifz.MemorizationUnit {
	for i := range units {
		if units[i].JuzNumber == currentJuz && units[i].HasPageBounds() {
			return &units[i]
		}
	}
	// The current Juz is absent or missing bounds. Fall back to the
	// first fully memorized unit that has bounds.
	for i := range units {
		if units[i].IsFullyMemorized && units[i].HasPageBounds() {
			return &units[i]
		}
	}
	return nil
}
