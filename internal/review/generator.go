package review

import (
	"log/slog"

	"github.com/hfarooq/murajaah/internal/hifz"
)

// overdueScanDays is how far back the overdue scan looks, strictly
// before the target date.
const overdueScanDays = 7

// Snapshot is the fully-loaded persisted state a generation call works
// over. Generation never mutates it.
type Snapshot struct {
	Units         []hifz.MemorizationUnit
	Settings      hifz.CadenceSettings
	Log           hifz.CompletionLog
	Postponements []hifz.PostponedCycle
}

// Generate derives the ordered cycle list for a date. It is a pure
// function of the snapshot and the date: overdue scan first, then
// carry-over, then fresh generation, then postponed injection, then the
// completion merge. Any overdue cycle suppresses carry-over and fresh
// generation entirely.
func Generate(snap Snapshot, date hifz.Date) []Cycle {
	if len(snap.Units) == 0 {
		return nil
	}
	snap.Settings = snap.Settings.Normalize()

	resolved := resolvedCycles(snap.Log, date)

	cycles := overdueScan(snap, date, resolved)
	if len(cycles) == 0 {
		cycles = carryOverScan(snap, date, resolved)
		for _, cycleType := range CycleTypes {
			if hasType(cycles, cycleType) {
				continue
			}
			if fresh := freshCycle(snap, cycleType, date); fresh != nil {
				cycles = append(cycles, *fresh)
			}
		}
		cycles = orderByType(cycles)
	}

	cycles = append(cycles, injectPostponed(snap, date)...)
	mergeCompletion(snap, date, cycles)
	return cycles
}

// resolvedCycles collects every (type, origin) pair that any record in
// the scan window marks complete under any id variant. An overdue cycle
// completed days after its origin date is recorded under the viewing
// date, so resolution requires this cross-day collection.
func resolvedCycles(log hifz.CompletionLog, date hifz.Date) map[CycleID]bool {
	resolved := map[CycleID]bool{}
	for offset := 0; offset <= overdueScanDays; offset++ {
		day := log.Day(date.AddDays(-offset))
		for rawID, completed := range day {
			if !completed {
				continue
			}
			id, err := ParseCycleID(rawID)
			if err != nil {
				slog.Default().Warn("skipping unparseable completion entry",
					slog.String("cycleID", rawID),
					slog.Any("error", err),
				)
				continue
			}
			resolved[CycleID{Type: id.Type, OriginDate: id.OriginDate}] = true
		}
	}
	return resolved
}

// pendingOrigin returns the origin date of an unresolved incomplete
// entry for the given track in a day's record. The origin comes from the
// entry's own id, not from the day the record was written under: a
// completion map written while viewing an overdue cycle holds entries
// keyed by their true origin. With several pending entries of one track
// the most recent origin wins. Entries matched by a live postponement
// record are excluded; those cycles surface through injection on their
// target date instead.
func pendingOrigin(snap Snapshot, dayMap map[string]bool, cycleType CycleType, resolved map[CycleID]bool) (hifz.Date, bool) {
	var origin hifz.Date
	found := false
	for rawID, completed := range dayMap {
		if completed {
			continue
		}
		id, err := ParseCycleID(rawID)
		if err != nil || id.Type != cycleType {
			continue
		}
		if resolved[CycleID{Type: id.Type, OriginDate: id.OriginDate}] {
			continue
		}
		if isPostponedEntry(snap, id) {
			continue
		}
		if !found || id.OriginDate.After(origin.Time) {
			origin = id.OriginDate
			found = true
		}
	}
	return origin, found
}

func isPostponedEntry(snap Snapshot, id CycleID) bool {
	for _, record := range snap.Postponements {
		if record.CycleType == string(id.Type) && record.OriginalDate.Equal(id.OriginDate) {
			return true
		}
	}
	return false
}

// overdueScan walks the days strictly before the target date, most
// recent first. The first unresolved entry found for a track wins; the
// generated cycle carries the entry's own origin date, so its id and
// content stay stable however many days later it is viewed. Content is
// re-derived against that origin so it matches what was due then.
func overdueScan(snap Snapshot, date hifz.Date, resolved map[CycleID]bool) []Cycle {
	found := map[CycleType]hifz.Date{}
	for offset := 1; offset <= overdueScanDays; offset++ {
		dayMap := snap.Log.Day(date.AddDays(-offset))
		if len(dayMap) == 0 {
			continue
		}
		for _, cycleType := range CycleTypes {
			if _, ok := found[cycleType]; ok {
				continue
			}
			if origin, ok := pendingOrigin(snap, dayMap, cycleType, resolved); ok {
				found[cycleType] = origin
			}
		}
	}

	var cycles []Cycle
	for _, cycleType := range CycleTypes {
		origin, ok := found[cycleType]
		if !ok {
			continue
		}
		content := contentFor(snap, cycleType, origin)
		if content == "" {
			continue
		}
		cycles = append(cycles, Cycle{
			ID:         CycleID{Type: cycleType, OriginDate: origin, Variant: VariantOverdue}.String(),
			Type:       cycleType,
			Title:      cycleType.Title(),
			Content:    content,
			OriginDate: origin,
			IsOverdue:  true,
		})
	}
	return cycles
}

// carryOverScan looks at exactly the previous day's record and
// re-derives each incomplete track against its entry's origin. Only
// reached when the overdue scan found nothing.
func carryOverScan(snap Snapshot, date hifz.Date, resolved map[CycleID]bool) []Cycle {
	dayMap := snap.Log.Day(date.AddDays(-1))
	if len(dayMap) == 0 {
		return nil
	}

	var cycles []Cycle
	for _, cycleType := range CycleTypes {
		origin, ok := pendingOrigin(snap, dayMap, cycleType, resolved)
		if !ok {
			continue
		}
		content := contentFor(snap, cycleType, origin)
		if content == "" {
			continue
		}
		cycles = append(cycles, Cycle{
			ID:         CycleID{Type: cycleType, OriginDate: origin, Variant: VariantCarryOver}.String(),
			Type:       cycleType,
			Title:      cycleType.Title(),
			Content:    content,
			OriginDate: origin,
		})
	}
	return cycles
}

// freshCycle builds a cycle for the target date itself, or nil when the
// selector has nothing for the track.
func freshCycle(snap Snapshot, cycleType CycleType, date hifz.Date) *Cycle {
	content := contentFor(snap, cycleType, date)
	if content == "" {
		return nil
	}
	return &Cycle{
		ID:         CycleID{Type: cycleType, OriginDate: date}.String(),
		Type:       cycleType,
		Title:      cycleType.Title(),
		Content:    content,
		OriginDate: date,
	}
}

// contentFor re-derives a track's content for a date using the current
// settings, including for historical dates. Overdue and carried cycles
// therefore always show the current best guess of what was due.
func contentFor(snap Snapshot, cycleType CycleType, date hifz.Date) string {
	settings := snap.Settings
	switch cycleType {
	case CycleTypeRMV:
		return SelectRecent(snap.Units, settings.CurrentJuz, settings.RMVPages)
	case CycleTypeOMV:
		return SelectUnits(snap.Units, settings.OMVUnitCount, date, settings.RotationStartDate)
	case CycleTypeListening:
		return SelectUnits(snap.Units, settings.ListeningUnitCount, date, settings.RotationStartDate)
	case CycleTypeReading:
		return SelectUnits(snap.Units, settings.ReadingUnitCount, date, settings.RotationStartDate)
	}
	return ""
}

// injectPostponed appends every record targeting the date. Injected
// cycles are additional: they are never deduplicated against the rest
// of the list, so a track can appear twice when both overdue and
// postponed.
func injectPostponed(snap Snapshot, date hifz.Date) []Cycle {
	var cycles []Cycle
	for _, record := range snap.Postponements {
		if !record.TargetDate.Equal(date) {
			continue
		}
		cycleType := CycleType(record.CycleType)
		if !cycleType.valid() {
			continue
		}
		target := record.TargetDate
		cycles = append(cycles, Cycle{
			ID:          CycleID{Type: cycleType, OriginDate: record.OriginalDate}.String(),
			Type:        cycleType,
			Title:       record.Title,
			Content:     record.Content,
			OriginDate:  record.OriginalDate,
			IsPostponed: true,
			PostponedTo: &target,
		})
	}
	return cycles
}

// mergeCompletion fills each assembled cycle's flags from the target
// date's record and from live postponement records. The postponed flag
// of injected cycles stays forced regardless of the log.
func mergeCompletion(snap Snapshot, date hifz.Date, cycles []Cycle) {
	dayMap := snap.Log.Day(date)
	for i := range cycles {
		if completed, ok := dayMap[cycles[i].ID]; ok {
			cycles[i].Completed = completed
		}
		if cycles[i].IsPostponed {
			continue
		}
		for _, record := range snap.Postponements {
			if record.Matches(string(cycles[i].Type), cycles[i].OriginDate, cycles[i].Content) &&
				record.PostponedFromDate.Equal(date) {
				cycles[i].markPostponed(record.TargetDate)
				break
			}
		}
	}
}

func hasType(cycles []Cycle, cycleType CycleType) bool {
	for _, c := range cycles {
		if c.Type == cycleType {
			return true
		}
	}
	return false
}

func orderByType(cycles []Cycle) []Cycle {
	ordered := make([]Cycle, 0, len(cycles))
	for _, cycleType := range CycleTypes {
		for _, c := range cycles {
			if c.Type == cycleType {
				ordered = append(ordered, c)
			}
		}
	}
	return ordered
}
