package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfarooq/murajaah/internal/hifz"
)

// testSnapshot builds a snapshot with two fully memorized Juz and a
// rotation anchored at 2024-01-01, the smallest state exercising every
// cycle type.
func testSnapshot() Snapshot {
	return Snapshot{
		Units: []hifz.MemorizationUnit{
			fullJuz(1, 1, 21),
			fullJuz(2, 22, 41),
		},
		Settings: hifz.CadenceSettings{
			RMVPages:           7,
			OMVUnitCount:       1,
			ListeningUnitCount: 1,
			ReadingUnitCount:   1,
			CurrentJuz:         2,
			RotationStartDate:  hifz.MustParseDate("2024-01-01"),
		},
		Log: hifz.CompletionLog{},
	}
}

func cycleOfType(t *testing.T, cycles []Cycle, cycleType CycleType) Cycle {
	t.Helper()
	for _, c := range cycles {
		if c.Type == cycleType {
			return c
		}
	}
	t.Fatalf("no cycle of type %s in %v", cycleType, cycles)
	return Cycle{}
}

func TestGenerate_FreshDay(t *testing.T) {
	snap := testSnapshot()
	date := hifz.MustParseDate("2024-03-10")

	cycles := Generate(snap, date)
	require.Len(t, cycles, 4)

	for i, cycleType := range CycleTypes {
		assert.Equal(t, cycleType, cycles[i].Type)
		assert.Equal(t, string(cycleType)+"-2024-03-10", cycles[i].ID)
		assert.True(t, cycles[i].OriginDate.Equal(date))
		assert.False(t, cycles[i].Completed)
		assert.False(t, cycles[i].IsOverdue)
		assert.False(t, cycles[i].IsPostponed)
	}

	rmv := cycleOfType(t, cycles, CycleTypeRMV)
	assert.Equal(t, "Recent Memorization Review", rmv.Title)
	assert.Equal(t, "Juz 2 - Pages (35-41)", rmv.Content)

	omv := cycleOfType(t, cycles, CycleTypeOMV)
	assert.Equal(t, "Old Memorization Review", omv.Title)
	assert.NotEmpty(t, omv.Content)
}

func TestGenerate_NoUnits(t *testing.T) {
	snap := Snapshot{Settings: hifz.DefaultCadenceSettings(hifz.MustParseDate("2024-01-01"))}
	assert.Nil(t, Generate(snap, hifz.MustParseDate("2024-03-10")))
}

func TestGenerate_OverdueSuppressesFresh(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"rmv-2024-03-10": false},
	}

	cycles := Generate(snap, hifz.MustParseDate("2024-03-11"))
	require.Len(t, cycles, 1)

	overdue := cycles[0]
	assert.Equal(t, "rmv-2024-03-10-overdue", overdue.ID)
	assert.Equal(t, CycleTypeRMV, overdue.Type)
	assert.True(t, overdue.IsOverdue)
	assert.True(t, overdue.OriginDate.Equal(hifz.MustParseDate("2024-03-10")))
	assert.False(t, overdue.Completed)
}

func TestGenerate_OverdueRepeatsUntilResolved(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"rmv-2024-03-10": false},
	}

	// The same overdue cycle keeps surfacing day after day while the
	// incomplete record stays within the scan window.
	for offset := 1; offset <= 7; offset++ {
		date := hifz.MustParseDate("2024-03-10").AddDays(offset)
		cycles := Generate(snap, date)
		require.Len(t, cycles, 1, date.Key())
		assert.Equal(t, "rmv-2024-03-10-overdue", cycles[0].ID)
	}

	// Beyond the window the record ages out and generation resumes.
	cycles := Generate(snap, hifz.MustParseDate("2024-03-18"))
	require.Len(t, cycles, 4)
	for _, c := range cycles {
		assert.False(t, c.IsOverdue)
	}
}

func TestGenerate_CompletingOverdueResolvesAcrossDays(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"rmv-2024-03-10": false},
		"2024-03-12": {"rmv-2024-03-10-overdue": true},
	}

	// The completion is recorded under the viewing date with the overdue
	// id, but it resolves the origin-date entry for the whole window.
	cycles := Generate(snap, hifz.MustParseDate("2024-03-13"))
	require.Len(t, cycles, 4)
	for _, c := range cycles {
		assert.False(t, c.IsOverdue, c.ID)
	}
}

func TestGenerate_OverdueKeepsOriginAcrossDays(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"omv-2024-03-10": false},
		"2024-03-11": {"omv-2024-03-10-overdue": false},
	}

	// The pending entry in the 03-11 record is keyed by its true origin;
	// the regenerated cycle keeps that id and derives content against
	// the origin's rotation day, not against 03-11.
	cycles := Generate(snap, hifz.MustParseDate("2024-03-12"))
	require.Len(t, cycles, 1)
	overdue := cycles[0]
	assert.Equal(t, "omv-2024-03-10-overdue", overdue.ID)
	assert.True(t, overdue.OriginDate.Equal(hifz.MustParseDate("2024-03-10")))
	assert.Equal(t, contentFor(snap, CycleTypeOMV, hifz.MustParseDate("2024-03-10")), overdue.Content)
}

func TestGenerate_MostRecentOverdueDayWinsPerType(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-08": {"rmv-2024-03-08": false, "omv-2024-03-08": false},
		"2024-03-10": {"rmv-2024-03-10": false},
	}

	cycles := Generate(snap, hifz.MustParseDate("2024-03-11"))
	require.Len(t, cycles, 2)

	rmv := cycleOfType(t, cycles, CycleTypeRMV)
	assert.Equal(t, "rmv-2024-03-10-overdue", rmv.ID)

	omv := cycleOfType(t, cycles, CycleTypeOMV)
	assert.Equal(t, "omv-2024-03-08-overdue", omv.ID)
}

func TestGenerate_OverdueOrderedByType(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {
			"reading-2024-03-10":   false,
			"rmv-2024-03-10":       false,
			"omv-2024-03-10":       false,
			"listening-2024-03-10": false,
		},
	}

	cycles := Generate(snap, hifz.MustParseDate("2024-03-11"))
	require.Len(t, cycles, 4)
	for i, cycleType := range CycleTypes {
		assert.Equal(t, cycleType, cycles[i].Type)
	}
}

func TestCarryOverScan(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {
			"rmv-2024-03-10": true,
			"omv-2024-03-10": false,
		},
	}

	cycles := carryOverScan(snap, hifz.MustParseDate("2024-03-11"), map[CycleID]bool{})
	require.Len(t, cycles, 1)
	assert.Equal(t, "omv-2024-03-10-carryover", cycles[0].ID)
	assert.Equal(t, CycleTypeOMV, cycles[0].Type)
	assert.True(t, cycles[0].OriginDate.Equal(hifz.MustParseDate("2024-03-10")))
	assert.False(t, cycles[0].IsOverdue)
}

func TestCarryOverScan_CleanPreviousDay(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"rmv-2024-03-10": true, "omv-2024-03-10": true},
	}

	assert.Empty(t, carryOverScan(snap, hifz.MustParseDate("2024-03-11"), map[CycleID]bool{}))
	assert.Empty(t, carryOverScan(snap, hifz.MustParseDate("2024-03-20"), map[CycleID]bool{}))
}

func TestGenerate_PostponedInjection(t *testing.T) {
	snap := testSnapshot()
	snap.Postponements = []hifz.PostponedCycle{
		{
			CycleType:         "omv",
			Title:             "Old Memorization Review",
			Content:           "Juz 1 (pages 1-21)",
			OriginalDate:      hifz.MustParseDate("2024-03-10"),
			TargetDate:        hifz.MustParseDate("2024-03-11"),
			PostponedFromDate: hifz.MustParseDate("2024-03-10"),
		},
	}

	cycles := Generate(snap, hifz.MustParseDate("2024-03-11"))
	require.Len(t, cycles, 5)

	// Fresh cycles first, the injected cycle appended after them. The
	// track appears twice: today's fresh OMV plus yesterday's deferred
	// one.
	injected := cycles[4]
	assert.Equal(t, "omv-2024-03-10", injected.ID)
	assert.Equal(t, CycleTypeOMV, injected.Type)
	assert.Equal(t, "Juz 1 (pages 1-21)", injected.Content)
	assert.True(t, injected.IsPostponed)
	require.NotNil(t, injected.PostponedTo)
	assert.True(t, injected.PostponedTo.Equal(hifz.MustParseDate("2024-03-11")))
}

func TestGenerate_PostponedMarkOnSourceDay(t *testing.T) {
	snap := testSnapshot()
	date := hifz.MustParseDate("2024-03-10")
	omvContent := contentFor(snap, CycleTypeOMV, date)
	require.NotEmpty(t, omvContent)

	snap.Postponements = []hifz.PostponedCycle{
		{
			CycleType:         "omv",
			Title:             "Old Memorization Review",
			Content:           omvContent,
			OriginalDate:      date,
			TargetDate:        date.AddDays(1),
			PostponedFromDate: date,
		},
	}

	cycles := Generate(snap, date)
	omv := cycleOfType(t, cycles, CycleTypeOMV)
	assert.True(t, omv.IsPostponed)
	assert.Equal(t, "Old Memorization Review - Postponed!", omv.Title)
	require.NotNil(t, omv.PostponedTo)
	assert.True(t, omv.PostponedTo.Equal(date.AddDays(1)))
}

func TestGenerate_PostponedEntryDoesNotTurnOverdue(t *testing.T) {
	snap := testSnapshot()
	date := hifz.MustParseDate("2024-03-10")
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {"omv-2024-03-10": false},
	}
	snap.Postponements = []hifz.PostponedCycle{
		{
			CycleType:         "omv",
			Title:             "Old Memorization Review",
			Content:           contentFor(snap, CycleTypeOMV, date),
			OriginalDate:      date,
			TargetDate:        date.AddDays(1),
			PostponedFromDate: date,
		},
	}

	// The incomplete entry is covered by a live postponement record, so
	// the next day gets its fresh cycles plus the injected one instead
	// of an overdue scan hit.
	cycles := Generate(snap, date.AddDays(1))
	require.Len(t, cycles, 5)
	for _, c := range cycles {
		assert.False(t, c.IsOverdue, c.ID)
	}
}

func TestGenerate_CompletionMerge(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {
			"rmv-2024-03-10":       true,
			"omv-2024-03-10":       false,
			"listening-2024-03-10": true,
			"reading-2024-03-10":   false,
		},
	}

	cycles := Generate(snap, hifz.MustParseDate("2024-03-10"))
	require.Len(t, cycles, 4)
	assert.True(t, cycleOfType(t, cycles, CycleTypeRMV).Completed)
	assert.False(t, cycleOfType(t, cycles, CycleTypeOMV).Completed)
	assert.True(t, cycleOfType(t, cycles, CycleTypeListening).Completed)
	assert.False(t, cycleOfType(t, cycles, CycleTypeReading).Completed)
}

func TestGenerate_Deterministic(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-08": {"reading-2024-03-08": false},
		"2024-03-10": {"rmv-2024-03-10": true, "omv-2024-03-10": false},
	}
	date := hifz.MustParseDate("2024-03-11")

	first := Generate(snap, date)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate(snap, date))
	}
}

func TestGenerate_UnparseableLogEntriesIgnored(t *testing.T) {
	snap := testSnapshot()
	snap.Log = hifz.CompletionLog{
		"2024-03-10": {
			"not-a-cycle":          false,
			"rmv-2024-03-10":       true,
			"omv-2024-03-10":       true,
			"listening-2024-03-10": true,
			"reading-2024-03-10":   true,
		},
	}

	// The junk entry neither triggers an overdue hit nor a carry-over.
	cycles := Generate(snap, hifz.MustParseDate("2024-03-11"))
	require.Len(t, cycles, 4)
	for _, c := range cycles {
		assert.False(t, c.IsOverdue)
	}
}
