package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/review"
)

func newSessionFixture(t *testing.T) (*review.Engine, *hifz.FileStore) {
	t.Helper()
	store, err := hifz.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	units := []hifz.MemorizationUnit{
		{JuzNumber: 1, IsFullyMemorized: true, StartPage: 1, EndPage: 21},
	}
	require.NoError(t, store.SaveMemorization(ctx, units))
	require.NoError(t, store.SaveSettings(ctx, hifz.CadenceSettings{
		RMVPages:           7,
		OMVUnitCount:       1,
		ListeningUnitCount: 1,
		ReadingUnitCount:   1,
		CurrentJuz:         1,
		RotationStartDate:  hifz.MustParseDate("2024-01-01"),
	}))

	return review.NewEngine(store, nil), store
}

func TestReviewSession_CompleteAll(t *testing.T) {
	color.NoColor = true
	engine, store := newSessionFixture(t)
	today := hifz.MustParseDate("2024-03-10")

	var out bytes.Buffer
	session := NewReviewSession(engine, strings.NewReader("y\ny\ny\ny\n"), &out)
	require.NoError(t, session.Run(context.Background(), today))

	output := out.String()
	assert.Contains(t, output, "Recent Memorization Review")
	assert.Contains(t, output, "Reading Cycle")
	assert.Contains(t, output, "Completed.")

	log, err := store.LoadCompletionLog(context.Background())
	require.NoError(t, err)
	dayMap := log.Day(today)
	require.Len(t, dayMap, 4)
	for id, completed := range dayMap {
		assert.True(t, completed, id)
	}
}

func TestReviewSession_PostponeAndQuit(t *testing.T) {
	color.NoColor = true
	engine, store := newSessionFixture(t)
	today := hifz.MustParseDate("2024-03-10")

	var out bytes.Buffer
	session := NewReviewSession(engine, strings.NewReader("p\nq\n"), &out)
	require.NoError(t, session.Run(context.Background(), today))

	assert.Contains(t, out.String(), "Postponed to tomorrow.")

	records, err := store.LoadPostponements(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rmv", records[0].CycleType)
	assert.True(t, records[0].TargetDate.Equal(today.AddDays(1)))
}

func TestReviewSession_SkipLeavesIncomplete(t *testing.T) {
	color.NoColor = true
	engine, store := newSessionFixture(t)
	today := hifz.MustParseDate("2024-03-10")

	var out bytes.Buffer
	session := NewReviewSession(engine, strings.NewReader("s\ns\ns\ns\n"), &out)
	require.NoError(t, session.Run(context.Background(), today))

	assert.Contains(t, out.String(), "Skipped.")

	log, err := store.LoadCompletionLog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, log.Day(today))
}

func TestReviewSession_EOFEndsSession(t *testing.T) {
	color.NoColor = true
	engine, _ := newSessionFixture(t)

	var out bytes.Buffer
	session := NewReviewSession(engine, strings.NewReader(""), &out)
	require.NoError(t, session.Run(context.Background(), hifz.MustParseDate("2024-03-10")))
}

func TestReviewSession_NothingPending(t *testing.T) {
	color.NoColor = true
	engine, _ := newSessionFixture(t)
	ctx := context.Background()
	today := hifz.MustParseDate("2024-03-10")

	for _, cycleType := range review.CycleTypes {
		id := review.CycleID{Type: cycleType, OriginDate: today}.String()
		require.NoError(t, engine.ToggleCompletion(ctx, today, id))
	}

	var out bytes.Buffer
	session := NewReviewSession(engine, strings.NewReader(""), &out)
	require.NoError(t, session.Run(ctx, today))
	assert.Contains(t, out.String(), "All review cycles are done for today!")
}
