package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hfarooq/murajaah/internal/hifz"
)

// Mirror replicates postponement actions to a remote store. A failure
// is logged and never rolls back the local write.
type Mirror interface {
	ReplicatePostpone(ctx context.Context, record hifz.PostponedCycle) error
	ReplicateUnpostpone(ctx context.Context, record hifz.PostponedCycle) error
}

// Engine is the consumer-facing entry point. It owns no state of its
// own: every operation reads the latest persisted snapshot from the
// store, derives, and (for mutations) writes whole documents back.
type Engine struct {
	store  hifz.Store
	mirror Mirror
}

// NewEngine creates an engine over a store. mirror may be nil.
func NewEngine(store hifz.Store, mirror Mirror) *Engine {
	return &Engine{store: store, mirror: mirror}
}

func (e *Engine) snapshot(ctx context.Context) (Snapshot, error) {
	units, err := e.store.LoadMemorization(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store.LoadMemorization() > %w", err)
	}
	settings, err := e.store.LoadSettings(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store.LoadSettings() > %w", err)
	}
	log, err := e.store.LoadCompletionLog(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store.LoadCompletionLog() > %w", err)
	}
	postponements, err := e.store.LoadPostponements(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store.LoadPostponements() > %w", err)
	}
	return Snapshot{
		Units:         units,
		Settings:      settings,
		Log:           log,
		Postponements: postponements,
	}, nil
}

// GenerateDailyCycles derives the cycle list for a date from the latest
// persisted state.
func (e *Engine) GenerateDailyCycles(ctx context.Context, date hifz.Date) ([]Cycle, error) {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Generate(snap, date), nil
}

// DaySchedule is one row of a forward-looking preview.
type DaySchedule struct {
	Date   hifz.Date
	Cycles []Cycle
}

// Schedule builds an N-day preview starting at from. Future dates have
// no completion records, so they come out all-fresh. The snapshot is
// loaded once; derivation per day is pure.
func (e *Engine) Schedule(ctx context.Context, from hifz.Date, days int) ([]DaySchedule, error) {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	schedule := make([]DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDays(i)
		schedule = append(schedule, DaySchedule{Date: date, Cycles: Generate(snap, date)})
	}
	return schedule, nil
}

// ToggleCompletion flips a displayed cycle's completed flag and writes
// the whole displayed day map back, so the record always reflects what
// was scheduled. An unknown id is a silent no-op.
func (e *Engine) ToggleCompletion(ctx context.Context, date hifz.Date, cycleID string) error {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	cycles := Generate(snap, date)

	found := false
	dayMap := make(map[string]bool, len(cycles))
	for _, cycle := range cycles {
		completed := cycle.Completed
		if cycle.ID == cycleID {
			completed = !completed
			found = true
		}
		dayMap[cycle.ID] = completed
	}
	if !found {
		slog.Default().Debug("ignoring completion toggle for unknown cycle",
			slog.String("cycleID", cycleID),
			slog.String("date", date.Key()),
		)
		return nil
	}

	snap.Log.SetDay(date, dayMap)
	if err := e.store.SaveCompletionLog(ctx, snap.Log); err != nil {
		return fmt.Errorf("store.SaveCompletionLog() > %w", err)
	}
	return nil
}

// Postpone defers a displayed cycle to the next day. Completed or
// already-postponed cycles are silent no-ops.
func (e *Engine) Postpone(ctx context.Context, date hifz.Date, cycleID string) error {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	cycles := Generate(snap, date)

	cycle := findCycle(cycles, cycleID)
	if cycle == nil || cycle.Completed || cycle.IsPostponed {
		return nil
	}

	record := hifz.PostponedCycle{
		CycleType:         string(cycle.Type),
		Title:             cycle.Title,
		Content:           cycle.Content,
		OriginalDate:      cycle.OriginDate,
		TargetDate:        date.AddDays(1),
		PostponedFromDate: date,
	}
	snap.Postponements = append(snap.Postponements, record)
	if err := e.store.SavePostponements(ctx, snap.Postponements); err != nil {
		return fmt.Errorf("store.SavePostponements() > %w", err)
	}

	// The day's map is written with the cycle still incomplete.
	dayMap := make(map[string]bool, len(cycles))
	for _, c := range cycles {
		dayMap[c.ID] = c.Completed
	}
	snap.Log.SetDay(date, dayMap)
	if err := e.store.SaveCompletionLog(ctx, snap.Log); err != nil {
		return fmt.Errorf("store.SaveCompletionLog() > %w", err)
	}

	if e.mirror != nil {
		if err := e.mirror.ReplicatePostpone(ctx, record); err != nil {
			slog.Default().Warn("failed to replicate postponement to remote mirror",
				slog.String("cycleType", record.CycleType),
				slog.String("originalDate", record.OriginalDate.Key()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

// Unpostpone reverses a postponement. The record is matched by type,
// original date and content rather than by id, since it predates the
// postponed-variant id. Non-postponed cycles are silent no-ops.
func (e *Engine) Unpostpone(ctx context.Context, date hifz.Date, cycleID string) error {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return err
	}
	cycles := Generate(snap, date)

	cycle := findCycle(cycles, cycleID)
	if cycle == nil || !cycle.IsPostponed {
		return nil
	}

	// Deleting the record is the whole reversal: the next generation
	// derives the cycle without the postponed flags or title suffix.
	var removed *hifz.PostponedCycle
	remaining := make([]hifz.PostponedCycle, 0, len(snap.Postponements))
	for _, record := range snap.Postponements {
		if removed == nil && record.Matches(string(cycle.Type), cycle.OriginDate, cycle.Content) {
			r := record
			removed = &r
			continue
		}
		remaining = append(remaining, record)
	}
	if removed == nil {
		return nil
	}

	if err := e.store.SavePostponements(ctx, remaining); err != nil {
		return fmt.Errorf("store.SavePostponements() > %w", err)
	}

	if e.mirror != nil {
		if err := e.mirror.ReplicateUnpostpone(ctx, *removed); err != nil {
			slog.Default().Warn("failed to replicate un-postponement to remote mirror",
				slog.String("cycleType", removed.CycleType),
				slog.String("originalDate", removed.OriginalDate.Key()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

// Streak computes the consecutive-full-completion count ending today.
func (e *Engine) Streak(ctx context.Context, today hifz.Date) (int, error) {
	log, err := e.store.LoadCompletionLog(ctx)
	if err != nil {
		return 0, fmt.Errorf("store.LoadCompletionLog() > %w", err)
	}
	return ComputeStreak(log, today), nil
}

func findCycle(cycles []Cycle, cycleID string) *Cycle {
	for i := range cycles {
		if cycles[i].ID == cycleID {
			return &cycles[i]
		}
	}
	return nil
}
