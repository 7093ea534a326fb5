package hifz

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// completionRow is one cycle-id entry of one day's completion record.
type completionRow struct {
	ID        int64     `db:"id"`
	Day       string    `db:"day"`
	CycleID   string    `db:"cycle_id"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// postponementRow mirrors PostponedCycle in the postponements table.
type postponementRow struct {
	ID                int64     `db:"id"`
	CycleType         string    `db:"cycle_type"`
	Title             string    `db:"title"`
	Content           string    `db:"content"`
	OriginalDate      time.Time `db:"original_date"`
	TargetDate        time.Time `db:"target_date"`
	PostponedFromDate time.Time `db:"postponed_from_date"`
	CreatedAt         time.Time `db:"created_at"`
}

// DBStore implements Store with the completion log and postponement
// records in MySQL. Memorization state and cadence settings remain in
// the yaml file store; those documents are user-edited files.
type DBStore struct {
	*FileStore
	db *sqlx.DB
}

var _ Store = (*DBStore)(nil)

// NewDBStore wraps a file store with MySQL-backed completion and
// postponement documents.
func NewDBStore(files *FileStore, db *sqlx.DB) *DBStore {
	return &DBStore{FileStore: files, db: db}
}

// LoadCompletionLog reads every completion row into a date-keyed log.
func (s *DBStore) LoadCompletionLog(ctx context.Context) (CompletionLog, error) {
	var rows []completionRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM review_completions ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_completions) > %w", err)
	}

	log := CompletionLog{}
	for _, row := range rows {
		day, ok := log[row.Day]
		if !ok {
			day = map[string]bool{}
			log[row.Day] = day
		}
		day[row.CycleID] = row.Completed
	}
	return log, nil
}

// SaveCompletionLog replaces the persisted log with the given snapshot.
// The store contract is whole-document read-modify-write, so the table
// is rewritten inside one transaction.
func (s *DBStore) SaveCompletionLog(ctx context.Context, log CompletionLog) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM review_completions"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete review_completions) > %w", err)
	}
	for day, cycles := range log {
		for cycleID, completed := range cycles {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO review_completions (day, cycle_id, completed) VALUES (?, ?, ?)",
				day, cycleID, completed); err != nil {
				return fmt.Errorf("tx.ExecContext(insert review_completion) > %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// LoadPostponements reads all postponement records.
func (s *DBStore) LoadPostponements(ctx context.Context) ([]PostponedCycle, error) {
	var rows []postponementRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM postponements ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(postponements) > %w", err)
	}

	records := make([]PostponedCycle, 0, len(rows))
	for _, row := range rows {
		records = append(records, PostponedCycle{
			CycleType:         row.CycleType,
			Title:             row.Title,
			Content:           row.Content,
			OriginalDate:      NewDate(row.OriginalDate),
			TargetDate:        NewDate(row.TargetDate),
			PostponedFromDate: NewDate(row.PostponedFromDate),
		})
	}
	return records, nil
}

// SavePostponements replaces the persisted postponement records.
func (s *DBStore) SavePostponements(ctx context.Context, records []PostponedCycle) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM postponements"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete postponements) > %w", err)
	}
	for _, record := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO postponements (cycle_type, title, content, original_date, target_date, postponed_from_date)
			VALUES (?, ?, ?, ?, ?, ?)`,
			record.CycleType, record.Title, record.Content,
			record.OriginalDate.Time, record.TargetDate.Time, record.PostponedFromDate.Time); err != nil {
			return fmt.Errorf("tx.ExecContext(insert postponement) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
