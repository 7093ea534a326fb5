package hifz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store is the persistent key-value store behind the scheduler: four
// logical documents, each read in full and written in full. Generation
// re-reads through this interface on every call, so implementations
// must always return the latest persisted snapshot.
type Store interface {
	LoadMemorization(ctx context.Context) ([]MemorizationUnit, error)
	SaveMemorization(ctx context.Context, units []MemorizationUnit) error
	LoadSettings(ctx context.Context) (CadenceSettings, error)
	SaveSettings(ctx context.Context, settings CadenceSettings) error
	LoadCompletionLog(ctx context.Context) (CompletionLog, error)
	SaveCompletionLog(ctx context.Context, log CompletionLog) error
	LoadPostponements(ctx context.Context) ([]PostponedCycle, error)
	SavePostponements(ctx context.Context, records []PostponedCycle) error
}

const (
	memorizationFile  = "memorization.yml"
	settingsFile      = "settings.yml"
	completionsFile   = "completions.yml"
	postponementsFile = "postponements.yml"
)

// FileStore keeps each document as a yaml file under a data directory.
type FileStore struct {
	directory string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the data directory if needed and returns a store
// over it.
func NewFileStore(directory string) (*FileStore, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	return &FileStore{directory: directory}, nil
}

// LoadMemorization reads the memorization state document.
func (s *FileStore) LoadMemorization(_ context.Context) ([]MemorizationUnit, error) {
	var units []MemorizationUnit
	if err := s.load(memorizationFile, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// SaveMemorization writes the memorization state document.
func (s *FileStore) SaveMemorization(_ context.Context, units []MemorizationUnit) error {
	return s.save(memorizationFile, units)
}

// LoadSettings reads the cadence settings document. A missing or
// malformed document yields the defaults anchored at today.
func (s *FileStore) LoadSettings(_ context.Context) (CadenceSettings, error) {
	settings := DefaultCadenceSettings(Today())
	if err := s.load(settingsFile, &settings); err != nil {
		return CadenceSettings{}, err
	}
	if settings.RotationStartDate.IsZero() {
		settings.RotationStartDate = Today()
	}
	return settings.Normalize(), nil
}

// SaveSettings writes the cadence settings document.
func (s *FileStore) SaveSettings(_ context.Context, settings CadenceSettings) error {
	return s.save(settingsFile, settings)
}

// LoadCompletionLog reads the completion log document.
func (s *FileStore) LoadCompletionLog(_ context.Context) (CompletionLog, error) {
	log := CompletionLog{}
	if err := s.load(completionsFile, &log); err != nil {
		return nil, err
	}
	if log == nil {
		log = CompletionLog{}
	}
	return log, nil
}

// SaveCompletionLog writes the completion log document.
func (s *FileStore) SaveCompletionLog(_ context.Context, log CompletionLog) error {
	return s.save(completionsFile, log)
}

// LoadPostponements reads the postponement records document.
func (s *FileStore) LoadPostponements(_ context.Context) ([]PostponedCycle, error) {
	var records []PostponedCycle
	if err := s.load(postponementsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SavePostponements writes the postponement records document.
func (s *FileStore) SavePostponements(_ context.Context, records []PostponedCycle) error {
	return s.save(postponementsFile, records)
}

// load reads a whole document into out. A missing file leaves out at
// its zero value. A file that fails to parse is treated as empty with a
// warning; persisted state must never halt generation.
func (s *FileStore) load(name string, out interface{}) error {
	path := filepath.Join(s.directory, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		slog.Default().Warn("discarding malformed store document",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
	return nil
}

func (s *FileStore) save(name string, in interface{}) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(%s) > %w", name, err)
	}
	path := filepath.Join(s.directory, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
