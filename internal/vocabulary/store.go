package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
)

// Store is the in-memory ordered entry list backed by a Repository.
type Store struct {
	repository Repository
	entries    []Entry
}

// NewStore creates an empty Store. Call Load to read persisted entries.
func NewStore(repository Repository) *Store {
	return &Store{
		repository: repository,
		entries:    []Entry{},
	}
}

// Load replaces the in-memory entries with the persisted ones.
func (s *Store) Load(ctx context.Context) error {
	entries, err := s.repository.Load(ctx)
	if err != nil {
		return fmt.Errorf("repository.Load > %w", err)
	}
	s.entries = entries
	slog.Default().Debug("loaded entries", slog.Int("count", len(entries)))
	return nil
}

// Save persists every entry.
func (s *Store) Save(ctx context.Context) error {
	if err := s.repository.Save(ctx, s.entries); err != nil {
		return fmt.Errorf("repository.Save > %w", err)
	}
	return nil
}

// Append adds entry at the end and persists the store.
// The in-memory list is left unchanged when persisting fails.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	s.entries = append(s.entries, entry)
	if err := s.Save(ctx); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at index.
func (s *Store) At(index int) (Entry, bool) {
	if index < 0 || index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[index], true
}

// Entries returns a copy of the entries in store order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
