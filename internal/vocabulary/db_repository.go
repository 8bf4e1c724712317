package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=db_repository.go -destination=../mocks/vocabulary/mock_entry_repository.go -package=mock_vocabulary EntryRepository

// EntryRepository defines row-level operations on stored entries.
type EntryRepository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	FindByOriginal(ctx context.Context, original string) (*Entry, error)
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
}

// DBRepository implements Repository and EntryRepository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Load returns all entries in insertion order.
func (r *DBRepository) Load(ctx context.Context) ([]Entry, error) {
	return r.FindAll(ctx)
}

// FindAll returns all entries in insertion order.
func (r *DBRepository) FindAll(ctx context.Context) ([]Entry, error) {
	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT original, translation, transcription, examples FROM entries ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(entries) > %w", err)
	}
	return entries, nil
}

// FindByOriginal returns the first entry whose original matches case-insensitively, or nil.
func (r *DBRepository) FindByOriginal(ctx context.Context, original string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry,
		"SELECT original, translation, transcription, examples FROM entries WHERE LOWER(original) = LOWER(?) ORDER BY id LIMIT 1",
		original)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(entry) > %w", err)
	}
	return &entry, nil
}

// Create appends an entry.
func (r *DBRepository) Create(ctx context.Context, entry *Entry) error {
	if _, err := r.db.NamedExecContext(ctx, insertEntryQuery, entry); err != nil {
		return fmt.Errorf("db.NamedExecContext(insert entry) > %w", err)
	}
	return nil
}

// Update overwrites the hint fields of the entry with the same original.
func (r *DBRepository) Update(ctx context.Context, entry *Entry) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE entries SET translation = ?, transcription = ?, examples = ? WHERE LOWER(original) = LOWER(?)",
		entry.Translation, entry.Transcription, entry.Examples, entry.Original)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update entry) > %w", err)
	}
	return nil
}

// Save replaces the stored entries with entries in a single transaction.
func (r *DBRepository) Save(ctx context.Context, entries []Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete entries) > %w", err)
	}
	for i := range entries {
		if _, err := tx.NamedExecContext(ctx, insertEntryQuery, &entries[i]); err != nil {
			return fmt.Errorf("tx.NamedExecContext(insert %q) > %w", entries[i].Original, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}

const insertEntryQuery = `INSERT INTO entries (original, translation, transcription, examples)
		VALUES (:original, :translation, :transcription, :examples)`
