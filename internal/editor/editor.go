// Package editor validates new vocabulary entries and appends them to the store.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/vocup/internal/lookup"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// AddedPrefix marks an original that was just submitted successfully.
const AddedPrefix = "Added: "

// Editor appends entries to a store, rejecting empty, repeated, and duplicate submissions.
type Editor struct {
	store      *vocabulary.Store
	finder     *lookup.Finder
	autofiller Autofiller
	lastAdded  *vocabulary.Entry
}

// Option configures an Editor.
type Option func(*Editor)

// WithAutofiller fills empty hint fields before an entry is stored.
func WithAutofiller(autofiller Autofiller) Option {
	return func(e *Editor) {
		e.autofiller = autofiller
	}
}

// New creates an Editor.
func New(store *vocabulary.Store, finder *lookup.Finder, opts ...Option) *Editor {
	editor := &Editor{
		store:  store,
		finder: finder,
	}
	for _, opt := range opts {
		opt(editor)
	}
	return editor
}

// Validate checks a submission without modifying the store.
func (e *Editor) Validate(entry vocabulary.Entry) error {
	original := strings.TrimSpace(entry.Original)
	if original == "" {
		return vocabulary.ErrEmptyInput
	}
	if strings.HasPrefix(entry.Original, AddedPrefix) {
		return vocabulary.ErrAlreadyAdded
	}
	if e.lastAdded != nil && *e.lastAdded == normalize(entry) {
		return vocabulary.ErrAlreadyAdded
	}
	if index, ok := e.finder.FindExact(e.store.Entries(), original); ok {
		return fmt.Errorf("%w: %q at %d", vocabulary.ErrDuplicateEntry, original, index)
	}
	return nil
}

// Add validates entry, fills empty hints when an autofiller is set, then
// appends and persists it. It returns the stored entry.
func (e *Editor) Add(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error) {
	if err := e.Validate(entry); err != nil {
		return vocabulary.Entry{}, err
	}
	submitted := normalize(entry)

	stored := submitted
	if e.autofiller != nil {
		filled, err := e.autofiller.Autofill(ctx, stored)
		if err != nil {
			slog.Default().Warn("failed to autofill an entry",
				slog.String("original", stored.Original),
				slog.Any("error", err),
			)
		}
		filled.Original = submitted.Original
		stored = filled
	}

	if err := e.store.Append(ctx, stored); err != nil {
		return vocabulary.Entry{}, fmt.Errorf("store.Append > %w", err)
	}
	e.lastAdded = &submitted
	slog.Default().Info("added an entry", slog.String("original", stored.Original), slog.Int("count", e.store.Len()))
	return stored, nil
}

func normalize(entry vocabulary.Entry) vocabulary.Entry {
	entry.Original = strings.TrimSpace(entry.Original)
	return entry
}
