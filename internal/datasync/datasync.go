// Package datasync copies vocabulary entries between the JSON data file and the database.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
	Invalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes entries into the database one row at a time.
type Importer struct {
	entryRepo vocabulary.EntryRepository
	writer    io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(entryRepo vocabulary.EntryRepository, writer io.Writer) *Importer {
	return &Importer{
		entryRepo: entryRepo,
		writer:    writer,
	}
}

// ImportEntries imports entries in order. Rows are matched by original, case-insensitively.
func (imp *Importer) ImportEntries(ctx context.Context, entries []vocabulary.Entry, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		original := strings.TrimSpace(entry.Original)
		if original == "" {
			fmt.Fprintf(imp.writer, "  [WARN]  entry without original (%s)\n", entry.Translation)
			result.Invalid++
			continue
		}
		key := strings.ToLower(original)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (duplicate in data file)\n", original)
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		entry.Original = original
		if err := imp.importEntry(ctx, entry, opts, &result); err != nil {
			return nil, fmt.Errorf("importEntry(%s) > %w", original, err)
		}
	}
	return &result, nil
}

func (imp *Importer) importEntry(ctx context.Context, entry vocabulary.Entry, opts ImportOptions, result *ImportResult) error {
	existing, err := imp.entryRepo.FindByOriginal(ctx, entry.Original)
	if err != nil {
		return fmt.Errorf("FindByOriginal() > %w", err)
	}

	if existing == nil {
		if !opts.DryRun {
			if err := imp.entryRepo.Create(ctx, &entry); err != nil {
				return fmt.Errorf("Create() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", entry.Original, entry.Translation)
		result.New++
		return nil
	}

	if !opts.UpdateExisting || sameHints(*existing, entry) {
		fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", entry.Original, existing.Translation)
		result.Skipped++
		return nil
	}

	if !opts.DryRun {
		if err := imp.entryRepo.Update(ctx, &entry); err != nil {
			return fmt.Errorf("Update() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%s)\n", entry.Original, entry.Translation)
	result.Updated++
	return nil
}

func sameHints(a, b vocabulary.Entry) bool {
	return a.Translation == b.Translation &&
		a.Transcription == b.Transcription &&
		a.Examples == b.Examples
}

// Exporter writes every database entry into another repository, such as the JSON data file.
type Exporter struct {
	entryRepo vocabulary.EntryRepository
	target    vocabulary.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(entryRepo vocabulary.EntryRepository, target vocabulary.Repository) *Exporter {
	return &Exporter{
		entryRepo: entryRepo,
		target:    target,
	}
}

// Export replaces the target's entries with the database rows and returns how many were written.
func (exp *Exporter) Export(ctx context.Context) (int, error) {
	entries, err := exp.entryRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("FindAll() > %w", err)
	}
	if err := exp.target.Save(ctx, entries); err != nil {
		return 0, fmt.Errorf("Save() > %w", err)
	}
	return len(entries), nil
}
