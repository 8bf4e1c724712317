// Package lookup finds the entry that best matches a search keyword.
//
// Matching runs in passes, and the first pass with a result wins:
// exact or prefix match on the whole keyword, then the closest whole
// original to the keyword's first word, then the closest single word
// inside multi-word originals.
package lookup

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// Stage identifies the pass that produced a match.
type Stage int

const (
	StageExact Stage = iota
	StagePrefix
	StageSurface
	StageDeep
)

func (s Stage) String() string {
	switch s {
	case StageExact:
		return "exact"
	case StagePrefix:
		return "prefix"
	case StageSurface:
		return "surface"
	case StageDeep:
		return "deep"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Match is a search result.
type Match struct {
	Index int
	Stage Stage
}

// Finder searches entries by keyword.
type Finder struct {
	cutoff float64
}

// NewFinder creates a Finder. A cutoff outside (0, 1] falls back to DefaultCutoff.
func NewFinder(cutoff float64) *Finder {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &Finder{cutoff: cutoff}
}

// Cutoff returns the similarity threshold of approximate passes.
func (f *Finder) Cutoff() float64 {
	return f.cutoff
}

// Find returns the best match for keyword, or vocabulary.ErrNotFound.
func (f *Finder) Find(entries []vocabulary.Entry, keyword string) (Match, error) {
	keyword = Fold(strings.TrimSpace(keyword))
	if keyword == "" {
		return Match{}, vocabulary.ErrEmptyInput
	}
	logger := slog.Default().With(slog.String("keyword", keyword))

	if index, stage, ok := f.findExact(entries, keyword); ok {
		logger.Debug("found", slog.String("stage", stage.String()), slog.Int("index", index))
		return Match{Index: index, Stage: stage}, nil
	}

	word := firstToken(keyword)
	if index, ok := f.SurfaceSearch(entries, word); ok {
		logger.Debug("found", slog.String("stage", StageSurface.String()), slog.Int("index", index))
		return Match{Index: index, Stage: StageSurface}, nil
	}
	if index, ok := f.DeepSearch(entries, word); ok {
		logger.Debug("found", slog.String("stage", StageDeep.String()), slog.Int("index", index))
		return Match{Index: index, Stage: StageDeep}, nil
	}
	return Match{}, fmt.Errorf("%w: %s", vocabulary.ErrNotFound, keyword)
}

// FindExact returns the entry whose original equals keyword, otherwise the
// last entry whose original starts with it.
func (f *Finder) FindExact(entries []vocabulary.Entry, keyword string) (int, bool) {
	keyword = Fold(keyword)
	if keyword == "" {
		return 0, false
	}
	index, _, ok := f.findExact(entries, keyword)
	return index, ok
}

func (f *Finder) findExact(entries []vocabulary.Entry, keyword string) (int, Stage, bool) {
	prefix := -1
	for i, entry := range entries {
		original := Fold(entry.Original)
		if original == keyword {
			return i, StageExact, true
		}
		if strings.HasPrefix(original, keyword) {
			prefix = i
		}
	}
	if prefix >= 0 {
		return prefix, StagePrefix, true
	}
	return 0, StageExact, false
}

// SurfaceSearch returns the first entry whose whole original is the closest match to word.
func (f *Finder) SurfaceSearch(entries []vocabulary.Entry, word string) (int, bool) {
	word = Fold(word)
	originals := make([]string, len(entries))
	for i, entry := range entries {
		originals[i] = Fold(entry.Original)
	}

	match, ok := closestMatch(word, originals, f.cutoff)
	if !ok {
		return 0, false
	}
	for i, original := range originals {
		if original == match {
			return i, true
		}
	}
	return 0, false
}

type tokenMatch struct {
	token string
	index int
}

// DeepSearch matches word against the individual words of multi-word originals.
func (f *Finder) DeepSearch(entries []vocabulary.Entry, word string) (int, bool) {
	word = Fold(word)

	var matches []tokenMatch
	for i, entry := range entries {
		tokens := strings.Fields(Fold(entry.Original))
		if len(tokens) <= 1 {
			continue
		}
		if token, ok := closestMatch(word, tokens, f.cutoff); ok {
			matches = append(matches, tokenMatch{token: token, index: i})
		}
	}
	if len(matches) == 0 {
		return 0, false
	}

	tokens := make([]string, len(matches))
	for i, m := range matches {
		tokens[i] = m.token
	}
	best, ok := closestMatch(word, tokens, f.cutoff)
	if !ok {
		return 0, false
	}
	for _, m := range matches {
		if m.token == best {
			return m.index, true
		}
	}
	return 0, false
}
