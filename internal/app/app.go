// Package app holds the application state and the operations the
// presentation layer calls: load, navigate, search, add, and hint.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/vocup/internal/editor"
	"github.com/at-ishikawa/vocup/internal/lookup"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

const (
	messageEmpty       = "Can not be empty"
	messageNotFound    = "Nothing found"
	messageJustAdded   = "Just added"
	messageExists      = "Already exists"
	messageAdded       = "Added"
	messageSaveFailure = "Failed to save"

	searchFirst = "0"
	searchLast  = "-1"
)

// State is everything the application owns.
type State struct {
	Store        *vocabulary.Store
	Cursor       *vocabulary.Cursor
	Finder       *lookup.Finder
	Editor       *editor.Editor
	HintsVisible bool
}

// NewState wires a cursor and an editor around store.
func NewState(store *vocabulary.Store, finder *lookup.Finder, editorOpts ...editor.Option) *State {
	return &State{
		Store:  store,
		Cursor: vocabulary.NewCursor(store),
		Finder: finder,
		Editor: editor.New(store, finder, editorOpts...),
	}
}

type App struct {
	state *State
	view  View
}

func New(state *State, view View) *App {
	return &App{
		state: state,
		view:  view,
	}
}

// Load reads the entries, shows the first one, and hides hints.
func (a *App) Load(ctx context.Context) error {
	if err := a.state.Store.Load(ctx); err != nil {
		return fmt.Errorf("store.Load > %w", err)
	}
	a.state.Cursor.Move(vocabulary.DirectionFirst)
	a.show()
	a.Hint(false)
	return nil
}

// Current returns the entry at the cursor, or false when there are no entries.
func (a *App) Current() (vocabulary.Entry, bool) {
	return a.state.Cursor.Current()
}

// Index returns the cursor position.
func (a *App) Index() int {
	return a.state.Cursor.Index()
}

// Len returns the number of entries.
func (a *App) Len() int {
	return a.state.Store.Len()
}

// Entries returns every entry in order.
func (a *App) Entries() []vocabulary.Entry {
	return a.state.Store.Entries()
}

// Navigate moves the cursor and shows the entry there. The hint state is kept.
func (a *App) Navigate(direction vocabulary.Direction) {
	a.state.Cursor.Move(direction)
	a.show()
}

// Jump moves the cursor to index and switches to the learn tab.
func (a *App) Jump(index int) error {
	if err := a.state.Cursor.Jump(index); err != nil {
		return err
	}
	a.show()
	a.view.SwitchTo(TabLearn)
	return nil
}

// Search jumps to the entry best matching keyword. The keywords "0" and "-1"
// jump to the first and last entries. Failures are reported on the search tab.
func (a *App) Search(keyword string) (lookup.Match, error) {
	keyword = strings.TrimSpace(keyword)

	match, err := a.find(keyword)
	if err != nil {
		switch {
		case errors.Is(err, vocabulary.ErrEmptyInput):
			a.view.ShowStatus(errorStatus(TabSearch, messageEmpty))
		default:
			a.view.ShowStatus(errorStatus(TabSearch, messageNotFound))
		}
		return lookup.Match{}, err
	}

	if err := a.Jump(match.Index); err != nil {
		return lookup.Match{}, err
	}
	slog.Default().Debug("search",
		slog.String("keyword", keyword),
		slog.Int("index", match.Index),
		slog.String("stage", match.Stage.String()),
	)
	return match, nil
}

func (a *App) find(keyword string) (lookup.Match, error) {
	length := a.state.Store.Len()
	switch keyword {
	case searchFirst, searchLast:
		if length == 0 {
			return lookup.Match{}, fmt.Errorf("%w: no entries", vocabulary.ErrNotFound)
		}
		if keyword == searchFirst {
			return lookup.Match{Index: 0, Stage: lookup.StageExact}, nil
		}
		return lookup.Match{Index: length - 1, Stage: lookup.StageExact}, nil
	}
	return a.state.Finder.Find(a.state.Store.Entries(), keyword)
}

// Add submits the add form. Validation failures and the outcome are reported
// on the add tab; a successful add marks the original field as added.
func (a *App) Add(ctx context.Context, entry vocabulary.Entry) (vocabulary.Entry, error) {
	added, err := a.state.Editor.Add(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, vocabulary.ErrEmptyInput):
			a.view.ShowStatus(errorStatus(TabAdd, messageEmpty))
		case errors.Is(err, vocabulary.ErrAlreadyAdded):
			a.view.ShowStatus(errorStatus(TabAdd, messageJustAdded))
		case errors.Is(err, vocabulary.ErrDuplicateEntry):
			a.view.ShowStatus(errorStatus(TabAdd, messageExists))
		default:
			a.view.ShowStatus(errorStatus(TabAdd, messageSaveFailure))
		}
		return vocabulary.Entry{}, err
	}

	a.view.ShowStatus(successStatus(TabAdd, messageAdded))
	a.view.MarkAdded(editor.AddedPrefix + added.Original)
	return added, nil
}

// ClearAdd empties the add form.
func (a *App) ClearAdd() {
	a.view.ClearAddForm()
}

// Hint shows or hides the hints of the displayed entry.
func (a *App) Hint(show bool) {
	a.state.HintsVisible = show
	a.view.SetHintsVisible(show)
}

// HintsVisible reports whether hints are shown.
func (a *App) HintsVisible() bool {
	return a.state.HintsVisible
}

func (a *App) show() {
	entry, ok := a.state.Cursor.Current()
	if !ok {
		a.view.ShowEmpty()
		return
	}
	a.view.ShowEntry(a.state.Cursor.Index(), a.state.Store.Len(), entry)
}

// IsValidationError reports whether err is a rejected search or add input
// rather than a storage failure.
func IsValidationError(err error) bool {
	return errors.Is(err, vocabulary.ErrEmptyInput) ||
		errors.Is(err, vocabulary.ErrAlreadyAdded) ||
		errors.Is(err, vocabulary.ErrDuplicateEntry) ||
		errors.Is(err, vocabulary.ErrNotFound)
}
