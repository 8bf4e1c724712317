package app

import (
	"time"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

// Tab is a section of the presentation layer.
type Tab int

const (
	TabLearn Tab = iota
	TabSearch
	TabAdd
)

func (t Tab) String() string {
	switch t {
	case TabLearn:
		return "learn"
	case TabSearch:
		return "search"
	case TabAdd:
		return "add"
	}
	return "unknown"
}

type StatusKind int

const (
	StatusError StatusKind = iota
	StatusSuccess
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 3 * time.Second

// Status is a transient message shown on one tab.
type Status struct {
	Tab      Tab
	Kind     StatusKind
	Message  string
	Duration time.Duration
}

func errorStatus(tab Tab, message string) Status {
	return Status{Tab: tab, Kind: StatusError, Message: message, Duration: StatusDuration}
}

func successStatus(tab Tab, message string) Status {
	return Status{Tab: tab, Kind: StatusSuccess, Message: message, Duration: StatusDuration}
}

// View is what the controller drives. Implementations render; they never
// change the application state.
type View interface {
	// ShowEntry displays the entry at index out of total entries.
	ShowEntry(index, total int, entry vocabulary.Entry)
	// ShowEmpty displays that there is no entry to learn.
	ShowEmpty()
	// SetHintsVisible shows or hides translation, transcription, and examples.
	SetHintsVisible(visible bool)
	ShowStatus(status Status)
	SwitchTo(tab Tab)
	// ClearAddForm empties every field of the add form.
	ClearAddForm()
	// MarkAdded replaces the original field of the add form with the added marker.
	MarkAdded(marker string)
}
