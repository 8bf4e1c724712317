package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/vocup/internal/app"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

const hiddenHint = "(hidden, type 'hint' to show)"

// TerminalView renders the learning session as text.
type TerminalView struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
	faint  *color.Color
	red    *color.Color
	green  *color.Color

	entry        *vocabulary.Entry
	index, total int
	hintsVisible bool
	tab          app.Tab
	form         vocabulary.Entry
}

func NewTerminalView(writer io.Writer) *TerminalView {
	return &TerminalView{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		faint:  color.New(color.Faint),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
	}
}

func (v *TerminalView) ShowEntry(index, total int, entry vocabulary.Entry) {
	v.entry = &entry
	v.index = index
	v.total = total
	v.render()
}

func (v *TerminalView) ShowEmpty() {
	v.entry = nil
	_, _ = v.faint.Fprintln(v.writer, "No entries yet. Type 'add' to add one.")
}

func (v *TerminalView) SetHintsVisible(visible bool) {
	changed := v.hintsVisible != visible
	v.hintsVisible = visible
	if changed && v.entry != nil {
		v.render()
	}
}

func (v *TerminalView) ShowStatus(status app.Status) {
	c := v.red
	if status.Kind == app.StatusSuccess {
		c = v.green
	}
	_, _ = c.Fprintf(v.writer, "[%s] %s\n", status.Tab, status.Message)
}

func (v *TerminalView) SwitchTo(tab app.Tab) {
	if v.tab != tab {
		slog.Default().Debug("switch tab", slog.String("from", v.tab.String()), slog.String("to", tab.String()))
	}
	v.tab = tab
}

func (v *TerminalView) ClearAddForm() {
	v.form = vocabulary.Entry{}
}

func (v *TerminalView) MarkAdded(marker string) {
	v.form.Original = marker
}

// Tab returns the active tab.
func (v *TerminalView) Tab() app.Tab {
	return v.tab
}

// Form returns the add form fields.
func (v *TerminalView) Form() vocabulary.Entry {
	return v.form
}

// SetForm replaces the add form fields.
func (v *TerminalView) SetForm(form vocabulary.Entry) {
	v.form = form
}

func (v *TerminalView) render() {
	entry := v.entry
	fmt.Fprintf(v.writer, "[%d/%d] ", v.index+1, v.total)
	_, _ = v.bold.Fprintln(v.writer, entry.Original)

	v.renderHint("translation", v.italic.Sprint(entry.Translation))
	transcription := ""
	if entry.Transcription != "" {
		transcription = "/" + entry.Transcription + "/"
	}
	v.renderHint("transcription", transcription)

	if !v.hintsVisible {
		fmt.Fprintf(v.writer, "  %-14s %s\n", "examples:", v.faint.Sprint(hiddenHint))
		return
	}
	fmt.Fprintln(v.writer, "  examples:")
	if examples := entry.BulletedExamples(); examples != "" {
		for _, line := range strings.Split(examples, "\n") {
			fmt.Fprintf(v.writer, "    %s\n", line)
		}
	}
}

func (v *TerminalView) renderHint(label, value string) {
	if !v.hintsVisible {
		value = v.faint.Sprint(hiddenHint)
	}
	fmt.Fprintf(v.writer, "  %-14s %s\n", label+":", value)
}
