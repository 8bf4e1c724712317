package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/vocup/internal/app"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

var errEnd = errors.New("end")

const usage = `Commands:
  n, next            show the next entry (also an empty line)
  p, prev            show the previous entry
  first, last        show the first or the last entry
  g, goto <n>        show the entry at position n (1-based)
  s, search <word>   search an entry; "0" is the first and "-1" the last one
  h, hint            show translation, transcription, and examples
  hide               hide them again
  a, add             fill the add form and submit it
  clear              clear the add form
  ?, help            show this help
  q, quit            exit
`

//go:generate mockgen -source=learn_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session runs one interaction. It returns errEnd when the user is done.
type Session interface {
	Session(ctx context.Context) error
}

// LearnCLI is the interactive learning session reading commands line by line.
type LearnCLI struct {
	app          *app.App
	view         *TerminalView
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
}

func NewLearnCLI(a *app.App, view *TerminalView, stdin io.Reader, stdout io.Writer) *LearnCLI {
	return &LearnCLI{
		app:          a,
		view:         view,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
	}
}

// Run repeats session until it ends, fails, or the process is interrupted.
func Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

func (cli *LearnCLI) Session(ctx context.Context) error {
	_, _ = cli.bold.Fprint(cli.stdoutWriter, "> ")
	line, err := cli.readLine()
	if err != nil {
		return err
	}

	command, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)
	switch strings.ToLower(command) {
	case "", "n", "next":
		cli.app.Navigate(vocabulary.DirectionNext)
	case "p", "prev":
		cli.app.Navigate(vocabulary.DirectionPrev)
	case "first":
		cli.app.Navigate(vocabulary.DirectionFirst)
	case "last":
		cli.app.Navigate(vocabulary.DirectionLast)
	case "g", "goto":
		cli.jump(argument)
	case "s", "search":
		// failures are shown as a status
		_, _ = cli.app.Search(argument)
	case "h", "hint":
		cli.app.Hint(true)
	case "hide":
		cli.app.Hint(false)
	case "a", "add":
		return cli.add(ctx)
	case "clear":
		cli.app.ClearAdd()
		fmt.Fprintln(cli.stdoutWriter, "The add form is cleared.")
	case "?", "help":
		fmt.Fprint(cli.stdoutWriter, usage)
	case "q", "quit", "exit":
		return errEnd
	default:
		fmt.Fprintf(cli.stdoutWriter, "Unknown command %q. Type 'help' for commands.\n", command)
	}
	return nil
}

func (cli *LearnCLI) jump(argument string) {
	index, err := vocabulary.ParsePosition(argument, cli.app.Len())
	if err != nil {
		fmt.Fprintf(cli.stdoutWriter, "Invalid position %q.\n", argument)
		return
	}
	if argument != string(vocabulary.DirectionFirst) && argument != string(vocabulary.DirectionLast) {
		// positions typed by the user are 1-based
		index--
	}
	if err := cli.app.Jump(index); err != nil {
		fmt.Fprintf(cli.stdoutWriter, "Position %s is out of range (1-%d).\n", argument, cli.app.Len())
	}
}

func (cli *LearnCLI) add(ctx context.Context) error {
	form := cli.view.Form()
	fields := []struct {
		label string
		value *string
	}{
		{label: "Original", value: &form.Original},
		{label: "Translation", value: &form.Translation},
		{label: "Transcription", value: &form.Transcription},
	}
	for _, field := range fields {
		value, err := cli.prompt(field.label, *field.value)
		if err != nil {
			return err
		}
		*field.value = value
	}
	examples, err := cli.promptLines("Examples", form.Examples)
	if err != nil {
		return err
	}
	form.Examples = examples
	cli.view.SetForm(form)

	if _, err := cli.app.Add(ctx, form); err != nil && !app.IsValidationError(err) {
		return err
	}
	return nil
}

// prompt reads one field. An empty answer keeps current.
func (cli *LearnCLI) prompt(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(cli.stdoutWriter, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(cli.stdoutWriter, "%s: ", label)
	}
	line, err := cli.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

// promptLines reads lines until an empty one. No lines keeps current.
func (cli *LearnCLI) promptLines(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(cli.stdoutWriter, "%s, one per line, empty line to finish [%s]:\n", label, strings.ReplaceAll(current, "\n", " / "))
	} else {
		fmt.Fprintf(cli.stdoutWriter, "%s, one per line, empty line to finish:\n", label)
	}
	var lines []string
	for {
		line, err := cli.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return current, nil
	}
	return strings.Join(lines, "\n"), nil
}

func (cli *LearnCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) == "" {
				return "", errEnd
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
