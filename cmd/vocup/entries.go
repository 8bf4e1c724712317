package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Show the entry best matching the keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchApp, cleanup, err := newPrintingApp(cmd.Context(), cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			keyword := args[0]
			for _, arg := range args[1:] {
				keyword += " " + arg
			}
			match, err := searchApp.Search(keyword)
			if err != nil {
				return fmt.Errorf("search(%s) > %w", keyword, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "index: %d (%s match)\n", match.Index, match.Stage)
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <first|last|index>",
		Short: "Show one entry by its zero-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showApp, cleanup, err := newPrintingApp(cmd.Context(), cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			index, err := vocabulary.ParsePosition(args[0], showApp.Len())
			if err != nil {
				return err
			}
			if err := showApp.Jump(index); err != nil {
				return fmt.Errorf("jump(%d) > %w", index, err)
			}
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listApp, cleanup, err := newPrintingApp(cmd.Context(), cmd.OutOrStdout(), nil)
			if err != nil {
				return err
			}
			defer cleanup()

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "INDEX\tORIGINAL\tTRANSLATION\tTRANSCRIPTION")
			for i, entry := range listApp.Entries() {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i, entry.Original, entry.Translation, entry.Transcription)
			}
			if err := writer.Flush(); err != nil {
				return fmt.Errorf("writer.Flush() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", listApp.Len())
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	var entry vocabulary.Entry
	var examples []string
	var autofill bool

	command := &cobra.Command{
		Use:   "add",
		Short: "Add a new entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addApp, cleanup, err := newPrintingApp(cmd.Context(), cmd.OutOrStdout(), &autofill)
			if err != nil {
				return err
			}
			defer cleanup()

			for i, example := range examples {
				if i > 0 {
					entry.Examples += "\n"
				}
				entry.Examples += example
			}
			added, err := addApp.Add(cmd.Context(), entry)
			if err != nil {
				return fmt.Errorf("add(%s) > %w", entry.Original, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", addApp.Len()-1, added.Original)
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVar(&entry.Original, "original", "", "the word or phrase to learn")
	flags.StringVar(&entry.Translation, "translation", "", "its translation")
	flags.StringVar(&entry.Transcription, "transcription", "", "its pronunciation")
	flags.StringArrayVar(&examples, "examples", nil, "an example sentence; repeat for more")
	flags.BoolVar(&autofill, "autofill", false, "fill empty hints from the dictionary and OpenAI")
	return command
}
