package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocup/internal/app"
	"github.com/at-ishikawa/vocup/internal/cli"
)

func newLearnCommand() *cobra.Command {
	var autofill bool

	command := &cobra.Command{
		Use:   "learn",
		Short: "Browse entries interactively, show hints, search, and add new words",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			state, cleanup, err := newState(ctx, cfg, autofill || cfg.Editor.Autofill)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			view := cli.NewTerminalView(out)
			learnApp := app.New(state, view)
			if err := learnApp.Load(ctx); err != nil {
				return fmt.Errorf("learnApp.Load() > %w", err)
			}
			fmt.Fprintln(out, "Type 'help' for commands.")

			return cli.Run(ctx, cli.NewLearnCLI(learnApp, view, cmd.InOrStdin(), out))
		},
	}
	command.Flags().BoolVar(&autofill, "autofill", false, "fill empty hints of added entries from the dictionary and OpenAI")
	return command
}
