package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the data file for blank and duplicated originals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repository, cleanup, err := openRepository(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := repository.Load(ctx)
			if err != nil {
				return fmt.Errorf("repository.Load() > %w", err)
			}

			problems := vocabulary.Validate(entries)
			displayProblems(cmd.OutOrStdout(), len(entries), problems)
			if len(problems) > 0 {
				return fmt.Errorf("validation failed with %d problem(s)", len(problems))
			}
			return nil
		},
	}
}

func displayProblems(w io.Writer, count int, problems []vocabulary.Problem) {
	if len(problems) == 0 {
		fmt.Fprintf(w, "All %d entries are valid!\n", count)
		return
	}

	byKind := map[vocabulary.ProblemKind][]vocabulary.Problem{}
	for _, problem := range problems {
		byKind[problem.Kind] = append(byKind[problem.Kind], problem)
	}
	for _, kind := range []vocabulary.ProblemKind{vocabulary.ProblemBlankOriginal, vocabulary.ProblemDuplicate} {
		if len(byKind[kind]) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", kind, len(byKind[kind]))
		for _, problem := range byKind[kind] {
			fmt.Fprintf(w, "  - entry %d: %s\n", problem.Index, problem.Message)
		}
	}
	fmt.Fprintf(w, "Total problems: %d\n", len(problems))
}
