package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocup/internal/database"
	"github.com/at-ishikawa/vocup/internal/datasync"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the JSON data file into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			entries, err := vocabulary.NewJSONRepository(cfg.Data.File).Load(ctx)
			if err != nil {
				return fmt.Errorf("JSONRepository.Load() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if !dryRun {
				if err := database.Migrate(ctx, db); err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(vocabulary.NewDBRepository(db), out)
			result, err := importer.ImportEntries(ctx, entries, datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			})
			if err != nil {
				return fmt.Errorf("importer.ImportEntries() > %w", err)
			}

			if dryRun {
				fmt.Fprintln(out, "\n[DRY RUN] No changes were made.")
			}
			fmt.Fprintf(out, "\nEntries: %d new, %d updated, %d skipped, %d invalid\n",
				result.New, result.Updated, result.Skipped, result.Invalid)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be imported without writing to the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing records with the data file values")

	return cmd
}

func newMigrateExportDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export-db",
		Short: "Overwrite the JSON data file with the database entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			exporter := datasync.NewExporter(vocabulary.NewDBRepository(db), vocabulary.NewJSONRepository(cfg.Data.File))
			count, err := exporter.Export(ctx)
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", count, cfg.Data.File)
			return nil
		},
	}
}
