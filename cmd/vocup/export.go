package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/vocup/internal/assets"
	"github.com/at-ishikawa/vocup/internal/export"
	"github.com/at-ishikawa/vocup/internal/pdf"
)

var _ pflag.Value = (*export.Format)(nil)

func newExportCommand() *cobra.Command {
	format := export.FormatMarkdown
	var output string
	var title string

	command := &cobra.Command{
		Use:   "export",
		Short: "Export every entry as YAML, markdown, or PDF",
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

			tmpl, err := assets.ParseVocabularyTemplate(cfg.Templates.MarkdownTemplate)
			if err != nil {
				return fmt.Errorf("assets.ParseVocabularyTemplate() > %w", err)
			}
			exporter := export.NewExporter(tmpl)
			data := assets.VocabularyTemplate{Title: title, Entries: entries}

			if output == "-" {
				return exporter.Write(cmd.OutOrStdout(), format, data)
			}
			if output == "" {
				output = filepath.Join(cfg.Outputs.ExportDirectory, "vocabulary"+format.Extension())
			} else if filepath.Ext(output) == "" {
				output += format.Extension()
			}

			written, err := exporter.WriteFile(output, format, data)
			if err != nil {
				return fmt.Errorf("exporter.WriteFile(%s) > %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), written)
			return nil
		},
	}
	flags := command.Flags()
	flags.VarP(&format, "format", "f", "export format: yaml, markdown, or pdf")
	flags.StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default <outputs.export_directory>/vocabulary.<ext>)`)
	flags.StringVar(&title, "title", "Vocabulary", "document title for markdown and PDF")
	_ = command.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, name := range []export.Format{export.FormatYAML, export.FormatMarkdown, export.FormatPDF} {
			if strings.HasPrefix(string(name), toComplete) {
				names = append(names, string(name))
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	command.AddCommand(newExportConvertCommand())
	return command
}

func newExportConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file.md>",
		Short: "Convert an edited markdown export into a PDF next to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath, err := pdf.ConvertMarkdownToPDF(args[0])
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			return nil
		},
	}
}
