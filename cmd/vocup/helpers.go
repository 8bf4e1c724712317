package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/vocup/internal/app"
	"github.com/at-ishikawa/vocup/internal/cli"
	"github.com/at-ishikawa/vocup/internal/config"
	"github.com/at-ishikawa/vocup/internal/database"
	"github.com/at-ishikawa/vocup/internal/dictionary"
	"github.com/at-ishikawa/vocup/internal/editor"
	"github.com/at-ishikawa/vocup/internal/inference"
	"github.com/at-ishikawa/vocup/internal/inference/openai"
	"github.com/at-ishikawa/vocup/internal/lookup"
	"github.com/at-ishikawa/vocup/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openRepository returns the configured storage and a function releasing it.
func openRepository(ctx context.Context, cfg *config.Config) (vocabulary.Repository, func(), error) {
	if cfg.Storage.Backend != config.StorageMySQL {
		return vocabulary.NewJSONRepository(cfg.Data.File), func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Default().Warn("failed to close the database", slog.Any("error", err))
		}
	}
	if err := database.Migrate(ctx, db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
	}
	return vocabulary.NewDBRepository(db), closeDB, nil
}

// newAutofiller builds the autofillers whose credentials are configured.
// It returns nil when none is.
func newAutofiller(cfg *config.Config) (editor.Autofiller, func()) {
	var fillers editor.Autofillers
	cleanup := func() {}

	if cfg.Dictionaries.RapidAPI.Key != "" {
		reader := dictionary.NewReader(cfg.Dictionaries.RapidAPI.CacheDirectory, dictionary.Config{
			RapidAPIHost: cfg.Dictionaries.RapidAPI.Host,
			RapidAPIKey:  cfg.Dictionaries.RapidAPI.Key,
		})
		fillers = append(fillers, editor.NewDictionaryAutofiller(reader, cfg.Editor.MaxExamples))
	}
	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, inference.DefaultMaxRetryAttempts)
		fillers = append(fillers, editor.NewTranslationAutofiller(client, cfg.Editor.TargetLanguage))
		cleanup = func() {
			_ = client.Close()
		}
	}

	if len(fillers) == 0 {
		slog.Default().Warn("autofill is enabled but neither RAPID_API_KEY nor OPENAI_API_KEY is set")
		return nil, cleanup
	}
	return fillers, cleanup
}

// newState wires the application state. Entries are not loaded yet.
func newState(ctx context.Context, cfg *config.Config, autofill bool) (*app.State, func(), error) {
	repository, closeRepository, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := closeRepository

	var opts []editor.Option
	if autofill {
		autofiller, closeAutofiller := newAutofiller(cfg)
		cleanup = func() {
			closeAutofiller()
			closeRepository()
		}
		if autofiller != nil {
			opts = append(opts, editor.WithAutofiller(autofiller))
		}
	}
	return app.NewState(vocabulary.NewStore(repository), lookup.NewFinder(cfg.Search.Cutoff), opts...), cleanup, nil
}

// newPrintingApp loads the entries for a one-shot command. Entries are
// printed with their hints. A nil autofill disables autofill; otherwise the
// flag or editor.autofill enables it.
func newPrintingApp(ctx context.Context, w io.Writer, autofill *bool) (*app.App, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	state, cleanup, err := newState(ctx, cfg, autofill != nil && (*autofill || cfg.Editor.Autofill))
	if err != nil {
		return nil, nil, err
	}
	if err := state.Store.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("store.Load() > %w", err)
	}

	view := cli.NewTerminalView(w)
	view.SetHintsVisible(true)
	return app.New(state, view), cleanup, nil
}
