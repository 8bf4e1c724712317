package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/vocup/internal/dictionary"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIWordsAPIInRapidAPI API = "words_api"
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIWordsAPIInRapidAPI}
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary lookups used to fill hints",
	}
	flags := rootCommand.PersistentFlags()

	api := APIWordsAPIInRapidAPI
	flags.Var(&api, "api", fmt.Sprintf("API to use. Possible values are %v", allAPIs))

	rootCommand.AddCommand(&cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up, caching the response on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			switch api {
			case APIWordsAPIInRapidAPI:
				fallthrough
			default:
				reader := dictionary.NewReader(cfg.Dictionaries.RapidAPI.CacheDirectory, dictionary.Config{
					RapidAPIHost: cfg.Dictionaries.RapidAPI.Host,
					RapidAPIKey:  cfg.Dictionaries.RapidAPI.Key,
				})
				response, err := reader.Lookup(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("dictionary.NewReader.Lookup > %w", err)
				}
				if err := reader.Show(cmd.OutOrStdout(), response); err != nil {
					return fmt.Errorf("reader.Show > %w", err)
				}
			}
			return nil
		},
	})
	return &rootCommand
}
