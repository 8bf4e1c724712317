package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Data:    DataConfig{File: filepath.Join("data", "data.json")},
		Storage: StorageConfig{Backend: StorageJSON},
		Search:  SearchConfig{Cutoff: DefaultSearchCutoff},
		Editor: EditorConfig{
			Autofill:       false,
			TargetLanguage: "Russian",
			MaxExamples:    3,
		},
		Dictionaries: DictionariesConfig{
			RapidAPI: RapidAPIConfig{
				CacheDirectory: filepath.Join("dictionaries", "rapidapi"),
			},
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "vocup",
			Username: "user",
		},
		Outputs: OutputsConfig{
			ExportDirectory: "outputs",
		},
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"VOCUP_DATA_FILE", "RAPID_API_HOST", "RAPID_API_KEY", "OPENAI_API_KEY", "OPENAI_MODEL", "DB_PASSWORD"} {
		t.Setenv(key, "")
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `data:
  file: custom/words.json
search:
  cutoff: 0.75
editor:
  autofill: true
  target_language: Japanese
  max_examples: 1
dictionaries:
  rapidapi:
    cache_directory: custom/dictionaries
outputs:
  export_directory: custom/outputs
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Data.File = "custom/words.json"
				cfg.Search.Cutoff = 0.75
				cfg.Editor = EditorConfig{Autofill: true, TargetLanguage: "Japanese", MaxExamples: 1}
				cfg.Dictionaries.RapidAPI.CacheDirectory = "custom/dictionaries"
				cfg.Outputs.ExportDirectory = "custom/outputs"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `data:
  file: custom/words.json
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys use defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name: "no config file uses defaults",
			want: defaultConfig,
		},
		{
			name: "mysql storage with environment overrides",
			configContent: `storage:
  backend: mysql
database:
  host: db.internal
  params:
    parseTime: "true"
`,
			useExplicitPath: true,
			env: map[string]string{
				"VOCUP_DATA_FILE": "/tmp/words.json",
				"DB_PASSWORD":     "secret",
				"OPENAI_API_KEY":  "sk-test",
				"RAPID_API_HOST":  "wordsapiv1.p.rapidapi.com",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Data.File = "/tmp/words.json"
				cfg.Storage.Backend = StorageMySQL
				cfg.Database.Host = "db.internal"
				cfg.Database.Password = "secret"
				cfg.Database.Params = map[string]string{"parsetime": "true"}
				cfg.OpenAI.APIKey = "sk-test"
				cfg.Dictionaries.RapidAPI.Host = "wordsapiv1.p.rapidapi.com"
				return cfg
			},
		},
		{
			name: "unsupported storage backend",
			configContent: `storage:
  backend: sqlite
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"backend must be one of [json mysql]",
			},
		},
		{
			name: "cutoff out of range",
			configContent: `search:
  cutoff: 1.5
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"cutoff must be 1 or less",
			},
		},
		{
			name: "missing markdown template file",
			configContent: `templates:
  markdown_template: does/not/exist.md.go.tmpl
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"templates.markdown_template must be an existing and readable file",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
