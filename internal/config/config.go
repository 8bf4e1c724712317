package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageJSON  = "json"
	StorageMySQL = "mysql"

	DefaultSearchCutoff = 0.6
)

type Config struct {
	Data         DataConfig         `mapstructure:"data"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Search       SearchConfig       `mapstructure:"search"`
	Editor       EditorConfig       `mapstructure:"editor"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type DataConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=json mysql"`
}

type SearchConfig struct {
	Cutoff float64 `mapstructure:"cutoff" validate:"gt=0,lte=1"`
}

type EditorConfig struct {
	Autofill       bool   `mapstructure:"autofill"`
	TargetLanguage string `mapstructure:"target_language" validate:"required_if=Autofill true"`
	MaxExamples    int    `mapstructure:"max_examples" validate:"gte=0"`
}

type DictionariesConfig struct {
	RapidAPI RapidAPIConfig `mapstructure:"rapidapi"`
}

type RapidAPIConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type TemplatesConfig struct {
	MarkdownTemplate string `mapstructure:"markdown_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	ExportDirectory string `mapstructure:"export_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocup")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("data.file", filepath.Join("data", "data.json"))
	v.SetDefault("storage.backend", StorageJSON)
	v.SetDefault("search.cutoff", DefaultSearchCutoff)
	v.SetDefault("editor.autofill", false)
	v.SetDefault("editor.target_language", "Russian")
	v.SetDefault("editor.max_examples", 3)
	v.SetDefault("dictionaries.rapidapi.cache_directory", filepath.Join("dictionaries", "rapidapi"))
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocup")
	v.SetDefault("database.username", "user")
	// Template is optional - if not specified, the embedded template is used
	v.SetDefault("templates.markdown_template", "")
	v.SetDefault("outputs.export_directory", "outputs")

	if err := v.BindEnv("data.file", "VOCUP_DATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCUP_DATA_FILE environment variable: %w", err)
	}

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("dictionaries.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
